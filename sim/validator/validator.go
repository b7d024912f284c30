package validator

import (
	"sort"

	"github.com/MRamiBalles/quantum-navigator/sim/ir"
	"github.com/MRamiBalles/quantum-navigator/sim/physics"
)

// indexedOp pairs an operation with its original position in job.Operations
// so checks can attribute errors/warnings correctly after the start-time
// sort.
type indexedOp struct {
	op    ir.Operation
	index int
}

// run accumulates the mutable walk-state of one validation pass: current
// atom positions, collected errors/warnings and running metrics. It is a
// value-owned structure released when Validate returns; the job itself is
// never mutated.
type run struct {
	job       *ir.Job
	strict    bool
	profile   *physics.DeviceProfile
	positions map[int]ir.Position

	errors   []error
	warnings []Warning

	totalMovement   float64
	decoherenceCost float64
}

// newRun seeds the walk with DefaultProfile, applying the job's
// device.override_caps on top (spec.md §3's Job.device.override_caps) so a
// job that calibrates e.g. a tighter max_aod_velocity is validated against
// its own device, not the global default.
func newRun(job *ir.Job, strict bool) *run {
	positions := make(map[int]ir.Position, len(job.Register.Atoms))
	for _, a := range job.Register.Atoms {
		positions[a.ID] = a.Pos
	}
	profile := physics.DefaultProfile()
	if len(job.Device.OverrideCaps) > 0 {
		profile = physics.WithOverrideCaps(profile, job.Device.OverrideCaps)
	}
	return &run{job: job, strict: strict, profile: profile, positions: positions}
}

func (r *run) addError(err error) {
	r.errors = append(r.errors, err)
}

// addWarning records a warning, unless strict mode promotes its code to a
// hard error, in which case the corresponding error is recorded instead.
func (r *run) addWarning(w Warning, promoted func() error) {
	if r.strict && strictPromotable[w.Code] {
		r.addError(promoted())
		return
	}
	r.warnings = append(r.warnings, w)
}

// Validate runs the full algorithm of spec.md §4.2.2 over job and returns a
// complete picture: every error and warning the operation stream produces,
// in the order the triggering checks run. The job is never mutated.
func Validate(job *ir.Job, strict bool) *ValidationResult {
	r := newRun(job, strict)

	r.checkRegisterGeometry()

	ops := make([]indexedOp, len(job.Operations))
	for i, op := range job.Operations {
		ops[i] = indexedOp{op: op, index: i}
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].op.StartTimeNs < ops[j].op.StartTimeNs
	})

	for _, io := range ops {
		switch io.op.Kind {
		case ir.OpShuttleMove:
			r.checkShuttleMove(io)
		case ir.OpRydbergGate:
			r.checkRydbergGate(io)
		case ir.OpGlobalPulse:
			r.checkGlobalPulseZones(io)
		case ir.OpMeasurement:
			r.checkMeasurementZones(io)
		}
	}

	r.checkTemporalOverlap(ops)

	return &ValidationResult{
		IsValid:                  len(r.errors) == 0,
		Errors:                   r.errors,
		Warnings:                 r.warnings,
		TotalMovementDistanceUm:  r.totalMovement,
		EstimatedDecoherenceCost: r.decoherenceCost,
	}
}
