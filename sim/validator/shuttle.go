package validator

import (
	"sort"

	"github.com/MRamiBalles/quantum-navigator/sim/ir"
	"github.com/MRamiBalles/quantum-navigator/sim/physics"
)

const (
	highVelocityFactor = 0.8
	nsPerUs            = 1000.0

	lossRiskHigh   = 0.10
	lossRiskMedium = 0.05
)

// shuttledAtom is one atom's contribution to a ShuttleMove, carried forward
// from the per-atom pass into the topological check.
type shuttledAtom struct {
	id      int
	fromPos ir.Position
	toPos   ir.Position
	hasGrid bool
}

// checkShuttleMove runs the per-atom velocity/heating/loss checks, the
// topological row/column rule, and the post-move collision recheck of
// spec.md §4.2.2.2.
func (r *run) checkShuttleMove(io indexedOp) {
	op := io.op
	durationUs := float64(op.DurationNs) / nsPerUs

	var movedAtoms []shuttledAtom

	for k, atomID := range op.AtomIDs {
		atom, ok := r.job.Register.AtomByID(atomID)
		if !ok {
			continue // job-level validation already guarantees existence
		}
		if !atom.Role.Mobile() {
			r.addError(newPhysicsErrForAtom(ErrStaticAtomShuttled, io.index, atomID, "atom %d has role %s, cannot be shuttled", atomID, atom.Role))
			continue
		}

		from := r.positions[atomID]
		to := op.TargetPositions[k]

		d := from.Distance(to)
		r.totalMovement += d

		v := 0.0
		if durationUs > 0 {
			v = d / durationUs
		}

		switch {
		case v > r.profile.MaxAODVelocity:
			r.addError(newPhysicsErrForAtom(ErrVelocityExceeded, io.index, atomID, "atom %d velocity %.4f µm/µs exceeds max_aod_velocity %.4f", atomID, v, r.profile.MaxAODVelocity))
		case v > highVelocityFactor*r.profile.MaxAODVelocity:
			r.addWarning(
				newWarning(WarnHighVelocity, SeverityMedium, io.index, "atom velocity near the ceiling"),
				func() error {
					return newPhysicsErrForAtom(ErrVelocityExceeded, io.index, atomID, "atom %d velocity %.4f µm/µs exceeds the strict high-velocity threshold", atomID, v)
				},
			)
		}

		dNvib := physics.HeatingIncrement(d, v, r.profile)
		switch {
		case dNvib > r.profile.CriticalNVib:
			r.addWarning(
				newWarning(WarnHeatingHighNvib, SeverityHigh, io.index, "heating increment near-critical"),
				func() error {
					return newPhysicsErrForAtom(ErrSlewRate, io.index, atomID, "atom %d heating increment %.4f exceeds the strict near-critical threshold", atomID, dNvib)
				},
			)
		case dNvib > r.profile.FidelityWarnNVib:
			r.addWarning(newWarning(WarnHeatingModerate, SeverityMedium, io.index, "moderate heating increment"), nil)
		}

		pLoss := physics.LossProbability(dNvib, r.profile)
		switch {
		case pLoss > lossRiskHigh:
			r.addWarning(newWarning(WarnAtomLossRisk, SeverityHigh, io.index, "elevated atom-loss risk"), nil)
		case pLoss > lossRiskMedium:
			r.addWarning(newWarning(WarnAtomLossRisk, SeverityMedium, io.index, "moderate atom-loss risk"), nil)
		}

		r.decoherenceCost += d * (v / r.profile.MaxAODVelocity) * r.profile.HeatingCoefficient

		movedAtoms = append(movedAtoms, shuttledAtom{id: atomID, fromPos: from, toPos: to, hasGrid: atom.HasAODGrid()})
	}

	r.checkTopology(io.index, movedAtoms)

	for _, m := range movedAtoms {
		r.positions[m.id] = m.toPos
	}
	r.checkPostMoveCollisions(io.index)
}

// checkTopology implements the row/column crossing rule of spec.md
// §4.2.2.2: only atoms carrying AOD grid indices participate, and ordering
// is by physical position, not by stored grid index metadata.
//
// Participants are limited to the atoms named in this ShuttleMove, per the
// algorithm text ("the moved atoms"). A single atom shuttled past a
// stationary AOD-grid neighbor's row/column is not flagged here — only
// reordering among atoms the same operation moves. Catching a moved atom
// crossing a stationary one would mean comparing against the full register
// on every move, which the spec's algorithm does not call for.
func (r *run) checkTopology(opIndex int, movedAtoms []shuttledAtom) {
	var participants []shuttledAtom
	for _, m := range movedAtoms {
		if m.hasGrid {
			participants = append(participants, m)
		}
	}
	if len(participants) < 2 {
		return
	}

	crossed := func(pos func(ir.Position) float64) bool {
		before := append([]shuttledAtom(nil), participants...)
		after := append([]shuttledAtom(nil), participants...)
		sort.SliceStable(before, func(i, j int) bool { return pos(before[i].fromPos) < pos(before[j].fromPos) })
		sort.SliceStable(after, func(i, j int) bool { return pos(after[i].toPos) < pos(after[j].toPos) })
		for i := range before {
			if before[i].id != after[i].id {
				return true
			}
		}
		return false
	}

	if crossed(func(p ir.Position) float64 { return p.Y }) {
		r.addError(newPhysicsErr(ErrTopologicalRow, opIndex, "shuttle reorders atoms along y (row crossing)"))
	}
	if crossed(func(p ir.Position) float64 { return p.X }) {
		r.addError(newPhysicsErr(ErrTopologicalColumn, opIndex, "shuttle reorders atoms along x (column crossing)"))
	}
}

// checkPostMoveCollisions re-checks pairwise distances against
// min_atom_distance after positions have been committed, attributing any
// violation to the triggering shuttle operation.
func (r *run) checkPostMoveCollisions(opIndex int) {
	atoms := r.job.Register.Atoms
	minDist := r.job.Register.MinAtomDistance

	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			pi := r.positions[atoms[i].ID]
			pj := r.positions[atoms[j].ID]
			if pi.Distance(pj) < minDist {
				r.addError(newPhysicsErr(ErrCollision, opIndex, "post-move distance between atoms %d and %d is below min_atom_distance", atoms[i].ID, atoms[j].ID))
			}
		}
	}
}
