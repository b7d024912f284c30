// Package simulator drives the continuous-operation loop: per-cycle
// heating, cooling, atom loss, fidelity decay and syndrome-decoder queue
// dynamics, emitted as telemetry frames until the run completes or is
// stopped.
package simulator

import (
	"math"
	"time"

	"github.com/MRamiBalles/quantum-navigator/sim"
	"github.com/MRamiBalles/quantum-navigator/sim/ir"
	"github.com/MRamiBalles/quantum-navigator/sim/physics"
	"github.com/MRamiBalles/quantum-navigator/sim/telemetry"
)

const (
	minTotalCycles = 1
	maxTotalCycles = 1000

	perCycleLossProbability = 0.003
	heatingMeanPerCycle     = 0.05
	heatingJitterMin        = 0.9
	heatingJitterMax        = 1.1
	coolingThreshold        = 1.5
	coolingResetValue       = 0.1
	fidelityDecayFactor     = 1e-4

	nVibRoundDigits     = 3
	fidelityRoundDigits = 6
	backlogRoundDigits  = 2

	millisPerSecond = 1000.0
)

// Clock abstracts the real-time wait between cycles (spec §4.4 item 2) so
// tests can run a full simulation without actually sleeping.
type Clock interface {
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// ClampTotalCycles enforces the [1,1000] bound of spec.md §6 item 3.
func ClampTotalCycles(n int) int {
	if n < minTotalCycles {
		return minTotalCycles
	}
	if n > maxTotalCycles {
		return maxTotalCycles
	}
	return n
}

// clientState is the mutable per-client simulation state of spec.md §3
// "Lifecycle": owned exclusively by the running task, destroyed on
// termination.
type clientState struct {
	cycle         uint64
	nVib          float64
	atomsLost     uint64
	fidelity      float64
	reservoir     float64
	decoderQueue  physics.DecoderQueue
	lastBacklogMs float64
	codeDistance  int
}

// Simulator drives cooperative per-client cycle loops against a telemetry
// bus. It holds no per-client state itself; every Start call owns its own
// clientState, as spec.md §5 requires.
type Simulator struct {
	bus   *telemetry.Bus
	clock Clock
}

// New returns a Simulator that publishes frames through bus.
func New(bus *telemetry.Bus) *Simulator {
	return &Simulator{bus: bus, clock: realClock{}}
}

// WithClock overrides the real-time wait between cycles; intended for
// tests that need a full run to complete without actually sleeping.
func (s *Simulator) WithClock(c Clock) *Simulator {
	s.clock = c
	return s
}

// ClientHandle identifies one running simulation task.
type ClientHandle struct {
	ClientID string
	Done     <-chan struct{}
}

// StartInput configures one simulation run (spec §6 item 3). Job is
// optional: when present, its register atom count bounds AtomsLost so a
// benchmark never reports more atoms lost than the register holds
// (testable property 4). Profile, BenchmarkType, and Job's absence are
// mutually exclusive ways of selecting a DeviceProfile; BenchmarkType wins
// over Profile, which wins over the default.
type StartInput struct {
	ClientID      string
	Job           *ir.Job
	BenchmarkType BenchmarkType
	Profile       *physics.DeviceProfile
	TotalCycles   int
	Seed          int64
}

// Start spawns a cooperative simulation task for ClientID, connecting it to
// the bus with sink, and returns a handle that is closed when the run
// terminates for any reason.
func (s *Simulator) Start(input StartInput, sink telemetry.Sink) (*ClientHandle, error) {
	profile := physics.DefaultProfile()
	if input.Profile != nil {
		profile = input.Profile
	}
	var continuousOp *ir.ContinuousOperationParams
	if input.BenchmarkType != "" {
		if err := ValidateBenchmarkType(input.BenchmarkType); err != nil {
			return nil, err
		}
		profile = profileForBenchmark(input.BenchmarkType)
		continuousOp = continuousOperationForBenchmark(input.BenchmarkType)
	} else if input.Job != nil {
		if len(input.Job.Device.OverrideCaps) > 0 {
			// A named benchmark is a fixed, reproducible scenario; a job's
			// own device.override_caps only calibrates an ad hoc run
			// against it.
			profile = physics.WithOverrideCaps(profile, input.Job.Device.OverrideCaps)
		}
		continuousOp = input.Job.ContinuousOperation
	}

	if err := s.bus.Connect(input.ClientID, sink); err != nil {
		return nil, newSchedulingErr(ErrInvalidClientID, "%v", err)
	}

	totalCycles := ClampTotalCycles(input.TotalCycles)

	atomCeiling := ^uint64(0)
	if input.Job != nil {
		atomCeiling = uint64(len(input.Job.Register.Atoms))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(input.ClientID, totalCycles, input.Seed, profile, atomCeiling, continuousOp)
	}()

	return &ClientHandle{ClientID: input.ClientID, Done: done}, nil
}

// Stop requests cooperative cancellation of clientID's run; it takes effect
// at the next cycle boundary, not immediately (spec §5).
func (s *Simulator) Stop(clientID string) {
	s.bus.RequestStop(clientID)
}

// run is the cycle loop contract of spec.md §4.4. When continuousOp is set,
// each cycle also drives the reload/replenishment mechanic of
// ContinuousOperationParams: a reservoir regenerates at replenishment_rate,
// and once fidelity drops below reload_threshold, with at least one atom
// lost and enough reservoir atoms to cover all atoms lost so far, the
// reservoir is drawn down by that many atoms and fidelity is reset to
// target_fidelity.
func (s *Simulator) run(clientID string, totalCycles int, seed int64, profile *physics.DeviceProfile, atomCeiling uint64, continuousOp *ir.ContinuousOperationParams) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	jitterRNG := rng.ForSubsystem(sim.SubsystemSimulatorJitter)
	lossRNG := rng.ForSubsystem(sim.SubsystemSimulatorLoss)
	decoderRNG := rng.ForSubsystem(sim.SubsystemDecoderQueue)

	state := &clientState{fidelity: 1.0}
	if continuousOp != nil {
		state.reservoir = float64(continuousOp.ReservoirSize)
	}

	for cycle := 1; cycle <= totalCycles; cycle++ {
		if !s.bus.ShouldRun(clientID) {
			s.bus.Send(clientID, buildFrame(telemetry.StatusStopped, int(state.cycle), totalCycles, state))
			return
		}

		s.clock.Sleep(time.Duration(profile.CycleWindowMs * float64(time.Millisecond)))

		state.cycle = uint64(cycle)

		jitter := heatingJitterMin + jitterRNG.Float64()*(heatingJitterMax-heatingJitterMin)
		state.nVib += heatingMeanPerCycle * jitter
		if state.nVib > coolingThreshold {
			state.nVib = coolingResetValue
		}

		if state.atomsLost < atomCeiling && lossRNG.Float64() < perCycleLossProbability {
			state.atomsLost++
		}

		state.fidelity *= 1 - fidelityDecayFactor*state.nVib

		if continuousOp != nil {
			cycleSeconds := profile.CycleWindowMs / millisPerSecond
			state.reservoir = math.Min(float64(continuousOp.ReservoirSize), state.reservoir+continuousOp.ReplenishmentRate*cycleSeconds)

			if state.fidelity < continuousOp.ReloadThreshold && state.atomsLost > 0 && state.reservoir >= float64(state.atomsLost) {
				state.reservoir -= float64(state.atomsLost)
				state.atomsLost = 0
				state.nVib = 0
				state.fidelity = continuousOp.TargetFidelity
			}
		}

		state.codeDistance = physics.CodeDistanceForCycle(int64(cycle))
		backlogMs := state.decoderQueue.Advance(state.codeDistance, profile, decoderRNG)
		state.lastBacklogMs = backlogMs

		status := telemetry.StatusRunning
		if cycle == totalCycles {
			status = telemetry.StatusCompleted
		}
		s.bus.Send(clientID, frameFromState(status, cycle, totalCycles, state, backlogMs))
	}
}

func buildFrame(status telemetry.Status, cycle, totalCycles int, state *clientState) telemetry.Frame {
	return frameFromState(status, cycle, totalCycles, state, state.lastBacklogMs)
}

func frameFromState(status telemetry.Status, cycle, totalCycles int, state *clientState, backlogMs float64) telemetry.Frame {
	return telemetry.Frame{
		Status:           status,
		Percentage:       cycle * 100 / totalCycles,
		Cycle:            state.cycle,
		AtomsLost:        state.atomsLost,
		NVib:             roundTo(state.nVib, nVibRoundDigits),
		Fidelity:         roundTo(state.fidelity, fidelityRoundDigits),
		DecoderBacklogMs: roundTo(backlogMs, backlogRoundDigits),
		Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func roundTo(v float64, digits int) float64 {
	scale := 1.0
	for i := 0; i < digits; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}
