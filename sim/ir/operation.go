package ir

import "math"

// OperationKind is the tag of the Operation sum type.
type OperationKind string

const (
	OpGlobalPulse     OperationKind = "GLOBAL_PULSE"
	OpLocalDetuning   OperationKind = "LOCAL_DETUNING"
	OpShuttleMove     OperationKind = "SHUTTLE_MOVE"
	OpRydbergGate     OperationKind = "RYDBERG_GATE"
	OpMeasurement     OperationKind = "MEASUREMENT"
	OpShieldingEvent  OperationKind = "SHIELDING_EVENT"
	OpReloadOperation OperationKind = "RELOAD_OPERATION"
)

// Trajectory is the shuttle-move path shape.
type Trajectory string

const (
	TrajectoryLinear      Trajectory = "linear"
	TrajectoryMinimumJerk Trajectory = "minimum_jerk"
	TrajectorySine        Trajectory = "sine"
)

// GateType names a supported two-qubit Rydberg gate.
type GateType string

const (
	GateCZ     GateType = "CZ"
	GateCPHASE GateType = "CPHASE"
)

// Basis names a measurement basis.
type Basis string

const (
	BasisComputational Basis = "computational"
	BasisX             Basis = "x"
	BasisY             Basis = "y"
)

// ShieldingMode toggles a zone's Autler-Townes shielding light.
type ShieldingMode string

const (
	ShieldingActivate   ShieldingMode = "activate"
	ShieldingDeactivate ShieldingMode = "deactivate"
)

// Operation is a tagged variant over the seven hardware operation cases of
// spec.md §3. Only the fields relevant to Kind are populated.
type Operation struct {
	Kind        OperationKind `json:"kind"`
	StartTimeNs int64         `json:"start_time_ns"`

	// GlobalPulse
	Channel  string    `json:"channel,omitempty"`
	Omega    *Waveform `json:"omega,omitempty"`
	Detuning *Waveform `json:"detuning,omitempty"`
	Phase    *float64  `json:"phase,omitempty"`

	// LocalDetuning
	TargetAtoms []int     `json:"target_atoms,omitempty"`
	Weights     []float64 `json:"weights,omitempty"`

	// ShuttleMove
	AtomIDs         []int      `json:"atom_ids,omitempty"`
	DurationNs      int64      `json:"duration_ns,omitempty"`
	TargetPositions []Position `json:"target_positions,omitempty"`
	Trajectory      Trajectory `json:"trajectory,omitempty"`

	// RydbergGate
	ControlAtom *int      `json:"control_atom,omitempty"`
	TargetAtom  *int      `json:"target_atom,omitempty"`
	GateType    GateType  `json:"gate_type,omitempty"`
	Pulse       *Waveform `json:"pulse,omitempty"`

	// Measurement
	Basis Basis `json:"basis,omitempty"`

	// ShieldingEvent
	ZoneIDs []string      `json:"zone_ids,omitempty"`
	Mode    ShieldingMode `json:"mode,omitempty"`

	// ReloadOperation
	TargetSlots       []int  `json:"target_slots,omitempty"`
	SourceZone        string `json:"source_zone,omitempty"`
	LoadingDurationNs int64  `json:"loading_duration_ns,omitempty"`
	PostCooling       bool   `json:"post_cooling,omitempty"`
}

// DefaultRydbergPulseDurationNs is the implied pulse duration for a
// RydbergGate that omits an explicit pulse waveform.
const DefaultRydbergPulseDurationNs = 200

// Duration returns the implied duration, in ns, per the table in spec.md §3.
func (o Operation) Duration() int64 {
	switch o.Kind {
	case OpGlobalPulse:
		return o.Omega.DurationNs
	case OpLocalDetuning:
		return o.Detuning.DurationNs
	case OpShuttleMove:
		return o.DurationNs
	case OpRydbergGate:
		if o.Pulse != nil {
			return o.Pulse.DurationNs
		}
		return DefaultRydbergPulseDurationNs
	case OpMeasurement:
		return 0
	case OpShieldingEvent:
		return o.DurationNs
	case OpReloadOperation:
		return o.LoadingDurationNs
	default:
		return 0
	}
}

// EndTimeNs returns StartTimeNs + Duration().
func (o Operation) EndTimeNs() int64 {
	return o.StartTimeNs + o.Duration()
}

// ReferencedAtomIDs returns the atom ids this operation acts on, used for
// job-level existence checking. ReloadOperation's TargetSlots name physical
// trap slots being (re)populated, not existing register atoms, so they are
// intentionally excluded.
func (o Operation) ReferencedAtomIDs() []int {
	switch o.Kind {
	case OpLocalDetuning:
		return o.TargetAtoms
	case OpShuttleMove:
		return o.AtomIDs
	case OpRydbergGate:
		var ids []int
		if o.ControlAtom != nil {
			ids = append(ids, *o.ControlAtom)
		}
		if o.TargetAtom != nil {
			ids = append(ids, *o.TargetAtom)
		}
		return ids
	case OpMeasurement:
		return o.AtomIDs
	case OpShieldingEvent:
		return o.AtomIDs
	default:
		return nil
	}
}

// Validate checks the case-specific structural invariants of spec.md §3.
func (o Operation) Validate() error {
	if o.StartTimeNs < 0 {
		return newErr(ErrInvalidOperationField, "start_time must be >= 0, got %d", o.StartTimeNs)
	}
	switch o.Kind {
	case OpGlobalPulse:
		if o.Omega == nil {
			return newErr(ErrWaveformMissingParam, "GlobalPulse requires omega")
		}
		if err := o.Omega.Validate(); err != nil {
			return err
		}
		if o.Detuning != nil {
			if err := o.Detuning.Validate(); err != nil {
				return err
			}
		}
		if o.Phase != nil && (*o.Phase < 0 || *o.Phase >= 2*math.Pi) {
			return newErr(ErrInvalidOperationField, "phase must lie within [0,2π), got %v", *o.Phase)
		}
	case OpLocalDetuning:
		if o.Detuning == nil {
			return newErr(ErrWaveformMissingParam, "LocalDetuning requires detuning")
		}
		if err := o.Detuning.Validate(); err != nil {
			return err
		}
		if o.Weights != nil && len(o.Weights) != len(o.TargetAtoms) {
			return newErr(ErrWeightsCountMismatch, "weights length %d does not match target_atoms length %d", len(o.Weights), len(o.TargetAtoms))
		}
	case OpShuttleMove:
		if len(o.TargetPositions) != len(o.AtomIDs) {
			return newErr(ErrPositionCountMismatch, "target_positions length %d does not match atom_ids length %d", len(o.TargetPositions), len(o.AtomIDs))
		}
		if o.DurationNs <= 0 {
			return newErr(ErrInvalidDuration, "ShuttleMove duration must be > 0 ns, got %d", o.DurationNs)
		}
		switch o.Trajectory {
		case TrajectoryLinear, TrajectoryMinimumJerk, TrajectorySine:
		default:
			return newErr(ErrInvalidOperationField, "unknown trajectory %q", o.Trajectory)
		}
	case OpRydbergGate:
		if o.ControlAtom == nil || o.TargetAtom == nil {
			return newErr(ErrInvalidOperationField, "RydbergGate requires control_atom and target_atom")
		}
		switch o.GateType {
		case GateCZ, GateCPHASE:
		default:
			return newErr(ErrInvalidOperationField, "unknown gate_type %q", o.GateType)
		}
		if o.Pulse != nil {
			if err := o.Pulse.Validate(); err != nil {
				return err
			}
		}
	case OpMeasurement:
		switch o.Basis {
		case "", BasisComputational, BasisX, BasisY:
		default:
			return newErr(ErrInvalidOperationField, "unknown basis %q", o.Basis)
		}
	case OpShieldingEvent:
		if o.DurationNs <= 0 {
			return newErr(ErrInvalidDuration, "ShieldingEvent duration must be > 0 ns, got %d", o.DurationNs)
		}
		switch o.Mode {
		case ShieldingActivate, ShieldingDeactivate:
		default:
			return newErr(ErrInvalidOperationField, "unknown shielding mode %q", o.Mode)
		}
	case OpReloadOperation:
		if o.LoadingDurationNs <= 0 {
			return newErr(ErrInvalidDuration, "ReloadOperation loading_duration_ns must be > 0, got %d", o.LoadingDurationNs)
		}
	default:
		return newErr(ErrUnknownOperationKind, "unknown operation kind %q", o.Kind)
	}
	return nil
}
