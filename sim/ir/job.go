package ir

import "fmt"

const (
	minShots = 1
	maxShots = 100000
)

// DeviceSpec selects a backend and optional capability overrides.
type DeviceSpec struct {
	BackendID    string             `json:"backend_id"`
	OverrideCaps map[string]float64 `json:"override_caps,omitempty"`
}

// SimulationParams configures backend selection, shot count, and which
// observables to compute.
type SimulationParams struct {
	Backend         string          `json:"backend,omitempty"`
	Shots           int             `json:"shots"`
	ObservableFlags map[string]bool `json:"observable_flags,omitempty"`
}

// ContinuousOperationParams configures the reload/replenishment behavior
// of the continuous-operation simulator (spec §4.4).
type ContinuousOperationParams struct {
	ReservoirSize     int     `json:"reservoir_size"`
	ReplenishmentRate float64 `json:"replenishment_rate"`
	ReloadThreshold   float64 `json:"reload_threshold"`
	TargetFidelity    float64 `json:"target_fidelity"`
}

// Job is the top-level unit submitted for validation, routing and
// simulation.
type Job struct {
	JobID               string                     `json:"job_id,omitempty"`
	Name                string                     `json:"name,omitempty"`
	Version             string                     `json:"version"`
	Device              DeviceSpec                 `json:"device"`
	Register            Register                   `json:"register"`
	Operations          []Operation                `json:"operations"`
	Simulation          SimulationParams           `json:"simulation"`
	ContinuousOperation *ContinuousOperationParams `json:"continuous_operation,omitempty"`
}

// NewJob validates and constructs a Job. The register must already be
// valid (use NewRegister); every operation is structurally validated and
// every atom it references must exist in the register.
func NewJob(jobID, name, version string, device DeviceSpec, register Register, operations []Operation, simulation SimulationParams, continuous *ContinuousOperationParams) (*Job, error) {
	j := &Job{
		JobID:               jobID,
		Name:                name,
		Version:             version,
		Device:              device,
		Register:            register,
		Operations:          operations,
		Simulation:          simulation,
		ContinuousOperation: continuous,
	}
	if err := j.validate(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Job) validate() error {
	if err := j.Register.Validate(); err != nil {
		return err
	}
	if len(j.Operations) == 0 {
		return newErr(ErrEmptyOperationList, "job must contain at least one operation")
	}
	if j.Simulation.Shots < minShots || j.Simulation.Shots > maxShots {
		return newErr(ErrInvalidShotCount, "shots must lie within [%d,%d], got %d", minShots, maxShots, j.Simulation.Shots)
	}

	known := make(map[int]bool, len(j.Register.Atoms))
	for _, a := range j.Register.Atoms {
		known[a.ID] = true
	}

	for i, op := range j.Operations {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		for _, id := range op.ReferencedAtomIDs() {
			if !known[id] {
				return newOpErr(ErrOperationUnknownAtom, i, "references unknown atom %d", id)
			}
		}
	}
	return nil
}
