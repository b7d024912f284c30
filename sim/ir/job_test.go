package ir

import (
	"errors"
	"testing"
)

func validRegister(t *testing.T) Register {
	t.Helper()
	r, err := NewRegister("triangular", 4, 8, atoms(1, 2), nil)
	if err != nil {
		t.Fatalf("unexpected error building register: %v", err)
	}
	return *r
}

func TestNewJobValid(t *testing.T) {
	reg := validRegister(t)
	ops := []Operation{{Kind: OpMeasurement, AtomIDs: []int{1}}}
	job, err := NewJob("job-1", "demo", "1.0", DeviceSpec{BackendID: "generic"}, reg, ops, SimulationParams{Shots: 100}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.JobID != "job-1" {
		t.Errorf("JobID = %q, want job-1", job.JobID)
	}
}

func TestNewJobEmptyOperations(t *testing.T) {
	reg := validRegister(t)
	_, err := NewJob("job-1", "demo", "1.0", DeviceSpec{}, reg, nil, SimulationParams{Shots: 10}, nil)
	var structErr *StructuralError
	if !errors.As(err, &structErr) || structErr.Code != ErrEmptyOperationList {
		t.Fatalf("expected ErrEmptyOperationList, got %v", err)
	}
}

func TestNewJobInvalidShotCount(t *testing.T) {
	reg := validRegister(t)
	ops := []Operation{{Kind: OpMeasurement, AtomIDs: []int{1}}}

	var structErr *StructuralError
	_, err := NewJob("job-1", "demo", "1.0", DeviceSpec{}, reg, ops, SimulationParams{Shots: 0}, nil)
	if !errors.As(err, &structErr) || structErr.Code != ErrInvalidShotCount {
		t.Fatalf("expected ErrInvalidShotCount for 0 shots, got %v", err)
	}

	_, err = NewJob("job-1", "demo", "1.0", DeviceSpec{}, reg, ops, SimulationParams{Shots: 100001}, nil)
	if !errors.As(err, &structErr) || structErr.Code != ErrInvalidShotCount {
		t.Fatalf("expected ErrInvalidShotCount for excessive shots, got %v", err)
	}
}

func TestNewJobUnknownAtomReference(t *testing.T) {
	reg := validRegister(t)
	ops := []Operation{{Kind: OpMeasurement, AtomIDs: []int{99}}}

	var structErr *StructuralError
	_, err := NewJob("job-1", "demo", "1.0", DeviceSpec{}, reg, ops, SimulationParams{Shots: 10}, nil)
	if !errors.As(err, &structErr) || structErr.Code != ErrOperationUnknownAtom {
		t.Fatalf("expected ErrOperationUnknownAtom, got %v", err)
	}
}

func TestNewJobPropagatesRegisterValidation(t *testing.T) {
	badReg := Register{
		LayoutType:      "triangular",
		MinAtomDistance: 0, // not yet defaulted
		BlockadeRadius:  0,
		Atoms:           nil,
	}
	ops := []Operation{{Kind: OpMeasurement}}

	var structErr *StructuralError
	_, err := NewJob("job-1", "demo", "1.0", DeviceSpec{}, badReg, ops, SimulationParams{Shots: 10}, nil)
	if !errors.As(err, &structErr) || structErr.Code != ErrEmptyAtomList {
		t.Fatalf("expected ErrEmptyAtomList, got %v", err)
	}
}

func TestNewJobPropagatesOperationValidation(t *testing.T) {
	reg := validRegister(t)
	ops := []Operation{{Kind: OpGlobalPulse}} // missing Omega

	_, err := NewJob("job-1", "demo", "1.0", DeviceSpec{}, reg, ops, SimulationParams{Shots: 10}, nil)
	if err == nil {
		t.Fatal("expected an error for invalid operation")
	}
}
