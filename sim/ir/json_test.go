package ir

import (
	"encoding/json"
	"errors"
	"testing"
)

func sampleJob(t *testing.T) *Job {
	t.Helper()
	reg := validRegister(t)
	ops := []Operation{
		{Kind: OpMeasurement, AtomIDs: []int{1, 2}, Basis: BasisComputational},
	}
	job, err := NewJob("job-roundtrip", "demo", "1.0", DeviceSpec{BackendID: "generic"}, reg, ops, SimulationParams{Shots: 500}, nil)
	if err != nil {
		t.Fatalf("unexpected error building sample job: %v", err)
	}
	return job
}

func TestParseJobAppliesRegisterDefaults(t *testing.T) {
	raw := []byte(`{
		"version": "1.0",
		"device": {"backend_id": "generic"},
		"register": {
			"atoms": [{"id": 1, "position": {"x": 0, "y": 0}, "role": "SLM"}]
		},
		"operations": [{"kind": "MEASUREMENT", "atom_ids": [1]}],
		"simulation": {"shots": 10}
	}`)
	job, err := ParseJob(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Register.MinAtomDistance != DefaultMinAtomDistance {
		t.Errorf("MinAtomDistance = %v, want default %v", job.Register.MinAtomDistance, DefaultMinAtomDistance)
	}
	if job.Register.BlockadeRadius != DefaultBlockadeRadius {
		t.Errorf("BlockadeRadius = %v, want default %v", job.Register.BlockadeRadius, DefaultBlockadeRadius)
	}
}

func TestParseJobRejectsUnknownFields(t *testing.T) {
	raw := []byte(`{
		"version": "1.0",
		"device": {"backend_id": "generic"},
		"register": {"atoms": [{"id": 1, "position": {"x": 0, "y": 0}, "role": "SLM"}]},
		"operations": [{"kind": "MEASUREMENT", "atom_ids": [1]}],
		"simulation": {"shots": 10},
		"bogus_field": true
	}`)
	if _, err := ParseJob(raw); err == nil {
		t.Fatal("expected an error for unknown top-level field")
	}
}

func TestParseJobRejectsInvalidJob(t *testing.T) {
	raw := []byte(`{
		"version": "1.0",
		"device": {"backend_id": "generic"},
		"register": {"atoms": [{"id": 1, "position": {"x": 0, "y": 0}, "role": "SLM"}]},
		"operations": [],
		"simulation": {"shots": 10}
	}`)
	if _, err := ParseJob(raw); err == nil {
		t.Fatal("expected an error for empty operation list")
	}
}

func TestParseJobRejectsInvertedZoneOverTheWire(t *testing.T) {
	raw := []byte(`{
		"version": "1.0",
		"device": {"backend_id": "generic"},
		"register": {
			"atoms": [{"id": 1, "position": {"x": 0, "y": 0}, "role": "SLM"}],
			"zones": [{"zone_id": "z1", "zone_type": "STORAGE", "x_min": 10, "x_max": 0, "y_min": 0, "y_max": 10, "shielding_light": false}]
		},
		"operations": [{"kind": "MEASUREMENT", "atom_ids": [1]}],
		"simulation": {"shots": 10}
	}`)
	_, err := ParseJob(raw)
	var structErr *StructuralError
	if !errors.As(err, &structErr) || structErr.Code != ErrInvertedZoneBounds {
		t.Fatalf("expected ErrInvertedZoneBounds, got %v", err)
	}
}

func TestParseJobRejectsDuplicateZoneIDOverTheWire(t *testing.T) {
	raw := []byte(`{
		"version": "1.0",
		"device": {"backend_id": "generic"},
		"register": {
			"atoms": [{"id": 1, "position": {"x": 0, "y": 0}, "role": "SLM"}],
			"zones": [
				{"zone_id": "z1", "zone_type": "STORAGE", "x_min": 0, "x_max": 10, "y_min": 0, "y_max": 10, "shielding_light": false},
				{"zone_id": "z1", "zone_type": "READOUT", "x_min": 20, "x_max": 30, "y_min": 0, "y_max": 10, "shielding_light": false}
			]
		},
		"operations": [{"kind": "MEASUREMENT", "atom_ids": [1]}],
		"simulation": {"shots": 10}
	}`)
	_, err := ParseJob(raw)
	var structErr *StructuralError
	if !errors.As(err, &structErr) || structErr.Code != ErrDuplicateZoneID {
		t.Fatalf("expected ErrDuplicateZoneID, got %v", err)
	}
}

func TestJobRoundTrip(t *testing.T) {
	job := sampleJob(t)

	data, err := job.Serialise()
	if err != nil {
		t.Fatalf("Serialise error: %v", err)
	}

	parsed, err := ParseJob(data)
	if err != nil {
		t.Fatalf("ParseJob error: %v", err)
	}

	data2, err := parsed.Serialise()
	if err != nil {
		t.Fatalf("Serialise (2nd) error: %v", err)
	}

	var a, b map[string]any
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatalf("unmarshal a: %v", err)
	}
	if err := json.Unmarshal(data2, &b); err != nil {
		t.Fatalf("unmarshal b: %v", err)
	}

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", aj, bj)
	}
}
