package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseJob decodes a Job from JSON, rejecting any field not present in the
// schema (typos in a hand-written job fixture should fail loudly, not
// silently vanish). Register defaults are applied before validation so a
// caller need not repeat NewRegister's default-filling logic.
func ParseJob(data []byte) (*Job, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var j Job
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("decoding job: %w", err)
	}

	j.Register.ApplyDefaults()

	if err := j.validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Serialise encodes the Job back to JSON in canonical field order.
func (j *Job) Serialise() ([]byte, error) {
	return json.Marshal(j)
}
