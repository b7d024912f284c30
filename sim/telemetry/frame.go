package telemetry

// Status is a telemetry frame's lifecycle tag (spec §6 item 5).
type Status string

const (
	StatusConnecting  Status = "CONNECTING"
	StatusRunning     Status = "RUNNING"
	StatusCompleted   Status = "COMPLETED"
	StatusStopped     Status = "STOPPED"
	StatusError       Status = "ERROR"
	StatusAuthRequired Status = "AUTH_REQUIRED"
)

// Frame is one telemetry update emitted at a cycle boundary. Field names
// and JSON tags match the wire shape of spec.md §6 item 5 exactly.
type Frame struct {
	Status           Status  `json:"status"`
	Percentage       int     `json:"percentage"`
	Cycle            uint64  `json:"cycle"`
	AtomsLost        uint64  `json:"atoms_lost"`
	NVib             float64 `json:"n_vib"`
	Fidelity         float64 `json:"fidelity"`
	DecoderBacklogMs float64 `json:"decoder_backlog_ms"`
	Timestamp        string  `json:"timestamp"`
}
