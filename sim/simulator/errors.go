package simulator

import "fmt"

// SchedulingErrorCode identifies a malformed request to start or control a
// simulation run. These are the "Scheduling" taxonomy of spec.md §7.
type SchedulingErrorCode string

const (
	ErrInvalidBenchmarkType SchedulingErrorCode = "INVALID_BENCHMARK_TYPE"
	ErrInvalidClientID      SchedulingErrorCode = "INVALID_CLIENT_ID"
	ErrInvalidCycleCount    SchedulingErrorCode = "INVALID_CYCLE_COUNT"
)

// SchedulingError is the single Go type backing every scheduling error code
// above.
type SchedulingError struct {
	Code    SchedulingErrorCode
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newSchedulingErr(code SchedulingErrorCode, format string, args ...any) *SchedulingError {
	return &SchedulingError{Code: code, Message: fmt.Sprintf(format, args...)}
}
