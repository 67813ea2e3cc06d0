package planner

import "fmt"

// ValidationError means the trip parameters are client-correctable.
// Handlers surface it as a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamError means the external model call failed at the transport
// level. Retryable by the user; never retried automatically.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return "generation service unavailable: " + e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// MalformedError means the model returned text with no usable JSON, or
// an itinerary with zero days. Fatal; no repair is attempted.
type MalformedError struct {
	Msg string
}

func (e *MalformedError) Error() string { return e.Msg }

func malformedf(format string, args ...any) error {
	return &MalformedError{Msg: fmt.Sprintf(format, args...)}
}
