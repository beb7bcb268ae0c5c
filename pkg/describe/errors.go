package describe

import "errors"

// ErrEmptySchema is returned when the dataset has no columns. It is
// raised before any engine execution and is the only input validation
// the package performs.
var ErrEmptySchema = errors.New("cannot describe a frame that has no columns")

// EngineError wraps a failure from the delegated aggregation execution.
// The underlying cause is surfaced unmodified through Unwrap.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return "describe: aggregation execution failed: " + e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
