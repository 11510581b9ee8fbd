package gateway

import (
	"fmt"
	"time"
)

// NotFoundError reports that the logical command never resolved, or
// that the resolved path stopped being executable by spawn time. Not
// retryable without operator intervention.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("executable not found: %s", e.Name)
}

// ExitError reports that the tool ran and exited nonzero. The stderr it
// produced is surfaced verbatim (trimmed) to the caller, never
// swallowed; stdout is carried for diagnostics.
type ExitError struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.Stderr)
}

// TimeoutError reports that the wall clock exceeded the invocation
// budget and the child was terminated. Partial output is discarded.
// Callers may retry, but repeated timeouts indicate a systemic issue.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command timed out after %s", e.Limit)
}
