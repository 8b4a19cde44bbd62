package api

import "fmt"

// StatusError reports a response whose status fell outside the accepted
// range for its request. The facade performs no local recovery; the error
// propagates to the caller as-is.
type StatusError struct {
	Code    int
	Snippet string
}

func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("unexpected response status %d", e.Code)
	}
	return fmt.Sprintf("unexpected response status %d: %s", e.Code, e.Snippet)
}
