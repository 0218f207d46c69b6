package queue

import "fmt"

// FailuresError reports a sync run that finished with retryable failures.
type FailuresError struct {
	Failed int
	Total  int
}

func (e *FailuresError) Error() string {
	return fmt.Sprintf("%d of %d campaigns failed with retryable errors", e.Failed, e.Total)
}

// ExhaustedError is the reason a job is dropped after its last attempt.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }
