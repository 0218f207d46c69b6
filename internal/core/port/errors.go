package port

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCampaignSetNotFound is matched by every *NotFoundError via errors.Is.
var ErrCampaignSetNotFound = errors.New("campaign set not found")

// ErrEntityNotFound is returned by repository writes that matched no row.
var ErrEntityNotFound = errors.New("entity not found")

// NotFoundError is returned when a campaign set does not exist.
type NotFoundError struct {
	CampaignSetID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("campaign set %q not found", e.CampaignSetID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrCampaignSetNotFound }

// NewCampaignSetNotFound returns a *NotFoundError for id.
func NewCampaignSetNotFound(id string) error {
	return &NotFoundError{CampaignSetID: id}
}

// Operation error codes shared by all adapters.
const (
	CodePlatformError   = "PLATFORM_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
	CodeServerError     = "PLATFORM_UNAVAILABLE"
	CodeTimeout         = "TIMEOUT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidEntity   = "INVALID_ENTITY"
	CodeMissingRequired = "MISSING_REQUIRED_FIELD"
)

// OperationError is the generic failure of a platform entity operation.
// Retryable and RetryAfter inform the caller's scheduling; nothing in this
// module retries on its own.
type OperationError struct {
	Code       string
	Message    string
	Retryable  bool
	RetryAfter time.Duration
	Err        error
}

func (e *OperationError) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *OperationError) Unwrap() error { return e.Err }

// AsOperationError normalises any adapter error into an *OperationError.
// Deadline and cancellation errors become retryable timeouts.
func AsOperationError(err error) *OperationError {
	if err == nil {
		return nil
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &OperationError{Code: CodeTimeout, Message: err.Error(), Retryable: true, Err: err}
	}
	return &OperationError{Code: CodePlatformError, Message: err.Error(), Err: err}
}
