package reddit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campaign-sync/internal/core/port"
)

// APIError is a non-2xx response from the Reddit Ads API.
type APIError struct {
	Status     int
	Code       string
	Message    string
	Details    json.RawMessage
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("reddit api: %d", e.Status)
	if e.Code != "" {
		msg += " " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Retryable reports whether the request may succeed later.
func (e *APIError) Retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

type errorBody struct {
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Message string `json:"message"`
}

func decodeAPIError(resp *http.Response, body []byte, now time.Time) *APIError {
	apiErr := &APIError{
		Status:     resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), now),
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != nil {
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
			if d := bytes.TrimSpace(eb.Error.Details); len(d) > 0 && !bytes.Equal(d, []byte("null")) {
				apiErr.Details = d
			}
		} else {
			apiErr.Message = eb.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	return apiErr
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}

// toOperationError maps any error from the client into the generic adapter
// error, keeping retryability and the retry-after hint.
func toOperationError(op string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *port.OperationError
	if errors.As(err, &opErr) {
		return opErr
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		out := &port.OperationError{
			Message:    fmt.Sprintf("%s: %s", op, apiErr.Message),
			Retryable:  apiErr.Retryable(),
			RetryAfter: apiErr.RetryAfter,
			Err:        apiErr,
		}
		if len(apiErr.Details) > 0 {
			out.Message += " details=" + string(apiErr.Details)
		}
		switch {
		case apiErr.Status == http.StatusTooManyRequests:
			out.Code = port.CodeRateLimited
		case apiErr.Status >= 500:
			out.Code = port.CodeServerError
		case apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden:
			out.Code = port.CodeUnauthorized
		case apiErr.Status == http.StatusNotFound:
			out.Code = port.CodeNotFound
		case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
			out.Code = port.CodeInvalidEntity
		default:
			out.Code = port.CodePlatformError
		}
		return out
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		code := port.CodeServerError
		if netErr.Timeout() {
			code = port.CodeTimeout
		}
		return &port.OperationError{Code: code, Message: fmt.Sprintf("%s: %v", op, err), Retryable: true, Err: err}
	}

	opErr = port.AsOperationError(err)
	opErr.Message = fmt.Sprintf("%s: %s", op, opErr.Message)
	return opErr
}
