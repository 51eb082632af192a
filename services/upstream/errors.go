package upstream

import (
	"errors"
	"fmt"
)

const (
	codeUnreachable   = "upstreamUnreachable"
	codeRequestFailed = "upstreamRequestFailed"
)

// UpstreamError is a failure talking to the reservation provider.
type UpstreamError struct {
	Code    string
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnreachableError wraps a transport-level failure (connection, TLS,
// deadline breach) reaching the provider.
func NewUnreachableError(msg string) error {
	return &UpstreamError{Code: codeUnreachable, Message: msg}
}

// NewRequestFailedError wraps a structured failure the provider itself
// reported (success=false or an error message in the payload).
func NewRequestFailedError(msg string) error {
	return &UpstreamError{Code: codeRequestFailed, Message: msg}
}

// IsUnreachable reports whether err is a transport-level upstream failure.
func IsUnreachable(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Code == codeUnreachable
}

// IsRequestFailed reports whether err is a provider-reported failure.
func IsRequestFailed(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Code == codeRequestFailed
}
