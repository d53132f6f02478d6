package xrpc

import (
	"errors"
	"fmt"
)

// Error codes the session gateway reacts to. Anything else is surfaced as-is.
const (
	codeExpiredToken = "ExpiredToken"
	codeInvalidToken = "InvalidToken"
)

// CallError is a non-2xx XRPC response, carrying the wire-level error code and
// human-readable message when the service provided them.
type CallError struct {
	NSID       string
	StatusCode int
	Code       string
	Message    string
}

func (e *CallError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s)", e.NSID, e.Code, e.Message)
	}

	return fmt.Sprintf("%s: unexpected status %d", e.NSID, e.StatusCode)
}

func isTokenError(err error) bool {
	var callErr *CallError
	if !errors.As(err, &callErr) {
		return false
	}

	return callErr.Code == codeExpiredToken || callErr.Code == codeInvalidToken
}
