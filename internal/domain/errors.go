package domain

import "errors"

var ErrAccountNotFound = errors.New("account not found")

// LoginError wraps a failure from the createSession call. The account store is
// never touched when login fails.
type LoginError struct {
	Err error
}

func (e *LoginError) Error() string {
	return "login failure: " + e.Err.Error()
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// ResumeError wraps a failure to re-establish a session from persisted
// credentials. The stored credential bundle is left intact so a later resume
// can retry; transient network failures do not invalidate tokens.
type ResumeError struct {
	DID DID
	Err error
}

func (e *ResumeError) Error() string {
	return "resume failure for " + string(e.DID) + ": " + e.Err.Error()
}

func (e *ResumeError) Unwrap() error {
	return e.Err
}
