package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a backend failure so callers can pick a recovery
// path: re-authenticate, show a not-found message, surface the server's
// detail, or offer a manual retry.
type ErrorKind string

const (
	KindAuth     ErrorKind = "auth"
	KindNotFound ErrorKind = "not_found"
	KindConflict ErrorKind = "conflict"
	KindService  ErrorKind = "service"
)

// Error is a failed backend call. Detail carries the server-provided
// message verbatim when one was present.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Kind, e.StatusCode)
}

// ErrNoToken is returned before any network call when an authenticated
// operation runs without a session token.
var ErrNoToken = &Error{Kind: KindAuth, StatusCode: http.StatusUnauthorized, Detail: "no session token"}

func kindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsAuth reports an invalid/expired/missing token. Callers must clear the
// session and force re-authentication; the condition is never retried.
func IsAuth(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAuth
}

func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

func IsConflict(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindConflict
}

// Detail extracts the server-provided message, falling back to the plain
// error text for transport-level failures.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Detail != "" {
		return e.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func errorFromStatus(status int, detail string) *Error {
	var kind ErrorKind
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusBadRequest || status == http.StatusConflict ||
		status == http.StatusUnprocessableEntity:
		kind = KindConflict
	default:
		kind = KindService
	}
	return &Error{Kind: kind, StatusCode: status, Detail: detail}
}
