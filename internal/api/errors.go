// ABOUTME: Error taxonomy for backend calls.
// ABOUTME: Every failure carries the operation name and, where applicable, HTTP status and raw body.
package api

import (
	"fmt"
	"net/http"
)

// Kind classifies a backend call failure.
type Kind int

const (
	// KindNetwork is a transport-level failure; never retried by this layer.
	KindNetwork Kind = iota + 1
	// KindAuth is a 401/403-class rejection. Surfaced as-is, no hidden re-auth.
	KindAuth
	// KindBadRequest is any other 4xx, usually a malformed date or id, and
	// also covers local usage errors caught before any network call.
	KindBadRequest
	// KindNotFound means the delete target does not exist.
	KindNotFound
	// KindServer is a 5xx; not retried.
	KindServer
	// KindDecode means the response body did not match the expected shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindAuth:
		return "authorization rejected"
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server error"
	case KindDecode:
		return "unexpected response shape"
	default:
		return "unknown error"
	}
}

// Error is the failure type for every Client operation. Body holds the raw
// response text so decode failures can be diagnosed without re-running.
type Error struct {
	Op     string
	Kind   Kind
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// kindForStatus maps a non-2xx HTTP status to its Kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindBadRequest
	default:
		return KindServer
	}
}
