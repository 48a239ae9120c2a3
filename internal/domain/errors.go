package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind enumerates every way a global quote lookup can fail.
type ErrorKind int

const (
	KindRateLimited ErrorKind = iota + 1
	KindUpstream
	KindMalformed
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindUpstream:
		return "upstream_error"
	case KindMalformed:
		return "malformed_response"
	case KindTransport:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Error is the single failure type returned by quote providers.
type Error struct {
	Kind ErrorKind
	// Message is the upstream text for KindRateLimited and KindUpstream.
	Message string
	// Raw holds the response body for KindMalformed.
	Raw []byte
	// StatusCode is set when the transport received a non-2xx response.
	StatusCode int
	// Timeout is set when the request hit its deadline or was canceled.
	Timeout bool
	Err     error
}

var (
	ErrRateLimited       = &Error{Kind: KindRateLimited}
	ErrUpstream          = &Error{Kind: KindUpstream}
	ErrMalformedResponse = &Error{Kind: KindMalformed}
	ErrTransport         = &Error{Kind: KindTransport}
)

func RateLimited(msg string) *Error { return &Error{Kind: KindRateLimited, Message: msg} }

func Upstream(msg string) *Error { return &Error{Kind: KindUpstream, Message: msg} }

func Malformed(raw []byte, cause error) *Error {
	return &Error{Kind: KindMalformed, Raw: raw, Err: cause}
}

func Transport(cause error, timeout bool) *Error {
	return &Error{Kind: KindTransport, Err: cause, Timeout: timeout}
}

// TransportStatus reports a non-2xx response. cause is the transport's own
// status error and stays reachable through errors.As.
func TransportStatus(code int, cause error) *Error {
	if cause == nil {
		cause = fmt.Errorf("unexpected status %d %s", code, http.StatusText(code))
	}
	return &Error{Kind: KindTransport, StatusCode: code, Err: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRateLimited, KindUpstream:
		return e.Message
	case KindMalformed:
		if e.Err != nil {
			return fmt.Sprintf("malformed response: %v: %s", e.Err, e.Raw)
		}
		return fmt.Sprintf("malformed response: %s", e.Raw)
	case KindTransport:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "transport error"
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Retryable reports whether repeating the same request may succeed.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindRateLimited:
		return true
	case KindTransport:
		if e.StatusCode == 0 {
			return true
		}
		return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
