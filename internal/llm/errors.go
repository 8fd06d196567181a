package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a provider failure for retry decisions.
type Kind int

const (
	// KindUnknown covers failures the transport could not classify.
	KindUnknown Kind = iota
	// KindBadRequest is a malformed request (HTTP 400). Never retried.
	KindBadRequest
	// KindAuth is a credential failure (HTTP 401/403). Never retried.
	KindAuth
	// KindRateLimited is a quota/rate failure (HTTP 429). Retried with long backoff.
	KindRateLimited
	// KindUnavailable is a service outage (HTTP 503). Retried with long backoff.
	KindUnavailable
	// KindTransient is any other retryable failure (timeouts, 5xx).
	KindTransient
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindAuth:
		return "auth"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "unavailable"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Fatal reports whether the failure should never be retried.
func (k Kind) Fatal() bool {
	return k == KindBadRequest || k == KindAuth
}

// APIError is a classified provider failure.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm api error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("llm api error (%s): %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// ClassifyStatus maps an HTTP status code to an error kind.
func ClassifyStatus(status int) Kind {
	switch {
	case status == 400:
		return KindBadRequest
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimited
	case status == 503:
		return KindUnavailable
	case status >= 500:
		return KindTransient
	default:
		return KindUnknown
	}
}

// ClassifyError returns the Kind attached to err, if any. For errors from
// SDKs that bury the status code in the message, it falls back to substring
// matching as a last-resort adapter at the transport boundary.
func ClassifyError(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "503") || strings.Contains(msg, "unavailable") || strings.Contains(msg, "overloaded"):
		return KindUnavailable
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return KindRateLimited
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "permission"):
		return KindAuth
	case strings.Contains(msg, "400") || strings.Contains(msg, "invalid argument"):
		return KindBadRequest
	default:
		return KindTransient
	}
}
