package wpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/pressflow-io/wpapi/internal/constants"
)

// Kind identifies the classified category of an API failure.
type Kind string

// Classification kinds produced by Classify.
const (
	KindNotModified      Kind = "not_modified"
	KindBadRequest       Kind = "bad_request"
	KindUnauthorized     Kind = "unauthorized"
	KindNonceReused      Kind = "nonce_reused"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindUnsupportedMedia Kind = "unsupported_media"
	KindRateLimited      Kind = "rate_limited"
	KindItemExists       Kind = "item_exists"
	KindServerError      Kind = "server_error"
	KindBadGateway       Kind = "bad_gateway"
	KindUnknownStatus    Kind = "unknown_status"
)

// Error represents a classified error from the WordPress API.
type Error struct {
	// Kind is the classified category of the failure.
	Kind Kind
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the WordPress error code from the response body, if any.
	Code string
	// Detail is the WordPress error message from the response body, if any.
	Detail string
	// Method and URL identify the request that failed.
	Method string
	URL    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("wpapi: %s: %s %s returned %d", e.Kind, e.Method, e.URL, e.StatusCode)
	if e.Code != "" {
		if e.Detail != "" {
			return fmt.Sprintf("%s (%s: %s)", msg, e.Code, e.Detail)
		}

		return fmt.Sprintf("%s (%s)", msg, e.Code)
	}

	return msg
}

// Retryable reports whether the failure is transient and worth another
// attempt. Everything else is fatal and propagates immediately.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindNonceReused, KindRateLimited, KindBadGateway:
		return true
	default:
		return false
	}
}

// Classify maps an HTTP status code plus the optional structured error body
// to a classified Error. It returns nil for 2xx responses. The method and
// requestURL identify the offending request in the error message.
func Classify(statusCode int, body []byte, method, requestURL string) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	err := &Error{
		StatusCode: statusCode,
		Code:       gjson.GetBytes(body, "code").String(),
		Detail:     gjson.GetBytes(body, "message").String(),
		Method:     method,
		URL:        requestURL,
	}

	switch statusCode {
	case http.StatusNotModified:
		err.Kind = KindNotModified
	case http.StatusBadRequest:
		err.Kind = KindBadRequest
	case http.StatusUnauthorized:
		if err.Code == constants.ErrorCodeNonceUsed {
			err.Kind = KindNonceReused
		} else {
			err.Kind = KindUnauthorized
		}
	case http.StatusForbidden:
		err.Kind = KindForbidden
	case http.StatusNotFound:
		err.Kind = KindNotFound
	case http.StatusMethodNotAllowed:
		err.Kind = KindMethodNotAllowed
	case http.StatusUnsupportedMediaType:
		err.Kind = KindUnsupportedMedia
	case http.StatusTooManyRequests:
		err.Kind = KindRateLimited
	case http.StatusInternalServerError:
		if err.Code == constants.ErrorCodeTermExists {
			err.Kind = KindItemExists
		} else {
			err.Kind = KindServerError
		}
	case http.StatusBadGateway:
		err.Kind = KindBadGateway
	default:
		err.Kind = KindUnknownStatus
	}

	return err
}

// Static errors raised at client construction.
var (
	ErrConfigRequired             = errors.New("config is required")
	ErrEndpointRequired           = errors.New("API endpoint is required")
	ErrNoCredentials              = errors.New("no credentials configured: provide either token or basic credentials")
	ErrAmbiguousCredentials       = errors.New("ambiguous credentials: provide either token or basic credentials, not both")
	ErrIncompleteTokenCredentials = errors.New("incomplete token credentials: client key, client secret, access token, and access secret are all required")
	ErrIncompleteBasicCredentials = errors.New("incomplete basic credentials: username and password are both required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsUnauthorized checks if the error is an unauthorized error, including the
// nonce-reuse sub-case.
func IsUnauthorized(err error) bool {
	kind := kindOf(err)

	return kind == KindUnauthorized || kind == KindNonceReused
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return kindOf(err) == KindForbidden
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return kindOf(err) == KindRateLimited
}

// IsItemExists checks if the error reports an already-existing item.
func IsItemExists(err error) bool {
	return kindOf(err) == KindItemExists
}

func kindOf(err error) Kind {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return ""
}
