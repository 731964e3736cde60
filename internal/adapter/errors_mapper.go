package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// HTTPError is a non-2xx answer of the service. It unwraps to one of the
// package sentinels, or to [ErrUnexpectedStatus] for unmapped codes.
type HTTPError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.kind, e.Body)
}

func (e *HTTPError) Unwrap() error { return e.kind }

// Permanent reports whether sending the same request again cannot succeed:
// the request was malformed, or the api key or route is wrong.
func (e *HTTPError) Permanent() bool {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}

// NewHTTPError classifies a non-2xx status code. An empty body is replaced
// by the status text.
func NewHTTPError(code int, body string) *HTTPError {
	body = strings.TrimSpace(body)
	if body == "" {
		body = http.StatusText(code)
	}

	kind, ok := statusErrors[code]
	if !ok {
		kind = ErrUnexpectedStatus
	}
	return &HTTPError{StatusCode: code, Body: body, kind: kind}
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}
	return NewHTTPError(code, string(resp.Body()))
}
