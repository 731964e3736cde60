package utils

import (
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithRateLimit(5, 1)
//	resp, err := client.R().Post("https://hsm.example.com/1.0/KEY/ProcessData/ID")
type HTTPClient struct {
	*resty.Client

	limiter *rate.Limiter
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRateLimit paces outgoing requests with a token bucket of rps requests
// per second and the given burst. A non-positive rps leaves the client
// unpaced. Waiting for a token honours the request context.
func (c *HTTPClient) WithRateLimit(rps float64, burst int) *HTTPClient {
	if rps <= 0 || c.limiter != nil {
		return c
	}
	if burst < 1 {
		burst = 1
	}

	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		return c.limiter.Wait(r.Context())
	})
	return c
}

// Limiter returns the request limiter, or nil when the client is unpaced.
func (c *HTTPClient) Limiter() *rate.Limiter {
	return c.limiter
}

// RequestIDHeader carries the request id taken from the request context.
const RequestIDHeader = "X-Request-ID"

// WithRequestIDHeader copies the request id stored by [WithRequestID] into
// the [RequestIDHeader] of every outgoing request.
func (c *HTTPClient) WithRequestIDHeader() *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if id, ok := GetRequestIDFromContext(r.Context()); ok {
			r.SetHeader(RequestIDHeader, id)
		}
		return nil
	})
	return c
}
