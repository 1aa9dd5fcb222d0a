package http

import (
	"net/http"
	"time"
)

// RawResponse is a fully-read HTTP response. The body is drained inside the
// dispatch race, so the request timeout bounds the read.
type RawResponse struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

// ContentType returns the declared content type of the response
func (r *RawResponse) ContentType() string {
	return r.Headers.Get("Content-Type")
}

// BodyString returns the response body as a string
func (r *RawResponse) BodyString() string {
	return string(r.Body)
}

// GetHeader returns the value of the specified header
func (r *RawResponse) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *RawResponse) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *RawResponse) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *RawResponse) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// DurationMillis returns the round-trip time in milliseconds
func (r *RawResponse) DurationMillis() int64 {
	return r.Duration.Milliseconds()
}
