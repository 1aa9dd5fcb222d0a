package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds the round trip when a request does not set its own.
const DefaultTimeout = 5 * time.Second

// standardMethods are the verbs a request may carry.
var standardMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Request describes one HTTP call. The dispatcher builds a fresh underlying
// request per dispatch and never mutates the Request afterwards, so a value
// is safe to reuse as a template across calls.
type Request struct {
	Method  string
	URL     string
	Headers []Header
	Body    interface{}
	Pause   time.Duration
	Timeout time.Duration
}

// NewRequest creates a request for the given method and absolute URL
func NewRequest(method, rawURL string) *Request {
	return &Request{
		Method: method,
		URL:    rawURL,
	}
}

// WithHeader appends a single header entry. The entry is trusted as-is; use
// ParseHeaders or ParseHeaderLines for values coming from user input.
func (r *Request) WithHeader(name, value string) *Request {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
	return r
}

// WithHeaders appends validated entries produced by the header codec
func (r *Request) WithHeaders(headers []Header) *Request {
	r.Headers = append(r.Headers, headers...)
	return r
}

// WithBody sets the body of the request
func (r *Request) WithBody(body interface{}) *Request {
	r.Body = body
	return r
}

// WithPause defers dispatch of the network call by d. Zero means no delay.
func (r *Request) WithPause(d time.Duration) *Request {
	r.Pause = d
	return r
}

// WithTimeout bounds the round trip, measured from the end of the pause.
// Zero means DefaultTimeout.
func (r *Request) WithTimeout(d time.Duration) *Request {
	r.Timeout = d
	return r
}

// Build constructs the underlying http.Request. Errors here are construction
// errors: nothing has touched the network yet.
func (r *Request) Build(ctx context.Context) (*http.Request, error) {
	if !standardMethods[strings.ToUpper(r.Method)] {
		return nil, &BuildError{Reason: fmt.Sprintf("unsupported method %q", r.Method)}
	}
	if r.Pause < 0 {
		return nil, &BuildError{Reason: fmt.Sprintf("negative pause %v", r.Pause)}
	}
	if r.Timeout < 0 {
		return nil, &BuildError{Reason: fmt.Sprintf("negative timeout %v", r.Timeout)}
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, &BuildError{Reason: fmt.Sprintf("invalid URL %q", r.URL), Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &BuildError{Reason: fmt.Sprintf("URL %q is not absolute", r.URL)}
	}

	// Prepare the body
	var bodyReader io.Reader
	var contentType string
	if r.Body != nil {
		switch body := r.Body.(type) {
		case string:
			bodyReader = strings.NewReader(body)
		case []byte:
			bodyReader = bytes.NewReader(body)
		case io.Reader:
			bodyReader = body
		default:
			// Assume JSON for other types
			jsonBody, err := json.Marshal(body)
			if err != nil {
				return nil, &BuildError{Reason: "marshaling JSON body", Err: err}
			}
			bodyReader = bytes.NewReader(jsonBody)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(r.Method), u.String(), bodyReader)
	if err != nil {
		return nil, &BuildError{Reason: "constructing request", Err: err}
	}

	// Add headers; duplicate names are kept, precedence is the transport's
	// concern.
	for _, h := range r.Headers {
		req.Header.Add(h.Name, h.Value)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}
