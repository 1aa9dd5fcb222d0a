package http

import (
	"context"
	"net/http"
	"time"
)

// RequestOption tweaks a request built by one of the verb wrappers.
type RequestOption func(*Request)

// Pause defers dispatch of the network call
func Pause(d time.Duration) RequestOption {
	return func(r *Request) { r.Pause = d }
}

// Timeout bounds the round trip, measured from the end of the pause
func Timeout(d time.Duration) RequestOption {
	return func(r *Request) { r.Timeout = d }
}

// Dispatch executes req and decodes the body into T. It returns exactly one
// terminal outcome: the decoded value, or a build, transport, timeout, or
// decode error. At most one network call is issued; there is no retry.
func Dispatch[T any](ctx context.Context, d *Dispatcher, req *Request, dec Decoder[T]) (T, error) {
	var zero T

	resp, err := d.Do(ctx, req)
	if err != nil {
		return zero, err
	}

	v, err := dec.Decode(resp)
	if err != nil {
		return zero, &DecodeError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.ContentType(),
			Err:         err,
		}
	}
	return v, nil
}

// The verb wrappers below bind parameters and nothing else; all dispatch
// logic lives in Dispatch.

// Get dispatches a GET request with no body
func Get[T any](ctx context.Context, d *Dispatcher, url string, headers []Header, dec Decoder[T], opts ...RequestOption) (T, error) {
	return Dispatch(ctx, d, build(http.MethodGet, url, headers, nil, opts), dec)
}

// Delete dispatches a DELETE request with no body
func Delete[T any](ctx context.Context, d *Dispatcher, url string, headers []Header, dec Decoder[T], opts ...RequestOption) (T, error) {
	return Dispatch(ctx, d, build(http.MethodDelete, url, headers, nil, opts), dec)
}

// Post dispatches a POST request with the given body
func Post[T any](ctx context.Context, d *Dispatcher, url string, headers []Header, body interface{}, dec Decoder[T], opts ...RequestOption) (T, error) {
	return Dispatch(ctx, d, build(http.MethodPost, url, headers, body, opts), dec)
}

// Put dispatches a PUT request with the given body
func Put[T any](ctx context.Context, d *Dispatcher, url string, headers []Header, body interface{}, dec Decoder[T], opts ...RequestOption) (T, error) {
	return Dispatch(ctx, d, build(http.MethodPut, url, headers, body, opts), dec)
}

func build(method, url string, headers []Header, body interface{}, opts []RequestOption) *Request {
	req := NewRequest(method, url).WithHeaders(headers)
	if body != nil {
		req.WithBody(body)
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}
