package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Doer performs one HTTP round trip. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher executes requests inside a pause/timeout envelope. It holds no
// per-call state and is safe for concurrent use.
type Dispatcher struct {
	transport Doer
	logger    zerolog.Logger
	after     func(time.Duration) <-chan time.Time
}

// Option is a function that configures a Dispatcher
type Option func(*Dispatcher)

// NewDispatcher creates a dispatcher with the given options
func NewDispatcher(options ...Option) *Dispatcher {
	d := &Dispatcher{
		// No client-level timeout: the dispatch race owns the deadline.
		transport: &http.Client{},
		logger:    zerolog.Nop(),
		after:     time.After,
	}

	// Apply options
	for _, option := range options {
		option(d)
	}

	return d
}

// WithTransport replaces the underlying transport
func WithTransport(t Doer) Option {
	return func(d *Dispatcher) {
		d.transport = t
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithAfter replaces the timer used for both the pause and the timeout.
// The default is time.After.
func WithAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(d *Dispatcher) {
		d.after = after
	}
}

// Do executes one request and returns its fully-read response. The sequence
// is: build, pause, then race the round trip against the timeout timer. The
// caller receives exactly one terminal outcome and never waits longer than
// pause + timeout for it.
func (d *Dispatcher) Do(ctx context.Context, req *Request) (*RawResponse, error) {
	timeout := req.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpReq, err := req.Build(callCtx)
	if err != nil {
		return nil, err
	}

	// The pause is a cooperative wait: no goroutine is started and no
	// network activity happens until it elapses.
	if req.Pause > 0 {
		d.logger.Debug().
			Dur("pause", req.Pause).
			Str("url", req.URL).
			Msg("pausing before dispatch")
		select {
		case <-d.after(req.Pause):
		case <-ctx.Done():
			return nil, &TransportError{Err: ctx.Err()}
		}
	}

	type result struct {
		resp *RawResponse
		err  error
	}

	// Buffered so a round trip that loses the race can still deliver its
	// result and exit instead of leaking the goroutine.
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		httpResp, err := d.transport.Do(httpReq)
		if err != nil {
			done <- result{err: err}
			return
		}

		body, err := io.ReadAll(httpResp.Body)
		httpResp.Body.Close()
		if err != nil {
			done <- result{err: err}
			return
		}

		done <- result{resp: &RawResponse{
			StatusCode: httpResp.StatusCode,
			Status:     httpResp.Status,
			Headers:    httpResp.Header,
			Body:       body,
			Duration:   time.Since(start),
		}}
	}()

	// The timer starts at the same instant as the call, so the timeout is
	// measured from dispatch, not from the caller's invocation.
	timer := d.after(timeout)

	select {
	case r := <-done:
		if r.err != nil {
			return nil, &TransportError{Err: r.err}
		}
		d.logger.Debug().
			Int("status", r.resp.StatusCode).
			Dur("duration", r.resp.Duration).
			Str("url", req.URL).
			Msg("request completed")
		return r.resp, nil
	case <-timer:
		// Abandon the in-flight call. Cancelling the per-call context is
		// best effort: the transport stops waiting, and its eventual
		// result, if any, is discarded.
		cancel()
		d.logger.Debug().
			Dur("timeout", timeout).
			Str("url", req.URL).
			Msg("request timed out")
		return nil, &TimeoutError{After: timeout}
	}
}
