// Package bench repeats one request dispatch and aggregates latency and
// outcome statistics with an HDR histogram.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	riposte "github.com/wesleyorama2/riposte/internal/http"
)

// Options controls a bench run
type Options struct {
	// Requests is the total number of dispatches to issue
	Requests int

	// Concurrency is the number of workers issuing them (default 1)
	Concurrency int
}

// Summary aggregates the outcomes of a bench run. Latencies are recorded in
// microseconds with 3 significant figures; only completed round trips
// (success or decode failure) contribute to the histogram, since a timeout's
// latency is the timeout itself.
type Summary struct {
	Total     int
	OK        int
	Timeouts  int
	Transport int
	Decode    int
	Elapsed   time.Duration

	hist   *hdrhistogram.Histogram
	histMu sync.Mutex
}

func newSummary() *Summary {
	return &Summary{
		// 1 microsecond to 1 hour, 3 significant figures
		hist: hdrhistogram.New(1, 3600000000, 3),
	}
}

func (s *Summary) record(latency time.Duration) {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	s.hist.RecordValue(latency.Microseconds())
}

// Percentile returns the latency at the given percentile
func (s *Summary) Percentile(p float64) time.Duration {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	return time.Duration(s.hist.ValueAtQuantile(p)) * time.Microsecond
}

// Min returns the smallest recorded latency
func (s *Summary) Min() time.Duration {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	return time.Duration(s.hist.Min()) * time.Microsecond
}

// Max returns the largest recorded latency
func (s *Summary) Max() time.Duration {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	return time.Duration(s.hist.Max()) * time.Microsecond
}

// Mean returns the mean recorded latency
func (s *Summary) Mean() time.Duration {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	return time.Duration(s.hist.Mean()) * time.Microsecond
}

// Failed returns the number of dispatches that did not produce a decoded value
func (s *Summary) Failed() int {
	return s.Timeouts + s.Transport + s.Decode
}

// Run issues opts.Requests independent dispatches of req and collects a
// Summary. Each iteration builds its request fresh; nothing is shared
// between iterations except the dispatcher's transport pool.
func Run[T any](ctx context.Context, d *riposte.Dispatcher, req *riposte.Request, dec riposte.Decoder[T], opts Options) (*Summary, error) {
	if opts.Requests <= 0 {
		return nil, fmt.Errorf("bench requires a positive request count, got %d", opts.Requests)
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > opts.Requests {
		concurrency = opts.Requests
	}

	summary := newSummary()
	summary.Total = opts.Requests

	var (
		okCount        int
		timeoutCount   int
		transportCount int
		decodeCount    int
		countMu        sync.Mutex
	)

	work := make(chan struct{})
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range work {
				iterStart := time.Now()
				_, err := riposte.Dispatch(ctx, d, req, dec)
				latency := time.Since(iterStart)

				countMu.Lock()
				switch {
				case err == nil:
					okCount++
					summary.record(latency)
				case errors.Is(err, riposte.ErrTimeout):
					timeoutCount++
				default:
					var de *riposte.DecodeError
					if errors.As(err, &de) {
						decodeCount++
						summary.record(latency)
					} else {
						transportCount++
					}
				}
				countMu.Unlock()
			}
		}()
	}

	for i := 0; i < opts.Requests; i++ {
		select {
		case work <- struct{}{}:
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(work)
	wg.Wait()

	summary.OK = okCount
	summary.Timeouts = timeoutCount
	summary.Transport = transportCount
	summary.Decode = decodeCount
	summary.Elapsed = time.Since(start)

	return summary, nil
}
