package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wesleyorama2/riposte/internal/bench"
	http "github.com/wesleyorama2/riposte/internal/http"
)

// Formatter renders requests, responses, and dispatch failures for the
// terminal
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats a request for display
func (f *Formatter) FormatRequest(req *http.Request) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(strings.ToUpper(req.Method)),
		f.scheme.URL.Sprint(req.URL)))

	if req.Pause > 0 {
		buf.WriteString(fmt.Sprintf("  Pause: %v\n", req.Pause))
	}
	if req.Timeout > 0 {
		buf.WriteString(fmt.Sprintf("  Timeout: %v\n", req.Timeout))
	}

	// Format headers if verbose or if there are headers
	if f.Verbose || len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, h := range req.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(h.Name),
				f.scheme.HeaderValue.Sprint(h.Value)))
		}
	}

	// Format body if present
	if req.Body != nil {
		buf.WriteString("  Body: ")
		switch body := req.Body.(type) {
		case string:
			buf.WriteString(formatJSONString(body))
		case []byte:
			buf.WriteString(formatJSONString(string(body)))
		default:
			jsonBody, err := json.Marshal(body)
			if err != nil {
				buf.WriteString(fmt.Sprintf("%v", body))
			} else {
				buf.WriteString(formatJSONString(string(jsonBody)))
			}
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats a raw response for display
func (f *Formatter) FormatResponse(resp *http.RawResponse) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		statusColor.Sprint(resp.Status),
		resp.DurationMillis()))

	// Format headers if verbose
	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n",
					f.scheme.HeaderKey.Sprint(key),
					f.scheme.HeaderValue.Sprint(value)))
			}
		}
	}

	// Format body
	if len(resp.Body) > 0 {
		buf.WriteString("  Body:\n")
		buf.WriteString(formatJSONString(resp.BodyString()))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatError formats a dispatch failure, styled by its kind in the error
// taxonomy
func (f *Formatter) FormatError(err error) string {
	icon := ErrorIcon(f.NoColor)

	var buildErr *http.BuildError
	var timeoutErr *http.TimeoutError
	var decodeErr *http.DecodeError
	var transportErr *http.TransportError

	switch {
	case errors.As(err, &buildErr):
		return fmt.Sprintf("%s %s %v\n", icon, f.scheme.Build.Sprint("BUILD"), buildErr)
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf("%s %s request timed out after %v\n",
			icon, f.scheme.Timeout.Sprint("TIMEOUT"), timeoutErr.After)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("%s %s status %d, content type %q: %v\n",
			icon, f.scheme.Decode.Sprint("DECODE"),
			decodeErr.StatusCode, decodeErr.ContentType, decodeErr.Err)
	case errors.As(err, &transportErr):
		return fmt.Sprintf("%s %s %v\n", icon, f.scheme.Transport.Sprint("TRANSPORT"), transportErr.Err)
	default:
		return fmt.Sprintf("%s %v\n", icon, err)
	}
}

// FormatBenchSummary formats the result of a bench run
func (f *Formatter) FormatBenchSummary(s *bench.Summary) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("Requests: %d in %v\n", s.Total, s.Elapsed.Round(time.Millisecond)))
	buf.WriteString(fmt.Sprintf("  %s ok: %d\n", SuccessIcon(f.NoColor), s.OK))
	if s.Failed() > 0 {
		buf.WriteString(fmt.Sprintf("  %s timeouts: %d, transport: %d, decode: %d\n",
			ErrorIcon(f.NoColor), s.Timeouts, s.Transport, s.Decode))
	}

	if s.OK+s.Decode > 0 {
		buf.WriteString("  Latency:\n")
		buf.WriteString(fmt.Sprintf("    min:  %v\n", s.Min()))
		buf.WriteString(fmt.Sprintf("    mean: %v\n", s.Mean()))
		buf.WriteString(fmt.Sprintf("    p50:  %v\n", s.Percentile(50)))
		buf.WriteString(fmt.Sprintf("    p90:  %v\n", s.Percentile(90)))
		buf.WriteString(fmt.Sprintf("    p99:  %v\n", s.Percentile(99)))
		buf.WriteString(fmt.Sprintf("    max:  %v\n", s.Max()))
	}

	return buf.String()
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, []byte(s), "  ", "  ")
	if err != nil {
		return s
	}
	return prettyJSON.String()
}
