package http

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

// Header is a single validated header entry
type Header struct {
	Name  string
	Value string
}

// Valid reports whether the entry satisfies the RFC 7230 grammar: the name
// must be a token and the value a legal field value.
func (h Header) Valid() bool {
	return httpguts.ValidHeaderFieldName(h.Name) && httpguts.ValidHeaderFieldValue(h.Value)
}

// ParseHeaders converts a name-to-value map into validated header entries.
// Entries that fail validation are dropped with a warning-level diagnostic;
// a single malformed header never aborts the rest. Output order follows map
// iteration order and is unspecified.
func ParseHeaders(m map[string]string, logger zerolog.Logger) []Header {
	headers := make([]Header, 0, len(m))
	for name, value := range m {
		h := Header{Name: name, Value: value}
		if !h.Valid() {
			logger.Warn().
				Str("name", name).
				Str("value", value).
				Msg("dropping invalid header")
			continue
		}
		headers = append(headers, h)
	}
	return headers
}

// ParseHeaderLines parses "Name: value" lines, as collected from repeated
// -H flags, into validated header entries. Line order is preserved. Lines
// without a colon or failing validation are dropped with a warning.
func ParseHeaderLines(lines []string, logger zerolog.Logger) []Header {
	headers := make([]Header, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			logger.Warn().
				Str("header", line).
				Msg("dropping malformed header line")
			continue
		}
		h := Header{
			Name:  strings.TrimSpace(parts[0]),
			Value: strings.TrimSpace(parts[1]),
		}
		if !h.Valid() {
			logger.Warn().
				Str("name", h.Name).
				Str("value", h.Value).
				Msg("dropping invalid header")
			continue
		}
		headers = append(headers, h)
	}
	return headers
}
