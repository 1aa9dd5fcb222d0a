// Package http provides a one-shot HTTP request dispatcher with a
// pause/timeout envelope and generic response decoding.
//
// A Dispatcher executes exactly one network call per dispatch: it builds the
// request, optionally pauses before sending, then races the round trip
// against a timeout timer. Whichever finishes first determines the outcome.
// The body is decoded by a caller-supplied Decoder, so the same dispatch
// machinery serves typed JSON, plain text, raw bytes, or schema-validated
// payloads.
//
// Basic Usage:
//
//	d := http.NewDispatcher()
//
//	type User struct {
//	    Name string `json:"name"`
//	}
//
//	user, err := http.Get[User](context.Background(), d,
//	    "https://api.example.com/users/1", nil, http.JSON[User](),
//	    http.Timeout(2*time.Second))
//	if err != nil {
//	    var te *http.TimeoutError
//	    if errors.As(err, &te) {
//	        // retry policy for timeouts can differ from transport failures
//	    }
//	    log.Fatal(err)
//	}
//
// Failures are classified as construction, transport, timeout, or decode
// errors so callers can apply different policies to each.
//
// Thread Safety:
//
// Dispatcher holds no per-call state and is safe for concurrent use.
package http
