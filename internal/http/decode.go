package http

import (
	"encoding/json"

	"github.com/wesleyorama2/riposte/pkg/jsonschema"
)

// Decoder converts a raw response into a value of type T. Implementations
// report a plain error; the dispatcher wraps it into a DecodeError carrying
// the observed status and content type.
type Decoder[T any] interface {
	Decode(resp *RawResponse) (T, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[T any] func(*RawResponse) (T, error)

// Decode calls f
func (f DecoderFunc[T]) Decode(resp *RawResponse) (T, error) { return f(resp) }

// JSON decodes the response body as JSON into T
func JSON[T any]() Decoder[T] {
	return DecoderFunc[T](func(resp *RawResponse) (T, error) {
		var v T
		if err := json.Unmarshal(resp.Body, &v); err != nil {
			return v, err
		}
		return v, nil
	})
}

// Text returns the response body as a string
func Text() Decoder[string] {
	return DecoderFunc[string](func(resp *RawResponse) (string, error) {
		return string(resp.Body), nil
	})
}

// Bytes returns the raw response body
func Bytes() Decoder[[]byte] {
	return DecoderFunc[[]byte](func(resp *RawResponse) ([]byte, error) {
		return resp.Body, nil
	})
}

// ValidatedJSON validates the response body against a compiled schema before
// decoding it into T. Schema violations surface as decode errors, not
// transport errors.
func ValidatedJSON[T any](v *jsonschema.Validator) Decoder[T] {
	return DecoderFunc[T](func(resp *RawResponse) (T, error) {
		var zero T
		if err := v.Validate(resp.Body); err != nil {
			return zero, err
		}
		var out T
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			return zero, err
		}
		return out, nil
	})
}
