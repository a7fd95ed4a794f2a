package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fleetlink/connectedcar/internal/errs"
)

// Validatable is implemented by payload types that know how to validate
// themselves after decoding. Every domain type accepted as a request
// body implements it.
type Validatable interface {
	Validate() error
}

// Codec is the single serialization configuration shared by encode and
// decode, so a value encoded here always decodes back to an equal value
// through the same codec.
//
// Output is pretty-printed, enums render by symbolic name (the domain
// enums implement encoding.TextMarshaler), and HTML-significant
// characters are escaped so bodies are safe to embed in HTML/script
// contexts.
type Codec struct {
	indent string
}

// NewCodec returns the codec used process-wide. It is immutable after
// construction.
func NewCodec() *Codec {
	return &Codec{indent: "  "}
}

// Encode serializes a domain value to the response body form. It fails
// only for values that cannot be represented as JSON at all.
func (c *Codec) Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	enc.SetIndent("", c.indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	// Encoder appends a trailing newline; the body contract doesn't
	// include one.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a request body into dst and runs its validation. An
// absent body, malformed JSON, a shape mismatch, and failed validation
// all surface as the same Deserialization failure.
func (c *Codec) Decode(body *string, dst Validatable) error {
	if body == nil || strings.TrimSpace(*body) == "" {
		return errs.NewDeserialization(errors.New("request body is required"))
	}
	dec := json.NewDecoder(strings.NewReader(*body))
	if err := dec.Decode(dst); err != nil {
		return errs.NewDeserialization(err)
	}
	if err := dst.Validate(); err != nil {
		return errs.NewDeserialization(err)
	}
	return nil
}
