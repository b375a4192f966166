// Package source decodes JSON and YAML documents into the generic values that schemas
// adjust: map[string]any, []any, string, bool, nil and numbers.
//
// JSON numbers are kept as json.Number so integers beyond 2^53 survive until a schema
// decides how to read them.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrTrailingData is returned when a JSON document is followed by more data.
var ErrTrailingData = errors.New("source: trailing data after JSON document")

// DecodeJSON decodes exactly one JSON document from r.
func DecodeJSON(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// DecodeJSONBytes is DecodeJSON over a byte slice.
func DecodeJSONBytes(b []byte) (any, error) { return DecodeJSON(bytes.NewReader(b)) }

// DecodeYAML decodes the first YAML document in b. Mapping keys that are not strings are
// dropped so the result has the same shape as decoded JSON.
func DecodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("source: decode yaml: %w", err)
	}
	return normalize(v), nil
}

// Decode picks the decoder from a format name or file extension ("json", ".yaml", "yml").
func Decode(format string, b []byte) (any, error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json", "":
		return DecodeJSONBytes(b)
	case "yaml", "yml":
		return DecodeYAML(b)
	default:
		return nil, fmt.Errorf("source: unsupported format %q", format)
	}
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i])
		}
		return arr
	default:
		return v
	}
}
