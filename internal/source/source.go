// Package source decodes input documents into plain map/slice trees that the
// attribute lookup understands.
package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("source: unsupported format %q", s)
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	p := strings.ToLower(path)
	if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Decode reads one document. Numbers become int64 when integral and float64
// otherwise.
func Decode(r io.Reader, f Format) (any, error) {
	switch f {
	case FormatYAML:
		var v any
		if err := yaml.NewDecoder(r).Decode(&v); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("source: yaml: %w", err)
		}
		return normalize(v), nil
	default:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("source: json: %w", err)
		}
		return normalize(v), nil
	}
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(b []byte, f Format) (any, error) { return Decode(bytes.NewReader(b), f) }

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int:
		return int64(t)
	}
	return v
}
