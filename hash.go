package goentity

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Hash is the ordered output mapping of one representation. Keys keep the
// order in which exposures were declared, including through JSON and YAML
// encoding.
type Hash struct {
	keys   []string
	values map[string]any
}

func newHash(capacity int) *Hash {
	return &Hash{keys: make([]string, 0, capacity), values: make(map[string]any, capacity)}
}

// Set stores key -> value, appending key on first use.
func (h *Hash) Set(key string, value any) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key.
func (h *Hash) Get(key string) (any, bool) {
	if h == nil {
		return nil, false
	}
	v, ok := h.values[canonicalName(key)]
	return v, ok
}

// Has reports whether key is present.
func (h *Hash) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Keys returns the keys in output order.
func (h *Hash) Keys() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.keys...)
}

// Len returns the number of keys.
func (h *Hash) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// ToMap converts h into plain maps and slices, recursively. Key order is lost.
func (h *Hash) ToMap() map[string]any {
	if h == nil {
		return nil
	}
	out := make(map[string]any, len(h.keys))
	for _, k := range h.keys {
		out[k] = plain(h.values[k])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Hash:
		return t.ToMap()
	case []*Hash:
		out := make([]any, len(t))
		for i, h := range t {
			out[i] = h.ToMap()
		}
		return out
	}
	return v
}

// MarshalJSON encodes h as a JSON object in key order.
func (h *Hash) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range h.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(h.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes h as a YAML mapping in key order.
func (h *Hash) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if h == nil {
		return node, nil
	}
	for _, k := range h.keys {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		vn := &yaml.Node{}
		if err := vn.Encode(h.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}
