package source

import (
	"reflect"
	"testing"
)

func TestDecode_JSONNormalizesNumbers(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"id":7,"score":1.5,"tags":["a"],"nested":{"n":2}}`), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"id":     int64(7),
		"score":  1.5,
		"tags":   []any{"a"},
		"nested": map[string]any{"n": int64(2)},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected value %#v", v)
	}
}

func TestDecode_YAML(t *testing.T) {
	v, err := DecodeBytes([]byte("- name: Bob\n  age: 40\n- name: Ann\n"), FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []any{
		map[string]any{"name": "Bob", "age": int64(40)},
		map[string]any{"name": "Ann"},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected value %#v", v)
	}
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	if v, err := DecodeBytes(nil, FormatJSON); err != nil || v != nil {
		t.Fatalf("empty json: %v, %v", v, err)
	}
	if v, err := DecodeBytes(nil, FormatYAML); err != nil || v != nil {
		t.Fatalf("empty yaml: %v, %v", v, err)
	}
	if _, err := DecodeBytes([]byte(`{"a":`), FormatJSON); err == nil {
		t.Fatalf("expected json error")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"json": FormatJSON, "YAML": FormatYAML, " yml ": FormatYAML}
	for in, want := range cases {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
	if FormatFromPath("a/b.yml") != FormatYAML || FormatFromPath("a.json") != FormatJSON {
		t.Fatalf("unexpected format guess")
	}
}
