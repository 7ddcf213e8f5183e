package goentity_test

import (
	"testing"

	"github.com/stretchr/objx"

	goentity "github.com/reoring/goentity"
)

type account struct {
	ID        int    `json:"id"`
	Nick      string `goentity:"name=nickname" json:"nick"`
	Hidden    string `json:"-"`
	FirstName string
	secret    string
	Title     string `goentity:"name=" json:"title"`
	Role      string `goentity:"name=,omitempty"`
	*audit
}

type audit struct {
	CreatedBy string `json:"created_by"`
}

func (a account) DisplayName() string { return a.FirstName + " (" + a.Nick + ")" }

func (a *account) PointerOnly() string { return "ptr" }

func TestLookup_StructFieldsAndTags(t *testing.T) {
	a := account{ID: 7, Nick: "bb", Hidden: "h", FirstName: "Bob", secret: "s", Title: "Dr", Role: "admin"}
	cases := []struct {
		name string
		want any
		ok   bool
	}{
		{"id", 7, true},
		{"nickname", "bb", true},
		{"nick", nil, false},
		{"Hidden", nil, false},
		{"FirstName", "Bob", true},
		{"first_name", "Bob", true},
		{"secret", nil, false},
		{"created_by", nil, false}, // nil embedded pointer
		{"display_name", "Bob (bb)", true},
		{"pointer_only", nil, false},
		{"title", "Dr", true},
		{"Role", "admin", true},
		{"role", "admin", true},
	}
	for _, c := range cases {
		got, ok := goentity.Lookup(a, c.name)
		if ok != c.ok || got != c.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", c.name, got, ok, c.want, c.ok)
		}
	}

	a.audit = &audit{CreatedBy: "root"}
	if got, _ := goentity.Lookup(&a, "created_by"); got != "root" {
		t.Fatalf("promoted field: %v", got)
	}
	if got, _ := goentity.Lookup(&a, "pointer_only"); got != "ptr" {
		t.Fatalf("pointer method: %v", got)
	}
}

func TestLookup_Maps(t *testing.T) {
	type labels map[string]string
	cases := []struct {
		obj  any
		name string
		want any
	}{
		{map[string]any{"name": "Bob"}, "name", "Bob"},
		{objx.Map{"name": "Bob"}, "name", "Bob"},
		{labels{"name": "Bob"}, "name", "Bob"},
		{map[int]string{1: "x"}, "1", nil},
	}
	for i, c := range cases {
		if got, _ := goentity.Lookup(c.obj, c.name); got != c.want {
			t.Errorf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestLookup_AttributesCapability(t *testing.T) {
	obj := goentity.AttributeFunc(func(name string) (any, bool) {
		if name == "name" {
			return "Bob", true
		}
		return nil, false
	})
	if got, ok := goentity.Lookup(obj, "name"); !ok || got != "Bob" {
		t.Fatalf("unexpected %v", got)
	}
	if _, ok := goentity.Lookup(obj, "email"); ok {
		t.Fatalf("missing attribute should report ok=false")
	}
}

func TestLookup_NilAndScalars(t *testing.T) {
	for _, obj := range []any{nil, (*account)(nil), map[string]any(nil), 42, "abc"} {
		if got, ok := goentity.Lookup(obj, "name"); ok || got != nil {
			t.Errorf("Lookup(%#v) = %v, %v", obj, got, ok)
		}
	}
}

func TestLookup_JSONPath(t *testing.T) {
	doc := map[string]any{
		"address": map[string]any{"city": "Kyoto"},
		"tags":    []any{"a", "b"},
	}
	if got, ok := goentity.Lookup(doc, "$.address.city"); !ok || got != "Kyoto" {
		t.Fatalf("unexpected %v, %v", got, ok)
	}
	if got, ok := goentity.Lookup(doc, "$.tags[1]"); !ok || got != "b" {
		t.Fatalf("unexpected %v, %v", got, ok)
	}
	if _, ok := goentity.Lookup(doc, "$.address.zip"); ok {
		t.Fatalf("unknown path should miss")
	}
}

func TestExposeFrom_ReadsOtherAttribute(t *testing.T) {
	e := goentity.NewEntity("Account")
	must(t, e.Expose([]string{"handle"}, goentity.ExposeOpt{From: "nickname"}, nil))
	must(t, e.Expose([]string{"city"}, goentity.ExposeOpt{From: "$.address.city"}, nil))

	r, _ := e.New(account{Nick: "bb"}, nil)
	if v, _ := r.SerializableHash(nil).Get("handle"); v != "bb" {
		t.Fatalf("unexpected handle %v", v)
	}

	r, _ = e.New(map[string]any{"nickname": "cc", "address": map[string]any{"city": "Osaka"}}, nil)
	h := r.SerializableHash(nil)
	if v, _ := h.Get("handle"); v != "cc" {
		t.Fatalf("unexpected handle %v", v)
	}
	if v, _ := h.Get("city"); v != "Osaka" {
		t.Fatalf("unexpected city %v", v)
	}
}
