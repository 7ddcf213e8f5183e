package dsl_test

import (
	"errors"
	"reflect"
	"testing"

	goentity "github.com/reoring/goentity"
	g "github.com/reoring/goentity/dsl"
)

type friend struct {
	Name    string
	Email   string
	Friends []friend
}

func TestBuilder_DeclaresInOrder(t *testing.T) {
	e, err := g.Entity("User").
		Expose("name", "email").
		Expose("friends").UsingSelf().
		Expose("nickname").As("handle").From("name").
		Expose("computed").Compute(func(_ any, opts goentity.Options) any { return opts["awesome"] }).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := []string{}
	for _, x := range e.Exposures() {
		got = append(got, x.Key())
	}
	if !reflect.DeepEqual(got, []string{"name", "email", "friends", "handle", "computed"}) {
		t.Fatalf("unexpected keys %v", got)
	}

	u := friend{Name: "Bob", Friends: []friend{{Name: "Friend 1"}}}
	r, _ := e.New(u, goentity.Options{"awesome": 123})
	h := r.SerializableHash(nil)
	if v, _ := h.Get("handle"); v != "Bob" {
		t.Fatalf("unexpected handle %v", v)
	}
	if v, _ := h.Get("computed"); v != 123 {
		t.Fatalf("unexpected computed %v", v)
	}
	fs, _ := h.Get("friends")
	if n, _ := fs.([]*goentity.Hash)[0].Get("name"); n != "Friend 1" {
		t.Fatalf("unexpected friend %v", n)
	}
}

func TestBuilder_Conditions(t *testing.T) {
	e := g.Entity("User").
		Expose("name").
		Expose("email").IfFlags(map[string]any{"private": true}).
		Expose("nickname").UnlessFlags(map[string]any{"formal": true}).
		Expose("badge").If(func(obj any, _ goentity.Options) bool { return obj.(friend).Name == "Bob" }).
		Expose("note").Unless(func(_ any, opts goentity.Options) bool { return opts["quiet"] == true }).
		MustBuild()

	r, _ := e.New(friend{Name: "Bob"}, nil)
	cases := []struct {
		opts goentity.Options
		want []string
	}{
		{goentity.Options{}, []string{"name", "nickname", "badge", "note"}},
		{goentity.Options{"private": true, "formal": true, "quiet": true}, []string{"name", "email", "badge"}},
	}
	for i, c := range cases {
		if got := r.SerializableHash(c.opts).Keys(); !reflect.DeepEqual(got, c.want) {
			t.Errorf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestBuilder_ReturnsDeclarationErrors(t *testing.T) {
	_, err := g.Entity("User").Expose("name", "email").As("foo").Build()
	if !errors.Is(err, goentity.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustBuild should panic")
		}
	}()
	g.Entity("User").Expose("a", "b").Compute(func(any, goentity.Options) any { return nil }).MustBuild()
}

func TestBuilder_FailedBuildAppliesNothing(t *testing.T) {
	b := g.Entity("User")
	if _, err := b.Expose("name").Expose("a", "b").As("x").Build(); err == nil {
		t.Fatalf("expected configuration error")
	}
	if n := b.Self().Len(); n != 0 {
		t.Fatalf("failed build left %d exposures", n)
	}

	e, err := b.Expose("c").Build()
	if err != nil {
		t.Fatalf("build after failure: %v", err)
	}
	if e.Len() != 1 {
		t.Fatalf("expected 1 exposure, got %d", e.Len())
	}
	if _, ok := e.Exposure("c"); !ok {
		t.Fatalf("missing exposure c")
	}
}

func TestBuilder_ExtendAndMeta(t *testing.T) {
	base := g.Entity("Base").Expose("id").Meta("doc", "identifier").MustBuild()
	child := g.Extend(base, "Child").Expose("name").MustBuild()

	if child.Parent() != base || child.Len() != 2 {
		t.Fatalf("unexpected child %v", child.Exposures())
	}
	x, _ := child.Exposure("id")
	if x.Meta["doc"] != "identifier" {
		t.Fatalf("meta lost: %v", x.Meta)
	}
}

func TestBuilder_SelfBeforeBuild(t *testing.T) {
	b := g.Entity("Node")
	e := b.Expose("children").Using(b.Self()).MustBuild()
	x, _ := e.Exposure("children")
	if x.Using != e {
		t.Fatalf("Self should be the built entity")
	}
}
