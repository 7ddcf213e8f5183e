package dsl

import (
	"maps"

	goentity "github.com/reoring/goentity"
)

type entityBuilder struct {
	entity *goentity.Entity
	steps  []*exposeStep
}

type exposeStep struct {
	b       *entityBuilder
	names   []string
	opt     goentity.ExposeOpt
	self    bool
	compute goentity.ComputeFunc
}

// Entity creates a new builder for an empty entity.
func Entity(name string) *entityBuilder {
	return &entityBuilder{entity: goentity.NewEntity(name)}
}

// Extend creates a builder for an entity derived from parent.
func Extend(parent *goentity.Entity, name string) *entityBuilder {
	return &entityBuilder{entity: parent.Extend(name)}
}

// Self returns the entity under construction, usable as a Using target
// before Build.
func (b *entityBuilder) Self() *goentity.Entity { return b.entity }

// Expose starts a declaration for one or more attributes.
func (b *entityBuilder) Expose(names ...string) *exposeStep {
	st := &exposeStep{b: b, names: names}
	b.steps = append(b.steps, st)
	return st
}

// Build applies every pending declaration in order. Either all of them are
// applied or, on error, none are; pending declarations are consumed in both
// cases.
func (b *entityBuilder) Build() (*goentity.Entity, error) {
	decls := make([]goentity.Declaration, len(b.steps))
	for i, st := range b.steps {
		opt := st.opt
		if st.self {
			opt.Using = b.entity
		}
		decls[i] = goentity.Declaration{Names: st.names, Opt: opt, Compute: st.compute}
	}
	b.steps = nil
	if err := b.entity.ExposeAll(decls); err != nil {
		return nil, err
	}
	return b.entity, nil
}

// MustBuild is Build that panics on declaration errors.
func (b *entityBuilder) MustBuild() *goentity.Entity {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

// As renames the output key.
func (st *exposeStep) As(key string) *exposeStep {
	st.opt.As = key
	return st
}

// Using nests values through another entity.
func (st *exposeStep) Using(e *goentity.Entity) *exposeStep {
	st.opt.Using = e
	st.self = false
	return st
}

// UsingSelf nests values through the entity being built.
func (st *exposeStep) UsingSelf() *exposeStep {
	st.self = true
	return st
}

// If includes the exposure only when p holds.
func (st *exposeStep) If(p goentity.Predicate) *exposeStep {
	st.opt.If = goentity.When(p)
	return st
}

// IfFlags includes the exposure only when every flag matches.
func (st *exposeStep) IfFlags(flags map[string]any) *exposeStep {
	st.opt.If = goentity.Flags(flags)
	return st
}

// Unless excludes the exposure when p holds.
func (st *exposeStep) Unless(p goentity.Predicate) *exposeStep {
	st.opt.Unless = goentity.When(p)
	return st
}

// UnlessFlags excludes the exposure when every flag matches.
func (st *exposeStep) UnlessFlags(flags map[string]any) *exposeStep {
	st.opt.Unless = goentity.Flags(flags)
	return st
}

// From reads a different source attribute (or a "$..." JSONPath).
func (st *exposeStep) From(source string) *exposeStep {
	st.opt.From = source
	return st
}

// Meta attaches opaque metadata.
func (st *exposeStep) Meta(key string, value any) *exposeStep {
	if st.opt.Meta == nil {
		st.opt.Meta = map[string]any{}
	}
	st.opt.Meta[key] = value
	return st
}

// Compute sets the function producing the value.
func (st *exposeStep) Compute(fn goentity.ComputeFunc) *exposeStep {
	st.compute = fn
	return st
}

// Options replaces all declaration options at once. Meta is copied.
func (st *exposeStep) Options(opt goentity.ExposeOpt) *exposeStep {
	opt.Meta = maps.Clone(opt.Meta)
	st.opt = opt
	st.self = false
	return st
}

func (st *exposeStep) Expose(names ...string) *exposeStep { return st.b.Expose(names...) }
func (st *exposeStep) Build() (*goentity.Entity, error)   { return st.b.Build() }
func (st *exposeStep) MustBuild() *goentity.Entity        { return st.b.MustBuild() }
func (st *exposeStep) Self() *goentity.Entity             { return st.b.entity }
