package goentity

import (
	"strings"
	"sync"
)

// Entity is a named, ordered registry of exposures. Declarations happen
// during setup; afterwards an Entity is read-only and safe for concurrent
// representation.
type Entity struct {
	name   string
	parent *Entity

	mu    sync.RWMutex
	order []string
	byKey map[string]Exposure
}

// NewEntity creates an empty entity.
func NewEntity(name string) *Entity {
	return &Entity{name: name, byKey: map[string]Exposure{}}
}

// Extend creates a derived entity whose exposures layer over e's.
func (e *Entity) Extend(name string) *Entity {
	child := NewEntity(name)
	child.parent = e
	return child
}

// Name returns the entity name.
func (e *Entity) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Parent returns the entity e extends, or nil.
func (e *Entity) Parent() *Entity { return e.parent }

// Declaration is one Expose call, used by ExposeAll.
type Declaration struct {
	Names   []string
	Opt     ExposeOpt
	Compute ComputeFunc
}

// Expose declares one exposure per name, in order, sharing opt. As and
// compute are only accepted for single-name declarations. Redeclaring a name
// replaces its rule and keeps its position.
func (e *Entity) Expose(names []string, opt ExposeOpt, compute ComputeFunc) error {
	return e.ExposeAll([]Declaration{{Names: names, Opt: opt, Compute: compute}})
}

// ExposeAll validates every declaration before applying any of them, then
// applies them in order under one lock. On error the entity is unchanged.
func (e *Entity) ExposeAll(decls []Declaration) error {
	canon := make([][]string, len(decls))
	for i, d := range decls {
		names, err := e.validate(d)
		if err != nil {
			return err
		}
		canon[i] = names
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i, d := range decls {
		for _, n := range canon[i] {
			if _, ok := e.byKey[n]; !ok {
				e.order = append(e.order, n)
			}
			e.byKey[n] = newExposure(n, d.Opt, d.Compute)
		}
	}
	return nil
}

func (e *Entity) validate(d Declaration) ([]string, error) {
	if len(d.Names) == 0 {
		return nil, configError(e.name, d.Names, CodeNoAttributes)
	}
	canon := make([]string, len(d.Names))
	for i, n := range d.Names {
		canon[i] = canonicalName(n)
		if canon[i] == "" {
			return nil, configError(e.name, d.Names, CodeBlankAttribute)
		}
	}
	if len(canon) > 1 && canonicalName(d.Opt.As) != "" {
		return nil, configError(e.name, canon, CodeAsWithMultiple)
	}
	if len(canon) > 1 && d.Compute != nil {
		return nil, configError(e.name, canon, CodeComputeWithMultiple)
	}
	return canon, nil
}

// Exposures returns the resolved exposures in output order. Parent entries
// come first; a child entry with the same name takes the parent's slot.
// Meta maps are copies; the registry cannot be changed through them.
func (e *Entity) Exposures() []Exposure {
	if e == nil {
		return nil
	}
	var out []Exposure
	if e.parent != nil {
		out = e.parent.Exposures()
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(out) == 0 {
		out = make([]Exposure, 0, len(e.order))
	}
	idx := make(map[string]int, len(out))
	for i, x := range out {
		idx[x.Name] = i
	}
	for _, n := range e.order {
		x := e.byKey[n].clone()
		if i, ok := idx[n]; ok {
			out[i] = x
			continue
		}
		out = append(out, x)
	}
	return out
}

// Exposure looks up a resolved exposure by name (string forms are
// canonicalized).
func (e *Entity) Exposure(name string) (Exposure, bool) {
	n := canonicalName(name)
	for cur := e; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		x, ok := cur.byKey[n]
		cur.mu.RUnlock()
		if ok {
			return x.clone(), true
		}
	}
	return Exposure{}, false
}

// Len returns the number of resolved exposures.
func (e *Entity) Len() int { return len(e.Exposures()) }

// KeyFor returns the output key for an attribute name: its alias when one was
// declared, otherwise the canonical name.
func (e *Entity) KeyFor(name string) string {
	if x, ok := e.Exposure(name); ok {
		return x.Key()
	}
	return canonicalName(name)
}

// canonicalName maps "name", " name " and ":name" to the same identifier.
func canonicalName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")
	return s
}
