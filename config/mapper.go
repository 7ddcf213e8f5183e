package config

import (
	"errors"
	"fmt"
	"strings"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/i18n"
)

// Funcs resolves function names used by a catalog.
type Funcs struct {
	Compute    map[string]goentity.ComputeFunc
	Predicates map[string]goentity.Predicate
}

// Catalog holds the entities declared by one YAML document, in document order.
type Catalog struct {
	order  []string
	byName map[string]*goentity.Entity
}

// Lookup returns the entity declared under name.
func (c *Catalog) Lookup(name string) (*goentity.Entity, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Names returns entity names in document order.
func (c *Catalog) Names() []string { return append([]string(nil), c.order...) }

// MapCatalog creates every entity first so that using/extends may reference
// entities declared later in the document, then declares exposures in order.
func MapCatalog(path string, yc YAMLCatalog, funcs Funcs) (*Catalog, error) {
	cat := &Catalog{byName: make(map[string]*goentity.Entity, len(yc.Entities))}
	defs := make(map[string]YAMLEntity, len(yc.Entities))
	for i, ye := range yc.Entities {
		name := strings.TrimSpace(ye.Name)
		field := fmt.Sprintf("entities[%d].name", i)
		if name == "" {
			return nil, invalidField(path, field, errors.New("entity name is required"))
		}
		if _, dup := defs[name]; dup {
			return nil, invalidField(path, field, fmt.Errorf("duplicate entity %q", name))
		}
		defs[name] = ye
		cat.order = append(cat.order, name)
	}

	visiting := map[string]bool{}
	var create func(name string) (*goentity.Entity, error)
	create = func(name string) (*goentity.Entity, error) {
		if e, ok := cat.byName[name]; ok {
			return e, nil
		}
		if visiting[name] {
			return nil, errors.New(i18n.T("extends_cycle", map[string]string{"name": name}))
		}
		visiting[name] = true
		defer delete(visiting, name)

		parentName := strings.TrimSpace(defs[name].Extends)
		if parentName == "" {
			e := goentity.NewEntity(name)
			cat.byName[name] = e
			return e, nil
		}
		if _, ok := defs[parentName]; !ok {
			return nil, errors.New(i18n.T("unknown_entity", map[string]string{"name": parentName}))
		}
		parent, err := create(parentName)
		if err != nil {
			return nil, err
		}
		e := parent.Extend(name)
		cat.byName[name] = e
		return e, nil
	}
	for i, name := range cat.order {
		if _, err := create(name); err != nil {
			return nil, invalidField(path, fmt.Sprintf("entities[%d].extends", i), err)
		}
	}

	for i, name := range cat.order {
		e := cat.byName[name]
		for j, yx := range defs[name].Expose {
			prefix := fmt.Sprintf("entities[%d].expose[%d]", i, j)
			names, opt, compute, err := mapExposure(cat, yx, funcs)
			if err != nil {
				return nil, invalidField(path, prefix, err)
			}
			if err := e.Expose(names, opt, compute); err != nil {
				return nil, invalidField(path, prefix, err)
			}
		}
	}
	return cat, nil
}

func mapExposure(cat *Catalog, yx YAMLExposure, funcs Funcs) ([]string, goentity.ExposeOpt, goentity.ComputeFunc, error) {
	names := append([]string(nil), yx.Names...)
	if yx.Name != "" {
		names = append([]string{yx.Name}, names...)
	}

	opt := goentity.ExposeOpt{As: yx.As, From: yx.From, Meta: yx.Meta}
	if yx.Using != "" {
		e, ok := cat.Lookup(yx.Using)
		if !ok {
			return nil, opt, nil, errors.New(i18n.T("unknown_entity", map[string]string{"name": yx.Using}))
		}
		opt.Using = e
	}

	var err error
	if opt.If, err = mapCondition(yx.If, funcs); err != nil {
		return nil, opt, nil, err
	}
	if opt.Unless, err = mapCondition(yx.Unless, funcs); err != nil {
		return nil, opt, nil, err
	}

	var compute goentity.ComputeFunc
	if yx.Compute != "" {
		fn, ok := funcs.Compute[yx.Compute]
		if !ok {
			return nil, opt, nil, errors.New(i18n.T("unknown_func", map[string]string{"name": yx.Compute}))
		}
		compute = fn
	}
	return names, opt, compute, nil
}

func mapCondition(yc *YAMLCondition, funcs Funcs) (goentity.Condition, error) {
	if yc == nil {
		return goentity.Condition{}, nil
	}
	if yc.Predicate != "" {
		p, ok := funcs.Predicates[yc.Predicate]
		if !ok {
			return goentity.Condition{}, errors.New(i18n.T("unknown_func", map[string]string{"name": yc.Predicate}))
		}
		return goentity.When(p), nil
	}
	return goentity.Flags(yc.Flags), nil
}
