package goentity

import "reflect"

// Representation pairs one object with one options context under an entity.
// It is created per serialization request and never mutates the object.
type Representation struct {
	entity  *Entity
	object  any
	options Options
}

// New wraps object (which may be nil) in a representation. A nil options
// context becomes empty.
func (e *Entity) New(object any, opts Options) (*Representation, error) {
	if e == nil {
		return nil, &ConstructionError{Code: CodeNilEntity, Message: msg(CodeNilEntity)}
	}
	return &Representation{entity: e, object: object, options: normalizeOptions(opts)}, nil
}

// Entity returns the entity this representation was built from.
func (r *Representation) Entity() *Entity { return r.entity }

// Object returns the wrapped object.
func (r *Representation) Object() any { return r.object }

// Options returns the stored options context.
func (r *Representation) Options() Options { return r.options }

// Result is the outcome of Represent: one representation for a single
// object, or one per element for a sequence.
type Result struct {
	one        *Representation
	items      []*Representation
	collection bool
}

// IsCollection reports whether the input was a sequence.
func (res Result) IsCollection() bool { return res.collection }

// One returns the single representation (nil for collections).
func (res Result) One() *Representation { return res.one }

// Items returns the per-element representations (nil for single objects).
func (res Result) Items() []*Representation { return res.items }

// Serialize serializes the result: *Hash for a single object, []*Hash for a
// sequence (empty, never nil).
func (res Result) Serialize(override Options) any {
	if !res.collection {
		if res.one == nil {
			return nil
		}
		return res.one.SerializableHash(override)
	}
	out := make([]*Hash, len(res.items))
	for i, r := range res.items {
		out[i] = r.SerializableHash(override)
	}
	return out
}

// Represent wraps input. A slice or array (other than []byte) yields one
// representation per element, in order, each with a copy of opts marked
// collection=true; anything else, nil included, yields one representation
// with opts as given.
func (e *Entity) Represent(input any, opts Options) (Result, error) {
	if e == nil {
		return Result{}, &ConstructionError{Code: CodeNilEntity, Message: msg(CodeNilEntity)}
	}
	seq, ok := sequenceOf(input)
	if !ok {
		r, err := e.New(input, opts)
		if err != nil {
			return Result{}, err
		}
		return Result{one: r}, nil
	}
	items := make([]*Representation, seq.Len())
	for i := range items {
		r, err := e.New(seq.Index(i).Interface(), collectionOptions(opts))
		if err != nil {
			return Result{}, err
		}
		items[i] = r
	}
	return Result{items: items, collection: true}, nil
}

// sequenceOf reports whether v is a sequence to be represented element-wise.
func sequenceOf(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	if _, ok := v.(Attributes); ok {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	case reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}
