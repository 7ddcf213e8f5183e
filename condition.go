package goentity

import (
	"maps"
	"reflect"
)

// Predicate decides inclusion from the wrapped object and the active options.
type Predicate func(object any, opts Options) bool

// Condition is either a mapping of required option values or a predicate.
// The zero Condition means "not declared".
type Condition struct {
	flags map[string]any
	pred  Predicate
}

// Flags builds a mapping-form condition: it holds when every listed key has
// the expected value in the options. A missing key reads as nil. Keys not
// listed are ignored.
func Flags(expected map[string]any) Condition {
	if len(expected) == 0 {
		return Condition{}
	}
	return Condition{flags: maps.Clone(expected)}
}

// When builds a predicate-form condition.
func When(p Predicate) Condition {
	return Condition{pred: p}
}

// IsZero reports whether no condition was declared.
func (c Condition) IsZero() bool { return c.flags == nil && c.pred == nil }

// IsPredicate reports whether c is a predicate-form condition.
func (c Condition) IsPredicate() bool { return c.pred != nil }

// FlagSet returns a copy of the mapping-form expectations (nil for predicates).
func (c Condition) FlagSet() map[string]any { return maps.Clone(c.flags) }

// holds evaluates the condition. A zero condition never holds; callers check
// IsZero first.
func (c Condition) holds(object any, opts Options) bool {
	if c.pred != nil {
		return c.pred(object, opts)
	}
	if c.flags == nil {
		return false
	}
	for k, want := range c.flags {
		if !reflect.DeepEqual(opts[k], want) {
			return false
		}
	}
	return true
}

// conditionsMet combines If and Unless with logical AND.
func conditionsMet(x Exposure, object any, opts Options) bool {
	if !x.If.IsZero() && !x.If.holds(object, opts) {
		return false
	}
	if !x.Unless.IsZero() && x.Unless.holds(object, opts) {
		return false
	}
	return true
}
