package goentity

import "maps"

// ComputeFunc produces an exposure's value from the wrapped object and the
// active options. Its result is used verbatim.
type ComputeFunc func(object any, opts Options) any

// ExposeOpt bundles declaration options shared by every attribute of one
// Expose call.
type ExposeOpt struct {
	As     string         // Output key; single-attribute declarations only.
	Using  *Entity        // Nested entity applied to the attribute value.
	If     Condition      // Emit only when this holds.
	Unless Condition      // Emit only when this does not hold.
	From   string         // Source attribute (or "$..." JSONPath) when it differs from the name.
	Meta   map[string]any // Opaque metadata, copied per attribute.
}

// Exposure is one declared rule producing one output field.
type Exposure struct {
	Name    string
	As      string
	Using   *Entity
	Compute ComputeFunc
	If      Condition
	Unless  Condition
	From    string
	Meta    map[string]any
}

// Kind tags how an exposure resolves its value.
type Kind uint8

const (
	KindAttribute Kind = iota // Direct attribute lookup.
	KindComputed              // ComputeFunc result.
	KindNested                // Attribute value wrapped in a nested entity.
)

func (k Kind) String() string {
	switch k {
	case KindComputed:
		return "computed"
	case KindNested:
		return "nested"
	default:
		return "attribute"
	}
}

// Kind reports how the exposure resolves its value. Compute wins over Using.
func (x Exposure) Kind() Kind {
	switch {
	case x.Compute != nil:
		return KindComputed
	case x.Using != nil:
		return KindNested
	default:
		return KindAttribute
	}
}

// Key returns the output key: As when set, otherwise the attribute name.
func (x Exposure) Key() string {
	if x.As != "" {
		return x.As
	}
	return x.Name
}

// Source returns the attribute read from the wrapped object.
func (x Exposure) Source() string {
	if x.From != "" {
		return x.From
	}
	return x.Name
}

func (x Exposure) clone() Exposure {
	x.Meta = maps.Clone(x.Meta)
	return x
}

func newExposure(name string, opt ExposeOpt, compute ComputeFunc) Exposure {
	return Exposure{
		Name:    name,
		As:      canonicalName(opt.As),
		Using:   opt.Using,
		Compute: compute,
		If:      opt.If,
		Unless:  opt.Unless,
		From:    opt.From,
		Meta:    maps.Clone(opt.Meta),
	}
}
