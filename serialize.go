package goentity

// SerializableHash builds the output mapping. A non-nil override replaces the
// stored options for this call; nil falls back to them. Every exposure whose
// conditions hold contributes one key, in declaration order.
func (r *Representation) SerializableHash(override Options) *Hash {
	opts := r.effectiveOptions(override)
	exposures := r.entity.Exposures()
	h := newHash(len(exposures))
	for _, x := range exposures {
		if !r.ConditionsMet(x, opts) {
			continue
		}
		h.Set(x.Key(), r.valueOf(x, opts))
	}
	return h
}

// ValueFor resolves the value of the named exposure under opts (nil means the
// stored options). Unknown names resolve to nil.
func (r *Representation) ValueFor(name string, opts Options) any {
	x, ok := r.entity.Exposure(name)
	if !ok {
		return nil
	}
	return r.valueOf(x, r.effectiveOptions(opts))
}

// KeyFor returns the output key for name.
func (r *Representation) KeyFor(name string) string { return r.entity.KeyFor(name) }

// ConditionsMet reports whether x is emitted for this object under opts.
// When both If and Unless are declared, both must allow inclusion.
func (r *Representation) ConditionsMet(x Exposure, opts Options) bool {
	return conditionsMet(x, r.object, normalizeOptions(opts))
}

func (r *Representation) effectiveOptions(override Options) Options {
	if override != nil {
		return override
	}
	return normalizeOptions(r.options)
}

func (r *Representation) valueOf(x Exposure, opts Options) any {
	if x.Compute != nil {
		return x.Compute(r.object, opts)
	}
	raw, _ := Lookup(r.object, x.Source())
	if x.Using == nil {
		return raw
	}
	if _, seq := sequenceOf(raw); !seq && isNil(raw) {
		return nil
	}
	res, err := x.Using.Represent(raw, opts)
	if err != nil {
		return nil
	}
	return res.Serialize(nil)
}
