package goentity

import "github.com/stretchr/objx"

// Options is the application-defined context threaded through representation
// and condition evaluation. Keys are compared as-is; objx selectors are only
// used by callers that opt into them.
type Options = objx.Map

// OptCollection is the reserved option set to true on every element of a
// represented collection.
const OptCollection = "collection"

// normalizeOptions turns a nil context into an empty one.
func normalizeOptions(opts Options) Options {
	if opts == nil {
		return Options{}
	}
	return opts
}

// collectionOptions returns a copy of opts carrying the collection marker.
func collectionOptions(opts Options) Options {
	out := opts.Copy()
	out[OptCollection] = true
	return out
}

// IsCollection reports whether opts carry the collection marker.
func IsCollection(opts Options) bool {
	b, _ := opts[OptCollection].(bool)
	return b
}
