package goentity

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/objx"
)

// Attributes is implemented by objects that resolve their own attributes.
// ok=false means the attribute is missing.
type Attributes interface {
	Attribute(name string) (value any, ok bool)
}

// AttributeFunc adapts a plain function to Attributes.
type AttributeFunc func(name string) (any, bool)

func (f AttributeFunc) Attribute(name string) (any, bool) { return f(name) }

// Lookup reads one attribute from object. A nil object, a missing attribute
// or an unsupported object shape all resolve to (nil, false).
//
// Resolution order: Attributes implementation, JSONPath ("$..." names),
// string-keyed maps, struct fields, then exported zero-argument methods.
func Lookup(object any, name string) (any, bool) {
	if isNil(object) {
		return nil, false
	}
	if a, ok := object.(Attributes); ok {
		return a.Attribute(name)
	}
	if strings.HasPrefix(name, "$") {
		return lookupPath(object, name)
	}
	switch m := object.(type) {
	case map[string]any:
		v, ok := m[name]
		return v, ok
	case objx.Map:
		v, ok := m[name]
		return v, ok
	}

	rv := reflect.ValueOf(object)
	if v, ok := lookupValue(rv, name); ok {
		return v, true
	}
	return lookupMethod(rv, name)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func lookupPath(object any, expr string) (v any, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	got, err := jsonpath.Get(expr, object)
	if err != nil {
		return nil, false
	}
	return got, true
}

func lookupValue(rv reflect.Value, name string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		idx, ok := structFields(rv.Type())[name]
		if !ok {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(idx)
		if err != nil {
			// nil embedded pointer on the path
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

func lookupMethod(rv reflect.Value, name string) (any, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil, false
	}
	m := rv.MethodByName(methodName(name))
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

// structFieldCache maps reflect.Type to its external-key -> field index table.
var structFieldCache sync.Map

func structFields(t reflect.Type) map[string][]int {
	if v, ok := structFieldCache.Load(t); ok {
		return v.(map[string][]int)
	}
	out := map[string][]int{}
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		if _, dup := out[key]; !dup {
			out[key] = sf.Index
		}
		if key != sf.Name {
			continue
		}
		if snake := snakeCase(sf.Name); snake != key {
			if _, dup := out[snake]; !dup {
				out[snake] = sf.Index
			}
		}
	}
	v, _ := structFieldCache.LoadOrStore(t, out)
	return v.(map[string][]int)
}

// ResolveStructKey resolves a struct field's attribute name.
// Priority: goentity:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("goentity"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if p == "-" {
				return "-"
			}
			if name, ok := strings.CutPrefix(p, "name="); ok && strings.TrimSpace(name) != "" {
				return strings.TrimSpace(name)
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt
		}
	}
	return sf.Name
}

// methodName turns "first_name" into "FirstName".
func methodName(name string) string {
	b := &strings.Builder{}
	upper := true
	for _, r := range name {
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// snakeCase turns "FirstName" into "first_name" and "ID" into "id".
func snakeCase(name string) string {
	rs := []rune(name)
	b := &strings.Builder{}
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]) && unicode.IsUpper(rs[i-1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
