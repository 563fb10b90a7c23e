package literal

import (
	"reflect"
	"sort"
	"time"

	"golang.org/x/net/html"
)

// Kind is the closed classification the renderer dispatches on. Every Go
// value maps onto exactly one kind; KindUnrecognized is the explicit
// fallback arm, never an error.
type Kind string

const (
	KindNull         Kind = "null"
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindBoolean      Kind = "boolean"
	KindDate         Kind = "date"
	KindDuration     Kind = "duration"
	KindLink         Kind = "link"
	KindNode         Kind = "node"
	KindWidget       Kind = "widget"
	KindFunction     Kind = "function"
	KindSequence     Kind = "sequence"
	KindMapping      Kind = "mapping"
	KindForeign      Kind = "foreign"
	KindUnrecognized Kind = "unrecognized"
)

// Classify maps an arbitrary value onto its renderable kind. Precedence
// mirrors the dispatch order of the renderer: concrete domain types win
// before the reflective fallbacks, and named struct types that are not part
// of the domain classify as KindForeign so the renderer never walks their
// fields.
func Classify(v any) Kind {
	if v == nil {
		return KindNull
	}

	switch x := v.(type) {
	case string:
		return KindString
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case time.Duration:
		return KindDuration
	case time.Time:
		return KindDate
	case *time.Time:
		if x == nil {
			return KindNull
		}
		return KindDate
	case Link:
		return KindLink
	case *Link:
		if x == nil {
			return KindNull
		}
		return KindLink
	case *html.Node:
		if x == nil {
			return KindNull
		}
		return KindNode
	case Widget:
		return KindWidget
	case []any:
		return KindSequence
	case DataArray:
		return KindSequence
	case *Object:
		if x == nil {
			return KindNull
		}
		return KindMapping
	case map[string]any:
		return KindMapping
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return KindFunction
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
		return KindUnrecognized
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNull
		}
		// Domain pointer types are matched above; a pointer to any other
		// named struct is foreign, everything else unrecognised.
		if rv.Elem().Kind() == reflect.Struct {
			return classifyStruct(rv.Elem().Type())
		}
		return KindUnrecognized
	case reflect.Struct:
		return classifyStruct(rv.Type())
	}
	return KindUnrecognized
}

func classifyStruct(t reflect.Type) Kind {
	if t.Name() == "" {
		return KindUnrecognized
	}
	return KindForeign
}

// TypeName reports the structural type name used for the foreign-object
// placeholder. Pointers are unwrapped one level so *Foo and Foo agree.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// SequenceValues normalises any sequence-classified value into a []any in
// source order. Plain and lazy sequences are treated identically; typed
// slices are widened element by element.
func SequenceValues(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case DataArray:
		return x.Values()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Entry is a single key/value pair of a mapping in enumeration order.
type Entry struct {
	Key   string
	Value any
}

// MappingEntries normalises any mapping-classified value into its entries.
// Object values enumerate in insertion order; plain Go maps have no order,
// so their keys are sorted to keep rendering deterministic.
func MappingEntries(v any) []Entry {
	switch x := v.(type) {
	case *Object:
		return x.Entries()
	case map[string]any:
		return sortedEntries(reflect.ValueOf(x))
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	return sortedEntries(rv)
}

func sortedEntries(rv reflect.Value) []Entry {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k.String(), Value: rv.MapIndex(k).Interface()})
	}
	return out
}
