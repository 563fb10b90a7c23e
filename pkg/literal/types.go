package literal

import (
	"fmt"
	"strings"
)

// Link is a reference to another document or resource, rendered through the
// markup pipeline so hosts can resolve it like any authored link.
type Link struct {
	Path    string `json:"path"`
	Display string `json:"display,omitempty"`
}

// NewLink builds a link with an optional display text.
func NewLink(path string, display ...string) Link {
	l := Link{Path: strings.TrimSpace(path)}
	if len(display) > 0 {
		l.Display = strings.TrimSpace(display[0])
	}
	return l
}

// Markdown returns the canonical markup form of the link, which is what the
// renderer hands to the markup service.
func (l Link) Markdown() string {
	display := l.Display
	if display == "" {
		display = l.Path
	}
	return fmt.Sprintf("[%s](%s)", display, l.Path)
}

// DataArray is the lazy sequence variant. Implementations materialise their
// elements on demand; the renderer treats them exactly like a plain []any.
type DataArray interface {
	Values() []any
}

// SliceArray adapts an eagerly-built slice to the DataArray contract. Mostly
// useful in tests and fixtures.
type SliceArray []any

func (s SliceArray) Values() []any { return s }

// Object is a string-keyed mapping that remembers insertion order, which is
// the enumeration order the renderer guarantees. The zero value is not
// usable; construct with NewObject.
type Object struct {
	keys  []string
	index map[string]int
	vals  []any
}

// NewObject builds an empty ordered mapping.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// ObjectOf builds an ordered mapping from alternating key/value arguments.
// Keys must be strings; a trailing unpaired key is dropped.
func ObjectOf(pairs ...any) *Object {
	obj := NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		obj.Set(key, pairs[i+1])
	}
	return obj
}

// Set inserts or overwrites a key. Overwriting keeps the key's original
// position.
func (o *Object) Set(key string, value any) *Object {
	if o == nil {
		return o
	}
	if idx, ok := o.index[key]; ok {
		o.vals[idx] = value
		return o
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, value)
	return o
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	idx, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[idx], true
}

// Len reports the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Entries returns the key/value pairs in insertion order.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}
	out := make([]Entry, len(o.keys))
	for i, k := range o.keys {
		out[i] = Entry{Key: k, Value: o.vals[i]}
	}
	return out
}
