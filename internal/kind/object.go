package kind

import (
	"fmt"
	"sort"
)

// Object is an instance of a kind. Besides the members inherited through the
// lattice, an object can carry its own attributes and an underlying payload
// (the native Go value it wraps, used by rule comparisons).
type Object struct {
	kind    *Kind
	attrs   map[string]Value
	payload any
	repr    string
}

// NewObject creates an instance of k wrapping payload, displayed as repr.
// An empty repr falls back to a generic representation.
func NewObject(k *Kind, payload any, repr string) *Object {
	if repr == "" {
		if payload != nil {
			repr = fmt.Sprintf("%v", payload)
		} else {
			repr = fmt.Sprintf("<%s instance>", k.Name())
		}
	}
	return &Object{kind: k, payload: payload, repr: repr}
}

// Kind implements Value.
func (o *Object) Kind() *Kind { return o.kind }

// Repr implements Value.
func (o *Object) Repr() string { return o.repr }

// Unwrap returns the native payload the object wraps, or nil.
func (o *Object) Unwrap() any { return o.payload }

// SetAttr stores an instance-own attribute.
func (o *Object) SetAttr(name string, v Value) {
	if o.attrs == nil {
		o.attrs = make(map[string]Value)
	}
	o.attrs[name] = v
}

// Attr returns an instance-own attribute, without consulting the kind.
func (o *Object) Attr(name string) (Value, bool) {
	v, ok := o.attrs[name]
	return v, ok
}

// OwnNames returns the sorted names of instance-own attributes.
func (o *Object) OwnNames() []string {
	names := make([]string, 0, len(o.attrs))
	for name := range o.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Payload extracts the native payload of a value, when it has one. Bound
// methods and kinds have none.
func Payload(v Value) (any, bool) {
	type unwrapper interface{ Unwrap() any }
	if u, ok := v.(unwrapper); ok {
		return u.Unwrap(), true
	}
	return nil, false
}
