// Package kind models the multiple-inheritance kind lattice that mathscope
// explores. A Kind plays the role of a class: it has base kinds, a dict of
// local member definitions, and a C3-linearized ancestor sequence. Values are
// either Objects (instances of a kind) or Kinds themselves (instances of Meta).
package kind

import (
	"fmt"
	"sort"
)

// Value is any value the explorer can inspect.
type Value interface {
	// Kind returns the kind this value is an instance of.
	Kind() *Kind
	// Repr returns the textual representation shown to the user.
	Repr() string
}

// Callable is a value that can be invoked with arguments.
type Callable interface {
	Value
	Call(args ...Value) (Value, error)
}

// Kind is a node in the kind lattice.
type Kind struct {
	name   string
	bases  []*Kind
	dict   map[string]Def
	listed []string
}

// Meta is the kind of kinds. Exploring a Kind directly inspects the kind's
// own lattice, but for instance-of tests a Kind is only an instance of Meta.
var Meta = &Kind{name: "Kind", dict: map[string]Def{}}

// Function is the kind of bound methods and other callables.
var Function = &Kind{name: "function", dict: map[string]Def{}}

// New creates a kind with the given name and base kinds, most specific first.
func New(name string, bases ...*Kind) *Kind {
	return &Kind{
		name:  name,
		bases: bases,
		dict:  make(map[string]Def),
	}
}

// Name returns the kind's name.
func (k *Kind) Name() string { return k.name }

// Bases returns the direct base kinds in declaration order.
func (k *Kind) Bases() []*Kind { return k.bases }

// Kind implements Value: a kind is an instance of Meta.
func (k *Kind) Kind() *Kind { return Meta }

// Repr implements Value.
func (k *Kind) Repr() string { return fmt.Sprintf("<kind %s>", k.name) }

// Define stores a local member definition under name, replacing any previous
// local definition of that name.
func (k *Kind) Define(name string, def Def) *Kind {
	k.dict[name] = def
	return k
}

// DefineMethod stores a method definition under its own name.
func (k *Kind) DefineMethod(m *Method) *Kind {
	return k.Define(m.Name, m)
}

// Local returns the kind's own definition of name, without consulting bases.
func (k *Kind) Local(name string) (Def, bool) {
	def, ok := k.dict[name]
	return def, ok
}

// LocalNames returns the sorted names defined directly on this kind.
func (k *Kind) LocalNames() []string {
	names := make([]string, 0, len(k.dict))
	for name := range k.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Advertise adds names that the kind reports in directory listings without a
// backing definition. Mirrors hierarchies that customize their listing and
// end up reporting ghost names; the enumerator drops them silently.
func (k *Kind) Advertise(names ...string) *Kind {
	k.listed = append(k.listed, names...)
	return k
}

// AdvertisedNames returns the extra listed names, if any.
func (k *Kind) AdvertisedNames() []string { return k.listed }

// Resolve walks the kind's linearized ancestor sequence and returns the most
// specific local definition of name, together with the ancestor holding it.
func (k *Kind) Resolve(name string) (Def, *Kind, bool) {
	ancestors, err := MRO(k)
	if err != nil {
		// Fall back to the kind's own dict when the lattice is inconsistent.
		if def, ok := k.dict[name]; ok {
			return def, k, true
		}
		return nil, nil, false
	}
	for _, c := range ancestors {
		if def, ok := c.dict[name]; ok {
			return def, c, true
		}
	}
	return nil, nil, false
}

// IsInstance reports whether v is an instance of target, i.e. target appears
// in the linearization of v's kind.
func IsInstance(v Value, target *Kind) bool {
	ancestors, err := MRO(v.Kind())
	if err != nil {
		return v.Kind() == target
	}
	for _, c := range ancestors {
		if c == target {
			return true
		}
	}
	return false
}

// Of returns the kind to introspect for a container: the container itself if
// it already is a kind, otherwise the container's kind.
func Of(container Value) *Kind {
	if k, ok := container.(*Kind); ok {
		return k
	}
	return container.Kind()
}
