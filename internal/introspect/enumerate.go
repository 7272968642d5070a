// Package introspect implements mathscope's member discovery engine: it
// enumerates the members visible on a kind or instance, resolves the ancestor
// where each member is defined, and carries lazily computed member records
// between the enumerator, the rule classifier and the UI layer.
package introspect

import (
	"fmt"
	"sort"
	"strings"

	"mathscope/internal/kind"
)

// NamedValue pairs a member name with its bound value.
type NamedValue struct {
	Name  string
	Value kind.Value
}

// noiseNames are dunder slots that carry no information for exploration and
// are always excluded from listings.
var noiseNames = map[string]bool{
	"__weakref__": true,
	"__dict__":    true,
}

// EnumerateMembers lists every member visible on container as (name, value)
// pairs, sorted by name and deduplicated. It works for kinds and instances
// alike and never fails: a member whose binding fails falls back to the raw
// definition stored in an ancestor's dict, and a name with no backing
// definition anywhere is dropped.
func EnumerateMembers(container kind.Value) []NamedValue {
	k := kind.Of(container)
	ancestors, err := kind.MRO(k)
	if err != nil {
		ancestors = []*kind.Kind{k}
	}

	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, c := range ancestors {
		for _, name := range c.LocalNames() {
			add(name)
		}
		for _, name := range c.AdvertisedNames() {
			add(name)
		}
	}
	if obj, ok := container.(*kind.Object); ok {
		for _, name := range obj.OwnNames() {
			add(name)
		}
	}
	sort.Strings(names)

	results := make([]NamedValue, 0, len(names))
	for _, name := range names {
		if noiseNames[name] {
			continue
		}
		value, ok := accessMember(container, ancestors, name)
		if !ok {
			continue
		}
		results = append(results, NamedValue{Name: name, Value: value})
	}
	return results
}

// accessMember binds name on container, falling back to the raw definition
// when binding fails. Returns false for ghost names.
func accessMember(container kind.Value, ancestors []*kind.Kind, name string) (kind.Value, bool) {
	if obj, ok := container.(*kind.Object); ok {
		if v, ok := obj.Attr(name); ok {
			return v, true
		}
	}
	for _, c := range ancestors {
		def, ok := c.Local(name)
		if !ok {
			continue
		}
		v, err := def.Bind(container)
		if err == nil {
			return v, true
		}
		return rawDefValue(def)
	}
	// Advertised but stored nowhere: assumed to be a ghost entry.
	return nil, false
}

// rawDefValue surfaces a definition itself as the member value, the way raw
// slot objects are shown when their binding misbehaves.
func rawDefValue(def kind.Def) (kind.Value, bool) {
	switch d := def.(type) {
	case kind.Value:
		return d, true
	case *kind.DeprecatedDef:
		if v, ok := d.Def.(kind.Value); ok {
			return &kind.DeprecatedValue{Value: v}, true
		}
	}
	return nil, false
}

// IsDeprecated reports whether a bound member value looks deprecated, keying
// on the dynamic type name. A heuristic, not a structural guarantee.
func IsDeprecated(v kind.Value) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", v)), "deprecated")
}

// IsAbstract reports whether a bound member value is an abstract method.
func IsAbstract(v kind.Value) bool {
	if bm, ok := v.(*kind.BoundMethod); ok {
		return bm.Def.Abstract
	}
	return false
}
