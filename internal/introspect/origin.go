package introspect

import (
	"strings"

	"mathscope/internal/kind"
)

// ResolveOrigin determines the ancestor kind where name is actually defined
// for container, along with the ancestors whose same-named definitions are
// shadowed by the top-level binding.
//
// The walk goes through the container's linearized ancestor sequence,
// excluding the container's own kind: an ancestor whose local definition is
// identical to the top-level binding becomes the origin (the last such match
// wins while walking toward the root), and an ancestor whose local definition
// differs is recorded as an override. When no ancestor matches, the member is
// considered defined on the container's own kind.
func ResolveOrigin(container kind.Value, name string) (*kind.Kind, []*kind.Kind) {
	k := kind.Of(container)
	origin := k
	var overrides []*kind.Kind

	ancestors, err := kind.MRO(k)
	if err != nil {
		return origin, overrides
	}
	topDef, _, found := k.Resolve(name)
	if !found {
		return origin, overrides
	}
	for _, c := range ancestors[1:] {
		def, ok := c.Local(name)
		if !ok {
			continue
		}
		if def == topDef {
			origin = c
		} else {
			overrides = append(overrides, c)
		}
	}
	return origin, overrides
}

// ExtractKindName returns the user-facing name for a kind used as a menu
// group header, stripping framework-generated element/parent suffixes.
func ExtractKindName(k *kind.Kind, elementOK bool) string {
	s := k.Name()
	if (strings.Contains(s, "element_class") || strings.Contains(s, "parent_class")) && !elementOK {
		if bases := k.Bases(); len(bases) > 0 {
			s = bases[0].Name()
		}
	}
	parts := strings.Split(s, ".")
	ret := parts[len(parts)-1]
	if ret == "element_class" && len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return ret
}
