// Package rules implements the property rule table: a declarative,
// configuration-driven decision of which members of an explored value are
// promoted to auto-computed, inline-displayed properties, and under which
// display label. Rule contexts are compiled once against a namespace; names
// that do not resolve disable their context instead of failing at evaluation
// time.
package rules

import (
	"strings"

	"mathscope/internal/kind"
)

// Table maps member names to their ordered rule contexts. Immutable after
// load.
type Table struct {
	props map[string][]*Context
}

// Context is one compiled rule context. All present conditions are ANDed;
// the first context whose conditions hold decides the outcome for a member.
type Context struct {
	disabled bool

	isInstance       *kind.Kind
	hasIsInstance    bool
	notIsInstance    *kind.Kind
	hasNotIsInstance bool

	in       kind.Collection
	hasIn    bool
	notIn    kind.Collection
	hasNotIn bool

	when    []whenClause
	notWhen []whenClause

	predicate    kind.Predicate
	hasPredicate bool

	label string
}

// Classify decides whether the named member of container is a property.
// It returns the display label of the first matching context, or "" when no
// context matches (including when the name has no rule entry). Condition
// evaluation failures count as "this context does not match".
func (t *Table) Classify(container kind.Value, name string) string {
	if t == nil {
		return ""
	}
	contexts, ok := t.props[name]
	if !ok {
		return ""
	}
	for _, ctx := range contexts {
		if !ctx.matches(container) {
			continue
		}
		if ctx.label != "" {
			return ctx.label
		}
		return DefaultLabel(name)
	}
	return ""
}

// HasRule reports whether any context exists for the member name.
func (t *Table) HasRule(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.props[name]
	return ok
}

// Names returns the member names carrying at least one rule context.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.props))
	for name := range t.props {
		names = append(names, name)
	}
	return names
}

func (c *Context) matches(container kind.Value) bool {
	if c.disabled {
		return false
	}
	if c.hasIsInstance && !kind.IsInstance(container, c.isInstance) {
		return false
	}
	if c.hasNotIsInstance && kind.IsInstance(container, c.notIsInstance) {
		return false
	}
	if c.hasIn {
		ok, err := c.in.Contains(container)
		if err != nil || !ok {
			return false
		}
	}
	if c.hasNotIn {
		ok, err := c.notIn.Contains(container)
		if err != nil || ok {
			return false
		}
	}
	for _, w := range c.when {
		ok, err := w.eval(container)
		if err != nil || !ok {
			return false
		}
	}
	for _, w := range c.notWhen {
		ok, err := w.eval(container)
		if err != nil || ok {
			return false
		}
	}
	if c.hasPredicate && !c.predicate(container) {
		return false
	}
	return true
}

// DefaultLabel synthesizes a display label from a member name by
// title-casing and space-joining its underscore-separated words.
func DefaultLabel(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
