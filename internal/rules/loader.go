package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mathscope/internal/kind"
	"mathscope/internal/logger"
)

// DefaultRulesData contains the embedded default property rule table.
//
//go:embed data/properties.yaml
var DefaultRulesData []byte

// tableSpec is the YAML shape of a rule table. Several entries may name the
// same property; their contexts are appended in declaration order.
type tableSpec struct {
	Properties []propertySpec `yaml:"properties"`
}

type propertySpec struct {
	Name        string        `yaml:"property"`
	Contexts    []contextSpec `yaml:"contexts"`
	contextSpec `yaml:",inline"`
}

type contextSpec struct {
	IsInstance    string     `yaml:"isinstance"`
	NotIsInstance string     `yaml:"not isinstance"`
	In            string     `yaml:"in"`
	NotIn         string     `yaml:"not in"`
	When          stringList `yaml:"when"`
	NotWhen       stringList `yaml:"not when"`
	Predicate     string     `yaml:"predicate"`
	Label         string     `yaml:"label"`
}

// stringList accepts either a single YAML scalar or a sequence of scalars.
type stringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*s = []string{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*s = many
		return nil
	default:
		return fmt.Errorf("when clause must be a string or list of strings")
	}
}

// empty reports whether the inline context carries no keys at all.
func (c *contextSpec) empty() bool {
	return c.IsInstance == "" && c.NotIsInstance == "" && c.In == "" && c.NotIn == "" &&
		len(c.When) == 0 && len(c.NotWhen) == 0 && c.Predicate == "" && c.Label == ""
}

// LoadDefault compiles the embedded rule table against ns.
func LoadDefault(ns *kind.Namespace) (*Table, error) {
	return LoadBytes(DefaultRulesData, ns)
}

// LoadFile reads and compiles a rule table from a YAML file.
func LoadFile(path string, ns *kind.Namespace) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule table: %w", err)
	}
	return LoadBytes(data, ns)
}

// LoadBytes decodes YAML rule data and compiles it against ns. Names that do
// not resolve in the namespace disable their context rather than failing.
func LoadBytes(data []byte, ns *kind.Namespace) (*Table, error) {
	var spec tableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse rule table: %w", err)
	}
	table := &Table{props: make(map[string][]*Context)}
	for _, prop := range spec.Properties {
		if prop.Name == "" {
			return nil, fmt.Errorf("rule entry without a property name")
		}
		if len(prop.Contexts) > 0 && !prop.contextSpec.empty() {
			return nil, fmt.Errorf("rule entry %q mixes inline conditions with a contexts list", prop.Name)
		}
		contexts := prop.Contexts
		if len(contexts) == 0 {
			// An entry with no contexts list carries a single inline
			// context, possibly empty (an unconditional property).
			contexts = []contextSpec{prop.contextSpec}
		}
		for _, cs := range contexts {
			table.props[prop.Name] = append(table.props[prop.Name], compileContext(prop.Name, cs, ns))
		}
	}
	return table, nil
}

// compileContext resolves a context's names once, at load time.
func compileContext(prop string, cs contextSpec, ns *kind.Namespace) *Context {
	ctx := &Context{label: cs.Label}
	disable := func(what, name string) {
		logger.Debug("Disabling rule context", "property", prop, what, name)
		ctx.disabled = true
	}

	if cs.IsInstance != "" {
		ctx.hasIsInstance = true
		if k, ok := ns.LookupKind(cs.IsInstance); ok {
			ctx.isInstance = k
		} else {
			disable("kind", cs.IsInstance)
		}
	}
	if cs.NotIsInstance != "" {
		ctx.hasNotIsInstance = true
		if k, ok := ns.LookupKind(cs.NotIsInstance); ok {
			ctx.notIsInstance = k
		} else {
			disable("kind", cs.NotIsInstance)
		}
	}
	if cs.In != "" {
		ctx.hasIn = true
		if c, ok := ns.LookupCollection(cs.In); ok {
			ctx.in = c
		} else {
			disable("collection", cs.In)
		}
	}
	if cs.NotIn != "" {
		ctx.hasNotIn = true
		if c, ok := ns.LookupCollection(cs.NotIn); ok {
			ctx.notIn = c
		} else {
			disable("collection", cs.NotIn)
		}
	}
	for _, expr := range cs.When {
		clause, err := parseWhen(expr, ns)
		if err != nil {
			disable("when", expr)
			continue
		}
		ctx.when = append(ctx.when, clause)
	}
	for _, expr := range cs.NotWhen {
		clause, err := parseWhen(expr, ns)
		if err != nil {
			disable("not when", expr)
			continue
		}
		ctx.notWhen = append(ctx.notWhen, clause)
	}
	if cs.Predicate != "" {
		ctx.hasPredicate = true
		if fn, ok := ns.LookupPredicate(cs.Predicate); ok {
			ctx.predicate = fn
		} else {
			disable("predicate", cs.Predicate)
		}
	}
	return ctx
}
