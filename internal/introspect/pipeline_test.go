package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathscope/internal/kind"
	"mathscope/internal/rules"
)

func pipelineFixture(t *testing.T) (*kind.Object, *rules.Table) {
	t.Helper()
	base := kind.New("Base")
	leaf := kind.New("Leaf", base)

	base.DefineMethod(&kind.Method{
		Name:     "abstract_op",
		Abstract: true,
	})
	base.DefineMethod(&kind.Method{
		Name: "is_ready",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			return kind.NewObject(kind.New("Boolean"), true, "true"), nil
		},
	})
	leaf.Define("old_way", kind.Deprecate(&kind.Method{
		Name: "old_way",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			return recv, nil
		},
	}))
	leaf.Define("_secret", &kind.Attribute{Value: kind.NewObject(leaf, nil, "s")})
	leaf.DefineMethod(&kind.Method{
		Name: "size",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			return kind.NewObject(kind.New("Integer"), 3, "3"), nil
		},
	})

	ns := kind.NewNamespace()
	require.NoError(t, ns.RegisterKind(leaf))
	table, err := rules.LoadBytes([]byte(`
properties:
  - property: is_ready
    isinstance: Leaf
`), ns)
	require.NoError(t, err)

	return kind.NewObject(leaf, nil, "obj"), table
}

func TestMembers_FiltersAbstractDeprecatedAndPrivate(t *testing.T) {
	obj, table := pipelineFixture(t)

	members := Members(obj, table, false)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"is_ready", "size"}, names)
}

func TestMembers_IncludePrivate(t *testing.T) {
	obj, table := pipelineFixture(t)

	members := Members(obj, table, true)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"_secret", "is_ready", "size"}, names)
}

func TestMembers_RecordsFullyComputed(t *testing.T) {
	obj, table := pipelineFixture(t)

	for _, m := range Members(obj, table, false) {
		assert.NotNil(t, m.Member(), m.Name)
		assert.NotEmpty(t, string(m.MemberType()), m.Name)
		assert.NotNil(t, m.Origin(), m.Name)
	}
}

func TestProperties_OnlyRulePromotedMembers(t *testing.T) {
	obj, table := pipelineFixture(t)

	properties := Properties(obj, table)
	require.Len(t, properties, 1)
	assert.Equal(t, "is_ready", properties[0].Name)
	assert.Equal(t, "Is Ready", properties[0].PropLabel())
}
