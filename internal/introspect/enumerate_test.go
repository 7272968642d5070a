package introspect

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathscope/internal/kind"
)

func attrOf(k *kind.Kind, repr string) *kind.Attribute {
	return &kind.Attribute{Value: kind.NewObject(k, nil, repr)}
}

func TestEnumerateMembers_UnionOfLattice(t *testing.T) {
	root := kind.New("Root")
	mid := kind.New("Mid", root)
	leaf := kind.New("Leaf", mid)

	root.Define("from_root", attrOf(root, "r"))
	mid.Define("from_mid", attrOf(mid, "m"))
	leaf.Define("from_leaf", attrOf(leaf, "l"))

	obj := kind.NewObject(leaf, nil, "obj")
	obj.SetAttr("own", kind.NewObject(leaf, nil, "own"))

	members := EnumerateMembers(obj)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"from_leaf", "from_mid", "from_root", "own"}, names)
}

func TestEnumerateMembers_SortedAndDeduplicated(t *testing.T) {
	root := kind.New("Root")
	leaf := kind.New("Leaf", root)
	// Same name on two levels must appear once, bound to the leaf definition.
	root.Define("x", attrOf(root, "root-x"))
	leaf.Define("x", attrOf(leaf, "leaf-x"))
	leaf.Define("a", attrOf(leaf, "a"))
	leaf.Define("z", attrOf(leaf, "z"))

	members := EnumerateMembers(kind.NewObject(leaf, nil, ""))
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, []string{"a", "x", "z"}, names)

	for _, m := range members {
		if m.Name == "x" {
			assert.Equal(t, "leaf-x", m.Value.Repr())
		}
	}
}

func TestEnumerateMembers_NoiseNamesExcluded(t *testing.T) {
	k := kind.New("K")
	k.Define("__weakref__", attrOf(k, "w"))
	k.Define("__dict__", attrOf(k, "d"))
	k.Define("kept", attrOf(k, "kept"))

	members := EnumerateMembers(kind.NewObject(k, nil, ""))
	require.Len(t, members, 1)
	assert.Equal(t, "kept", members[0].Name)
}

func TestEnumerateMembers_GhostNamesDropped(t *testing.T) {
	k := kind.New("K")
	k.Define("real", attrOf(k, "real"))
	k.Advertise("ghost", "real")

	members := EnumerateMembers(kind.NewObject(k, nil, ""))
	require.Len(t, members, 1)
	assert.Equal(t, "real", members[0].Name)
}

func TestEnumerateMembers_BindFailureFallsBackToRawDef(t *testing.T) {
	k := kind.New("K")
	broken := &kind.Descriptor{
		Name: "broken",
		Get: func(kind.Value) (kind.Value, error) {
			return nil, fmt.Errorf("slot misbehaved")
		},
	}
	k.Define("broken", broken)

	members := EnumerateMembers(kind.NewObject(k, nil, ""))
	require.Len(t, members, 1)
	assert.Equal(t, "broken", members[0].Name)
	// The raw descriptor itself surfaces as the member value.
	assert.Same(t, broken, members[0].Value)
}

func TestEnumerateMembers_InstanceAttrShadowsDefinition(t *testing.T) {
	k := kind.New("K")
	k.Define("x", attrOf(k, "from-kind"))
	obj := kind.NewObject(k, nil, "")
	own := kind.NewObject(k, nil, "from-instance")
	obj.SetAttr("x", own)

	members := EnumerateMembers(obj)
	require.Len(t, members, 1)
	assert.Same(t, own, members[0].Value)
}

func TestEnumerateMembers_OnKindDirectly(t *testing.T) {
	root := kind.New("Root")
	leaf := kind.New("Leaf", root)
	root.Define("inherited", attrOf(root, "i"))

	members := EnumerateMembers(leaf)
	require.Len(t, members, 1)
	assert.Equal(t, "inherited", members[0].Name)
}

func TestIsDeprecated(t *testing.T) {
	k := kind.New("K")
	plain := kind.NewObject(k, nil, "")
	assert.False(t, IsDeprecated(plain))
	assert.True(t, IsDeprecated(&kind.DeprecatedValue{Value: plain}))
}

func TestIsAbstract(t *testing.T) {
	k := kind.New("K")
	abstract := &kind.Method{Name: "op", Abstract: true}
	concrete := &kind.Method{Name: "op", Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
		return recv, nil
	}}
	obj := kind.NewObject(k, nil, "")

	boundAbstract, err := abstract.Bind(obj)
	require.NoError(t, err)
	boundConcrete, err := concrete.Bind(obj)
	require.NoError(t, err)

	assert.True(t, IsAbstract(boundAbstract))
	assert.False(t, IsAbstract(boundConcrete))
	assert.False(t, IsAbstract(obj))
}
