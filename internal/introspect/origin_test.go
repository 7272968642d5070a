package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathscope/internal/kind"
)

func TestResolveOrigin_DefinedOnOwnKind(t *testing.T) {
	root := kind.New("Root")
	leaf := kind.New("Leaf", root)
	leaf.Define("x", attrOf(leaf, "x"))

	origin, overrides := ResolveOrigin(kind.NewObject(leaf, nil, ""), "x")
	assert.Same(t, leaf, origin)
	assert.Empty(t, overrides)
}

func TestResolveOrigin_InheritedFromAncestor(t *testing.T) {
	root := kind.New("Root")
	mid := kind.New("Mid", root)
	leaf := kind.New("Leaf", mid)
	mid.Define("x", attrOf(mid, "x"))

	origin, overrides := ResolveOrigin(kind.NewObject(leaf, nil, ""), "x")
	assert.Same(t, mid, origin)
	assert.Empty(t, overrides)
}

func TestResolveOrigin_SharedDefinitionDeepWins(t *testing.T) {
	// Mid and Root hold the identical definition (Mid inherited it by
	// aliasing). The origin is the deepest ancestor holding it: the walk
	// toward the root keeps the last match.
	root := kind.New("Root")
	mid := kind.New("Mid", root)
	leaf := kind.New("Leaf", mid)

	shared := attrOf(root, "shared")
	root.Define("x", shared)
	mid.Define("x", shared)

	origin, overrides := ResolveOrigin(kind.NewObject(leaf, nil, ""), "x")
	assert.Same(t, root, origin)
	assert.Empty(t, overrides)
}

func TestResolveOrigin_OverridesPartition(t *testing.T) {
	// Leaf overrides x; Mid and Root each hold their own definition. Both
	// become overrides: their definitions are shadowed by the binding.
	root := kind.New("Root")
	mid := kind.New("Mid", root)
	leaf := kind.New("Leaf", mid)

	root.Define("x", attrOf(root, "root-x"))
	mid.Define("x", attrOf(mid, "mid-x"))
	leaf.Define("x", attrOf(leaf, "leaf-x"))

	origin, overrides := ResolveOrigin(kind.NewObject(leaf, nil, ""), "x")
	assert.Same(t, leaf, origin)
	require.Len(t, overrides, 2)
	assert.Same(t, mid, overrides[0])
	assert.Same(t, root, overrides[1])
}

func TestResolveOrigin_MixedOriginAndOverride(t *testing.T) {
	// Mid defines the binding Leaf sees; Root holds an older definition of
	// the same name. Mid is the origin, Root an override.
	root := kind.New("Root")
	mid := kind.New("Mid", root)
	leaf := kind.New("Leaf", mid)

	root.Define("x", attrOf(root, "root-x"))
	mid.Define("x", attrOf(mid, "mid-x"))

	origin, overrides := ResolveOrigin(kind.NewObject(leaf, nil, ""), "x")
	assert.Same(t, mid, origin)
	require.Len(t, overrides, 1)
	assert.Same(t, root, overrides[0])
}

func TestResolveOrigin_MissingMember(t *testing.T) {
	leaf := kind.New("Leaf")
	origin, overrides := ResolveOrigin(kind.NewObject(leaf, nil, ""), "nope")
	assert.Same(t, leaf, origin)
	assert.Empty(t, overrides)
}

func TestResolveOrigin_Deterministic(t *testing.T) {
	root := kind.New("Root")
	left := kind.New("Left", root)
	right := kind.New("Right", root)
	leaf := kind.New("Leaf", left, right)

	left.Define("x", attrOf(left, "left-x"))
	right.Define("x", attrOf(right, "right-x"))
	obj := kind.NewObject(leaf, nil, "")

	firstOrigin, firstOverrides := ResolveOrigin(obj, "x")
	for i := 0; i < 10; i++ {
		origin, overrides := ResolveOrigin(obj, "x")
		assert.Same(t, firstOrigin, origin)
		assert.Equal(t, firstOverrides, overrides)
	}
	// Left precedes Right in the linearization, so Left's definition wins.
	assert.Same(t, left, firstOrigin)
	require.Len(t, firstOverrides, 1)
	assert.Same(t, right, firstOverrides[0])
}

func TestExtractKindName(t *testing.T) {
	tests := []struct {
		name      string
		kindName  string
		bases     []*kind.Kind
		elementOK bool
		want      string
	}{
		{name: "plain", kindName: "Partition", want: "Partition"},
		{name: "dotted", kindName: "combinat.Partition", want: "Partition"},
		{
			name:     "element class falls back to base",
			kindName: "Partitions_all_with_category.element_class",
			bases:    []*kind.Kind{kind.New("Partition")},
			want:     "Partition",
		},
		{
			name:      "element class kept when allowed",
			kindName:  "Partitions_all_with_category.element_class",
			bases:     []*kind.Kind{kind.New("Partition")},
			elementOK: true,
			want:      "Partitions_all_with_category.element_class",
		},
		{
			name:     "parent class falls back to base",
			kindName: "Partitions_with_category.parent_class",
			bases:    []*kind.Kind{kind.New("Partitions")},
			want:     "Partitions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := kind.New(tt.kindName, tt.bases...)
			assert.Equal(t, tt.want, ExtractKindName(k, tt.elementOK))
		})
	}
}
