package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathscope/internal/kind"
	"mathscope/internal/rules"
)

func testLattice(t *testing.T) (*kind.Kind, *kind.Object) {
	t.Helper()
	root := kind.New("Root")
	leaf := kind.New("Leaf", root)

	root.DefineMethod(&kind.Method{
		Name:    "greet",
		DocText: "Say hello.",
		Params:  []kind.Param{{Name: "loud", Default: "false", HasDef: true}},
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			return kind.NewObject(root, "hello", "hello"), nil
		},
	})
	leaf.Define("data", &kind.Attribute{
		DocText: "A plain attribute.",
		Value:   kind.NewObject(leaf, 7, "7"),
	})
	return root, kind.NewObject(leaf, nil, "obj")
}

func TestMember_ComputeMemberIdempotent(t *testing.T) {
	_, obj := testLattice(t)
	m := NewMember("greet", obj)

	require.NoError(t, m.ComputeMember(nil))
	first := m.Member()
	require.NotNil(t, first)

	// A second compute with no fresh container must not rebind: binding a
	// method again would produce a new bound value.
	require.NoError(t, m.ComputeMember(nil))
	assert.Same(t, first, m.Member())
}

func TestMember_ComputeMemberFreshContainerRebinds(t *testing.T) {
	_, obj := testLattice(t)
	m := NewMember("greet", obj)
	require.NoError(t, m.ComputeMember(nil))
	first := m.Member().(*kind.BoundMethod)
	assert.Same(t, obj, first.Recv)

	_, other := testLattice(t)
	require.NoError(t, m.ComputeMember(other))
	second := m.Member().(*kind.BoundMethod)
	assert.Same(t, other, second.Recv)
}

func TestMember_NoContainer(t *testing.T) {
	m := NewMember("data", nil)
	assert.ErrorIs(t, m.ComputeMember(nil), ErrNoContainer)
	assert.ErrorIs(t, m.ComputeDoc(nil), ErrNoContainer)
	assert.ErrorIs(t, m.ComputeMemberType(nil), ErrNoContainer)
	assert.ErrorIs(t, m.ComputeOrigin(nil), ErrNoContainer)
	assert.ErrorIs(t, m.ComputeArgspec(nil), ErrNoContainer)
	assert.ErrorIs(t, m.ComputePropertyLabel(&rules.Table{}), ErrNoContainer)
}

func TestMember_ComputeDoc(t *testing.T) {
	_, obj := testLattice(t)

	m := NewMember("greet", obj)
	require.NoError(t, m.ComputeDoc(nil))
	assert.Equal(t, "Say hello.", m.Doc())

	m = NewMember("data", obj)
	require.NoError(t, m.ComputeDoc(nil))
	assert.Equal(t, "A plain attribute.", m.Doc())

	// A missing member yields an empty doc, not an error.
	m = NewMember("nope", obj)
	require.NoError(t, m.ComputeDoc(nil))
	assert.Equal(t, "", m.Doc())
}

func TestMember_ComputeMemberType(t *testing.T) {
	_, obj := testLattice(t)

	m := NewMember("greet", obj)
	require.NoError(t, m.ComputeMemberType(nil))
	assert.Equal(t, MemberTypeInstanceMethod, m.MemberType())

	m = NewMember("data", obj)
	require.NoError(t, m.ComputeMemberType(nil))
	assert.Equal(t, MemberTypeAttribute, m.MemberType())
}

func TestMember_ComputeMemberTypeMissingMember(t *testing.T) {
	_, obj := testLattice(t)
	m := NewMember("does_not_exist", obj)
	err := m.ComputeMemberType(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non existent member")
}

func TestMemberTypeClassification(t *testing.T) {
	k := kind.New("K")
	obj := kind.NewObject(k, nil, "")

	classMethod := &kind.Method{Name: "c", Style: kind.StyleClass}
	descMethod := &kind.Method{Name: "d", Style: kind.StyleDescriptor}
	boundClass, err := classMethod.Bind(obj)
	require.NoError(t, err)
	boundDesc, err := descMethod.Bind(obj)
	require.NoError(t, err)

	assert.Equal(t, MemberTypeClassMethod, classifyMemberType(boundClass))
	assert.Equal(t, MemberTypeMethodDescriptor, classifyMemberType(boundDesc))
	assert.Equal(t, MemberTypeAttribute, classifyMemberType(obj))

	// Deprecated wrappers classify as what they wrap.
	assert.Equal(t, MemberTypeClassMethod,
		classifyMemberType(&kind.DeprecatedValue{Value: boundClass}))
}

func TestMember_Privacy(t *testing.T) {
	tests := []struct {
		name string
		want Privacy
	}{
		{"cardinality", PrivacyNone},
		{"__class__", PrivacyDunder},
		{"_ascii_art_", PrivacyFrameworkReserved},
		{"_reduction", PrivacyPrivate},
		{"_", PrivacyFrameworkReserved},
		{"__init__", PrivacyDunder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMember(tt.name, nil)
			m.ComputePrivacy()
			assert.Equal(t, tt.want, m.Privacy())
		})
	}
}

func TestMember_ComputeArgspec(t *testing.T) {
	_, obj := testLattice(t)

	m := NewMember("greet", obj)
	require.NoError(t, m.ComputeArgspec(nil))
	assert.Equal(t, []string{"self", "loud"}, m.Args())
	assert.Equal(t, []string{"false"}, m.Defaults())

	// Attributes get empty args and defaults without error.
	m = NewMember("data", obj)
	require.NoError(t, m.ComputeArgspec(nil))
	assert.Empty(t, m.Args())
	assert.Empty(t, m.Defaults())
}

func TestMember_ComputeArgspecClassMethod(t *testing.T) {
	k := kind.New("K")
	k.DefineMethod(&kind.Method{
		Name:  "make",
		Style: kind.StyleClass,
		Params: []kind.Param{
			{Name: "size"},
			{Name: "fill", Default: "0", HasDef: true},
		},
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			return recv, nil
		},
	})
	m := NewMember("make", kind.NewObject(k, nil, ""))
	require.NoError(t, m.ComputeArgspec(nil))
	assert.Equal(t, []string{"cls", "size", "fill"}, m.Args())
	assert.Equal(t, []string{"0"}, m.Defaults())
}

func TestMember_ComputeOrigin(t *testing.T) {
	root, obj := testLattice(t)
	m := NewMember("greet", obj)
	require.NoError(t, m.ComputeOrigin(nil))
	assert.Same(t, root, m.Origin())
	assert.Empty(t, m.Overrides())
}
