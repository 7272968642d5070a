package introspect

import (
	"errors"
	"fmt"
	"strings"

	"mathscope/internal/kind"
	"mathscope/internal/rules"
)

// ErrNoContainer signals that a compute method was called on a record that
// has no container stored and was given none. It marks a configuration error
// in the calling code, not an introspection failure.
var ErrNoContainer = errors.New("no container available")

// MemberType classifies what a bound member value is.
type MemberType string

// Member type tags.
const (
	MemberTypeClassMethod      MemberType = "class-method"
	MemberTypeInstanceMethod   MemberType = "instance-method"
	MemberTypeMethodDescriptor MemberType = "method-descriptor"
	MemberTypeCallable         MemberType = "callable"
	MemberTypeAttribute        MemberType = "attribute"
)

// Privacy classifies a member name by its underscore convention.
type Privacy string

// Privacy tags. The zero value means a public member.
const (
	PrivacyNone              Privacy = ""
	PrivacyDunder            Privacy = "dunder"
	PrivacyFrameworkReserved Privacy = "framework-reserved"
	PrivacyPrivate           Privacy = "private"
)

// Member is a lazily populated descriptor of one explored member. Each
// compute method is idempotent: it is a no-op when the field is already
// populated and no new container is supplied, and it never touches fields it
// is not documented to compute.
type Member struct {
	Name      string
	Container kind.Value

	member    kind.Value
	hasMember bool

	doc    string
	hasDoc bool

	memberType    MemberType
	hasMemberType bool

	privacy    Privacy
	hasPrivacy bool

	origin    *kind.Kind
	overrides []*kind.Kind
	hasOrigin bool

	args     []string
	defaults []string
	hasArgs  bool

	propLabel string
	hasLabel  bool
}

// NewMember creates a record for the named member of container. The
// container may be nil when it will be supplied to the compute methods.
func NewMember(name string, container kind.Value) *Member {
	return &Member{Name: name, Container: container}
}

// resolveContainer applies the stored-or-explicit container policy shared by
// all compute methods.
func (m *Member) resolveContainer(container kind.Value) (kind.Value, bool, error) {
	fresh := container != nil
	if container == nil {
		container = m.Container
	}
	if container == nil {
		return nil, false, ErrNoContainer
	}
	m.Container = container
	return container, fresh, nil
}

// ComputeMember binds the member value from the container. A binding failure
// leaves the field unset without error; only a missing container errors.
func (m *Member) ComputeMember(container kind.Value) error {
	cont, fresh, err := m.resolveContainer(container)
	if err != nil {
		return err
	}
	if m.hasMember && !fresh {
		return nil
	}
	k := kind.Of(cont)
	ancestors, mroErr := kind.MRO(k)
	if mroErr != nil {
		ancestors = []*kind.Kind{k}
	}
	value, ok := accessMember(cont, ancestors, m.Name)
	if !ok {
		return nil
	}
	m.member = value
	m.hasMember = true
	return nil
}

// Member returns the bound member value, or nil when not computed.
func (m *Member) Member() kind.Value { return m.member }

// ComputeDoc fetches the member's documentation string, falling back to the
// defining ancestor's raw definition when the bound value carries none.
func (m *Member) ComputeDoc(container kind.Value) error {
	cont, fresh, err := m.resolveContainer(container)
	if err != nil {
		return err
	}
	if m.hasDoc && !fresh {
		return nil
	}
	if !m.hasMember {
		if err := m.ComputeMember(cont); err != nil {
			return err
		}
	}
	doc := ""
	if m.hasMember {
		if documented, ok := m.member.(interface{ Doc() string }); ok {
			doc = documented.Doc()
		}
	}
	if doc == "" {
		if def, _, found := kind.Of(cont).Resolve(m.Name); found {
			doc = def.Doc()
		}
	}
	m.doc = doc
	m.hasDoc = true
	return nil
}

// Doc returns the documentation string, possibly empty.
func (m *Member) Doc() string { return m.doc }

// ComputeMemberType classifies the bound member value. Unlike the other
// lookups this one errors when no member value can be determined, since a
// type tag for a nonexistent member is meaningless.
func (m *Member) ComputeMemberType(container kind.Value) error {
	cont, fresh, err := m.resolveContainer(container)
	if err != nil {
		return err
	}
	if m.hasMemberType && !fresh {
		return nil
	}
	if !m.hasMember {
		if err := m.ComputeMember(cont); err != nil {
			return err
		}
	}
	if !m.hasMember {
		return fmt.Errorf("cannot determine the type of a non existent member")
	}
	m.memberType = classifyMemberType(m.member)
	m.hasMemberType = true
	return nil
}

// MemberType returns the computed type tag.
func (m *Member) MemberType() MemberType { return m.memberType }

func classifyMemberType(v kind.Value) MemberType {
	switch val := v.(type) {
	case *kind.DeprecatedValue:
		return classifyMemberType(val.Value)
	case *kind.BoundMethod:
		switch val.Def.Style {
		case kind.StyleClass:
			return MemberTypeClassMethod
		case kind.StyleDescriptor:
			return MemberTypeMethodDescriptor
		default:
			return MemberTypeInstanceMethod
		}
	case *kind.Descriptor:
		return MemberTypeMethodDescriptor
	}
	if _, ok := v.(kind.Callable); ok {
		return MemberTypeCallable
	}
	return MemberTypeAttribute
}

// ComputePrivacy classifies the member name by underscore convention.
func (m *Member) ComputePrivacy() {
	if m.hasPrivacy {
		return
	}
	m.privacy = classifyPrivacy(m.Name)
	m.hasPrivacy = true
}

// Privacy returns the privacy tag for the member name.
func (m *Member) Privacy() Privacy { return m.privacy }

func classifyPrivacy(name string) Privacy {
	if !strings.HasPrefix(name, "_") {
		return PrivacyNone
	}
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return PrivacyDunder
	}
	if strings.HasSuffix(name, "_") {
		return PrivacyFrameworkReserved
	}
	return PrivacyPrivate
}

// ComputeOrigin determines the defining ancestor and the shadowed ancestors
// for this member.
func (m *Member) ComputeOrigin(container kind.Value) error {
	cont, fresh, err := m.resolveContainer(container)
	if err != nil {
		return err
	}
	if m.hasOrigin && !fresh {
		return nil
	}
	m.origin, m.overrides = ResolveOrigin(cont, m.Name)
	m.hasOrigin = true
	return nil
}

// Origin returns the ancestor kind where the member is defined.
func (m *Member) Origin() *kind.Kind { return m.origin }

// Overrides returns the ancestor kinds whose definitions are shadowed.
func (m *Member) Overrides() []*kind.Kind { return m.overrides }

// ComputeArgspec fills the call signature for callable members; attributes
// get empty args and defaults without error.
func (m *Member) ComputeArgspec(container kind.Value) error {
	cont, fresh, err := m.resolveContainer(container)
	if err != nil {
		return err
	}
	if m.hasArgs && !fresh {
		return nil
	}
	if !m.hasMember {
		if err := m.ComputeMember(cont); err != nil {
			return err
		}
	}
	m.args, m.defaults = []string{}, []string{}
	m.hasArgs = true
	if !m.hasMember {
		return nil
	}
	bm, ok := m.member.(*kind.BoundMethod)
	if !ok {
		return nil
	}
	recv := "self"
	if bm.Def.Style == kind.StyleClass {
		recv = "cls"
	}
	m.args = append(m.args, recv)
	for _, p := range bm.Def.Params {
		m.args = append(m.args, p.Name)
		if p.HasDef {
			m.defaults = append(m.defaults, p.Default)
		}
	}
	return nil
}

// Args returns the computed argument names, receiver included.
func (m *Member) Args() []string { return m.args }

// Defaults returns the defaults for trailing arguments.
func (m *Member) Defaults() []string { return m.defaults }

// ComputePropertyLabel consults the rule table and stores the display label
// when this member qualifies as a property.
func (m *Member) ComputePropertyLabel(table *rules.Table) error {
	if m.Container == nil {
		return ErrNoContainer
	}
	m.propLabel = table.Classify(m.Container, m.Name)
	m.hasLabel = true
	return nil
}

// PropLabel returns the property display label, or "" when the member is not
// a property.
func (m *Member) PropLabel() string { return m.propLabel }
