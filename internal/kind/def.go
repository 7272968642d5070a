package kind

import (
	"fmt"
)

// Def is a member definition stored in a kind's dict. Definitions compare by
// identity: two ancestors share a definition only when their dicts hold the
// same Def value.
type Def interface {
	// Doc returns the definition's documentation string, possibly empty.
	Doc() string
	// Bind produces the value seen when the member is accessed on container.
	Bind(container Value) (Value, error)
}

// MethodStyle tags how a method binds to its container.
type MethodStyle int

const (
	// StyleInstance methods receive the instance they were accessed on.
	StyleInstance MethodStyle = iota
	// StyleClass methods receive the kind rather than the instance.
	StyleClass
	// StyleDescriptor methods are low-level slots bound by the framework.
	StyleDescriptor
)

// Param describes one parameter of a method, with an optional default.
type Param struct {
	Name    string
	Default string
	HasDef  bool
}

// Method is a callable member definition.
type Method struct {
	Name     string
	DocText  string
	Style    MethodStyle
	Params   []Param
	Abstract bool
	Fn       func(recv Value, args ...Value) (Value, error)
}

// Doc implements Def.
func (m *Method) Doc() string { return m.DocText }

// Bind implements Def, producing a bound method for the container.
func (m *Method) Bind(container Value) (Value, error) {
	recv := container
	if m.Style == StyleClass {
		recv = Of(container)
	}
	return &BoundMethod{Def: m, Recv: recv}, nil
}

// BoundMethod is a method bound to a receiver, ready to call.
type BoundMethod struct {
	Def  *Method
	Recv Value
}

// Kind implements Value.
func (b *BoundMethod) Kind() *Kind { return Function }

// Repr implements Value.
func (b *BoundMethod) Repr() string {
	return fmt.Sprintf("<bound method %s of %s>", b.Def.Name, b.Recv.Repr())
}

// Call invokes the underlying method on the bound receiver.
func (b *BoundMethod) Call(args ...Value) (Value, error) {
	if b.Def.Fn == nil {
		return nil, fmt.Errorf("method %s is not implemented", b.Def.Name)
	}
	return b.Def.Fn(b.Recv, args...)
}

// Attribute is a plain, non-callable member definition.
type Attribute struct {
	DocText string
	Value   Value
}

// Doc implements Def.
func (a *Attribute) Doc() string { return a.DocText }

// Bind implements Def, returning the stored value.
func (a *Attribute) Bind(Value) (Value, error) { return a.Value, nil }

// Descriptor is a member definition whose binding is computed and may fail.
// When binding fails, the enumerator falls back to the raw definition found
// in an ancestor's dict, the way buggy slot members are tolerated.
type Descriptor struct {
	Name    string
	DocText string
	Get     func(container Value) (Value, error)
}

// Doc implements Def.
func (d *Descriptor) Doc() string { return d.DocText }

// Bind implements Def.
func (d *Descriptor) Bind(container Value) (Value, error) {
	if d.Get == nil {
		return nil, fmt.Errorf("descriptor %s has no getter", d.Name)
	}
	return d.Get(container)
}

// Kind implements Value so a raw descriptor can itself surface as a member
// value after a binding failure.
func (d *Descriptor) Kind() *Kind { return Function }

// Repr implements Value.
func (d *Descriptor) Repr() string { return fmt.Sprintf("<descriptor %s>", d.Name) }

// DeprecatedDef marks a definition as deprecated. Binding yields a
// DeprecatedValue, whose dynamic type name is what the enumerator's
// deprecation heuristic keys on.
type DeprecatedDef struct {
	Def
}

// Bind implements Def, wrapping the bound value in a DeprecatedValue.
func (d *DeprecatedDef) Bind(container Value) (Value, error) {
	v, err := d.Def.Bind(container)
	if err != nil {
		return nil, err
	}
	return &DeprecatedValue{Value: v}, nil
}

// DeprecatedValue wraps a bound member value whose definition is deprecated.
type DeprecatedValue struct {
	Value
}

// Deprecate wraps a definition so member listings skip it.
func Deprecate(def Def) Def { return &DeprecatedDef{Def: def} }
