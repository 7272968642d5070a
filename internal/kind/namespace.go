package kind

import (
	"fmt"
	"sync"
)

// Predicate tests a value directly, used by the rule table's predicate key.
type Predicate func(Value) bool

// Collection is a named category of values used by the rule table's
// membership tests. Contains may fail; a failure counts as "not a member".
type Collection interface {
	Name() string
	Contains(v Value) (bool, error)
}

// CollectionFunc adapts a function to the Collection interface.
type CollectionFunc struct {
	CollectionName string
	Fn             func(v Value) (bool, error)
}

// Name implements Collection.
func (c *CollectionFunc) Name() string { return c.CollectionName }

// Contains implements Collection.
func (c *CollectionFunc) Contains(v Value) (bool, error) {
	if c.Fn == nil {
		return false, fmt.Errorf("collection %s has no membership test", c.CollectionName)
	}
	return c.Fn(v)
}

// Namespace resolves the string identifiers appearing in the property rule
// table: kind names for instance-of tests, collection names for membership
// tests, and predicate names. It replaces dynamic evaluation with an explicit
// registry populated before the rule table is compiled.
type Namespace struct {
	mu          sync.RWMutex
	kinds       map[string]*Kind
	collections map[string]Collection
	predicates  map[string]Predicate
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		kinds:       make(map[string]*Kind),
		collections: make(map[string]Collection),
		predicates:  make(map[string]Predicate),
	}
}

// RegisterKind makes k resolvable under its own name, returning an error if
// the name is taken.
func (ns *Namespace) RegisterKind(k *Kind) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if _, exists := ns.kinds[k.Name()]; exists {
		return fmt.Errorf("kind %s already registered", k.Name())
	}
	ns.kinds[k.Name()] = k
	return nil
}

// LookupKind resolves a kind name.
func (ns *Namespace) LookupKind(name string) (*Kind, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	k, ok := ns.kinds[name]
	return k, ok
}

// RegisterCollection makes c resolvable under its name.
func (ns *Namespace) RegisterCollection(c Collection) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if _, exists := ns.collections[c.Name()]; exists {
		return fmt.Errorf("collection %s already registered", c.Name())
	}
	ns.collections[c.Name()] = c
	return nil
}

// LookupCollection resolves a collection name.
func (ns *Namespace) LookupCollection(name string) (Collection, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	c, ok := ns.collections[name]
	return c, ok
}

// RegisterPredicate makes fn resolvable under name.
func (ns *Namespace) RegisterPredicate(name string, fn Predicate) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if _, exists := ns.predicates[name]; exists {
		return fmt.Errorf("predicate %s already registered", name)
	}
	ns.predicates[name] = fn
	return nil
}

// LookupPredicate resolves a predicate name.
func (ns *Namespace) LookupPredicate(name string) (Predicate, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	fn, ok := ns.predicates[name]
	return fn, ok
}

// KindNames returns the registered kind names, unordered.
func (ns *Namespace) KindNames() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	names := make([]string, 0, len(ns.kinds))
	for name := range ns.kinds {
		names = append(names, name)
	}
	return names
}
