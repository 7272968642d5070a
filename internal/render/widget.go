package render

import (
	"sync"

	"mathscope/internal/kind"
)

// WidgetFactory renders a specialized visual block for a value.
type WidgetFactory func(v kind.Value) string

// WidgetRegistry maps kinds to visual-widget constructors. It replaces
// attaching widget factories to foreign kinds at runtime: the rendering
// layer consults the registry instead, walking the value's ancestor
// sequence for the nearest registered factory.
type WidgetRegistry struct {
	mu        sync.RWMutex
	factories map[*kind.Kind]WidgetFactory
}

// NewWidgetRegistry creates an empty registry.
func NewWidgetRegistry() *WidgetRegistry {
	return &WidgetRegistry{factories: make(map[*kind.Kind]WidgetFactory)}
}

// Register associates a factory with a kind.
func (w *WidgetRegistry) Register(k *kind.Kind, factory WidgetFactory) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.factories[k] = factory
}

// For returns the factory for the most specific ancestor of v's kind that
// has one registered.
func (w *WidgetRegistry) For(v kind.Value) (WidgetFactory, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ancestors, err := kind.MRO(kind.Of(v))
	if err != nil {
		factory, ok := w.factories[kind.Of(v)]
		return factory, ok
	}
	for _, c := range ancestors {
		if factory, ok := w.factories[c]; ok {
			return factory, true
		}
	}
	return nil, false
}
