package summation

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/loopkata/internal/errors"
)

// Factory maps registry names to Summer implementations.
type Factory struct {
	mu      sync.RWMutex
	summers map[string]Summer
}

// NewDefaultFactory returns a Factory with the built-in algorithms registered
// as "naive" and "optimized".
func NewDefaultFactory() *Factory {
	f := &Factory{summers: make(map[string]Summer)}
	f.Register("naive", NestedLoop{})
	f.Register("optimized", LinearPass{})
	return f
}

// Register adds or replaces the Summer known under name.
func (f *Factory) Register(name string, s Summer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summers[name] = s
}

// Get returns the Summer registered under name, or a ConfigError.
func (f *Factory) Get(name string) (Summer, error) {
	f.mu.RLock()
	s, ok := f.summers[name]
	f.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewConfigError("unknown summation algorithm %q (available: %v)", name, f.List())
	}
	return s, nil
}

// MustGet is like Get but panics on unknown names. Intended for tests and
// static wiring.
func (f *Factory) MustGet(name string) Summer {
	s, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.summers))
	for name := range f.summers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
