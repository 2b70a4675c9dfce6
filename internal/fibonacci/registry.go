package fibonacci

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/loopkata/internal/errors"
)

// Factory maps registry names to Calculator implementations.
type Factory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a Factory with "iterative" and "doubling" registered.
func NewDefaultFactory() *Factory {
	f := &Factory{calculators: make(map[string]Calculator)}
	f.Register("iterative", IterativeCalculator{})
	f.Register("doubling", DoublingCalculator{})
	return f
}

// Register adds or replaces the Calculator known under name.
func (f *Factory) Register(name string, c Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = c
}

// Get returns the Calculator registered under name, or a ConfigError.
func (f *Factory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	c, ok := f.calculators[name]
	f.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewConfigError("unknown fibonacci algorithm %q (available: %v)", name, f.List())
	}
	return c, nil
}

// MustGet is like Get but panics on unknown names.
func (f *Factory) MustGet(name string) Calculator {
	c, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
