package spotlight

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrInvalidSize is returned by NewCanvas for non-positive dimensions.
var ErrInvalidSize = errors.New("spotlight: invalid canvas size")

// Factory creates a RenderCanvas. Factories are registered with Register
// and called by NewCanvas.
type Factory func(opts CanvasOptions) (RenderCanvas, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available under name. It is typically called
// from init() in the backend package, following the database/sql driver
// pattern:
//
//	func init() {
//	    spotlight.Register("software", func(o spotlight.CanvasOptions) (spotlight.RenderCanvas, error) {
//	        return New(o)
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("spotlight: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("spotlight: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend. Unknown names are ignored.
// This is primarily useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// NewCanvas creates a canvas from the backend registered under name.
// The error for an unknown name wraps ErrUnknownBackend and hints at a
// forgotten import.
func NewCanvas(name string, opts CanvasOptions) (RenderCanvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	c, err := factory(opts)
	if err != nil {
		return nil, fmt.Errorf("spotlight: backend %q: %w", name, err)
	}
	Logger().Info("canvas created", "backend", name, "width", opts.Width, "height", opts.Height)
	return c, nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
