// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// DefaultName is the name of the built-in raster surface.
const DefaultName = "canvas"

// Factory creates a Canvas with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (*Canvas, error)

// Options configures a new Canvas.
type Options struct {
	Width, Height int

	// Background is a color style painted before any drawing.
	// Empty leaves the surface transparent.
	Background string
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry maps surface names to factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Acquire.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Factory)}
}

// Register adds a surface to the global registry, replacing any entry
// with the same name.
func Register(name string, factory Factory) {
	globalRegistry.Register(name, factory)
}

// Unregister removes a surface from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Names returns the registered names in sorted order.
func Names() []string {
	return globalRegistry.Names()
}

// Acquire creates the surface registered under name.
func Acquire(name string, opts Options) (*Canvas, error) {
	return globalRegistry.Acquire(name, opts)
}

// Register adds a surface to this registry.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = factory
}

// Unregister removes a surface from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

// Acquire creates the surface registered under name.
func (r *Registry) Acquire(name string, opts Options) (*Canvas, error) {
	r.mu.RLock()
	factory, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return factory(opts)
}

// Errors.
var (
	// ErrInvalidSize is returned when a canvas would have no pixels.
	ErrInvalidSize = errors.New("canvas: invalid size")
)

// NotFoundError indicates no surface is registered under Name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "canvas: surface not found: " + e.Name
}

// init registers the built-in raster surface.
func init() {
	Register(DefaultName, func(opts Options) (*Canvas, error) {
		return New(opts)
	})
}
