// Package platform holds the adapter registry. Concrete adapters live in
// sub-packages and are registered at startup.
package platform

import (
	"slices"
	"sync"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// Registry maps platform names to adapters. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.Platform]port.PlatformAdapter
}

// NewRegistry returns a registry holding the given adapters, keyed by their
// own Platform().
func NewRegistry(adapters ...port.PlatformAdapter) *Registry {
	r := &Registry{adapters: make(map[domain.Platform]port.PlatformAdapter, len(adapters))}
	for _, a := range adapters {
		r.Register(a.Platform(), a)
	}
	return r
}

// Register adds or replaces the adapter for platform.
func (r *Registry) Register(platform domain.Platform, a port.PlatformAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[domain.NormalizePlatform(string(platform))] = a
}

// Lookup implements port.AdapterRegistry. Unknown platforms return false.
func (r *Registry) Lookup(platform domain.Platform) (port.PlatformAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[domain.NormalizePlatform(string(platform))]
	return a, ok
}

// Platforms returns the registered platform names, sorted.
func (r *Registry) Platforms() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Platform, 0, len(r.adapters))
	for p := range r.adapters {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
