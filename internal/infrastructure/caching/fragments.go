// Package caching provides in-memory caches for rendered output
package caching

import (
	"sync"
	"time"
)

// Fragment is one cached rendered page fragment. Fragments depend on the
// content objects they were rendered from; invalidating a dependency drops
// every fragment built on it.
type Fragment struct {
	HTML        string
	PageID      string
	DependsOn   []string
	LastUpdated time.Time
}

// FragmentStore caches rendered landing page fragments keyed by page ID and
// variant. A variant distinguishes renders of the same page against
// different form snapshots; the default variant is the bare page.
type FragmentStore struct {
	mu     sync.RWMutex
	chunks map[string]*Fragment
	deps   map[string][]string
	ttl    time.Duration
}

// NewFragmentStore creates a fragment store with the given TTL.
func NewFragmentStore(ttl time.Duration) *FragmentStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &FragmentStore{
		chunks: make(map[string]*Fragment),
		deps:   make(map[string][]string),
		ttl:    ttl,
	}
}

// BuildKey creates a unique fragment key for a page and variant.
func (fs *FragmentStore) BuildKey(pageID, variant string) string {
	if variant == "" {
		return pageID + ":default"
	}
	return pageID + ":" + variant
}

// Get retrieves a cached fragment; expired fragments report a miss.
func (fs *FragmentStore) Get(pageID, variant string) (*Fragment, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	chunk, exists := fs.chunks[fs.BuildKey(pageID, variant)]
	if !exists {
		return nil, false
	}
	if time.Since(chunk.LastUpdated) > fs.ttl {
		return nil, false
	}
	return chunk, true
}

// Set stores a rendered fragment along with its dependencies.
func (fs *FragmentStore) Set(pageID, variant, html string, dependsOn []string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	key := fs.BuildKey(pageID, variant)
	fs.chunks[key] = &Fragment{
		HTML:        html,
		PageID:      pageID,
		DependsOn:   dependsOn,
		LastUpdated: time.Now().UTC(),
	}

	for _, dep := range dependsOn {
		found := false
		for _, existing := range fs.deps[dep] {
			if existing == key {
				found = true
				break
			}
		}
		if !found {
			fs.deps[dep] = append(fs.deps[dep], key)
		}
	}
}

// InvalidatePage drops every cached variant of a page.
func (fs *FragmentStore) InvalidatePage(pageID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prefix := pageID + ":"
	for key := range fs.chunks {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(fs.chunks, key)
		}
	}
}

// InvalidateByDependency drops every fragment rendered from the given
// content object (a product or page id).
func (fs *FragmentStore) InvalidateByDependency(dependencyID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, key := range fs.deps[dependencyID] {
		delete(fs.chunks, key)
	}
	delete(fs.deps, dependencyID)
}

// PurgeExpired removes expired fragments and returns how many were dropped.
func (fs *FragmentStore) PurgeExpired() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	purged := 0
	for key, chunk := range fs.chunks {
		if time.Since(chunk.LastUpdated) > fs.ttl {
			delete(fs.chunks, key)
			purged++
		}
	}
	return purged
}

// Summary reports cache occupancy for diagnostics.
func (fs *FragmentStore) Summary() map[string]any {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return map[string]any{
		"fragments":    len(fs.chunks),
		"dependencies": len(fs.deps),
		"ttl":          fs.ttl.String(),
	}
}
