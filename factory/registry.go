// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package factory

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gpures"
)

// Constructor creates a new, exclusively owned instance of T.
type Constructor[T any] func() T

// Entry is a single registration.
type Entry[T any] struct {
	// Priority is the primary sort key; lower values sort first.
	Priority int

	// Name is the unique key and the secondary sort key.
	Name string

	// New creates instances.
	New Constructor[T]
}

// Module is an initialisation routine that registers one module's
// constructors. It replaces static self-registration: the application calls
// each Module explicitly during startup.
type Module[T any] func(r *Registry[T])

// Registry maps names to constructors of T, ordered by (priority, name).
//
// Registry is safe for concurrent use, but registration is expected to
// finish before the first lookup. Indexes are only stable while no further
// registration happens.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T]
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Register adds ctor under name unless the name is already taken.
// It reports whether the entry was inserted; a duplicate leaves the
// registry unchanged. The table is re-sorted after every call.
func (r *Registry[T]) Register(name string, ctor Constructor[T], priority int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := false
	if r.index(name) < 0 {
		r.entries = append(r.entries, Entry[T]{Priority: priority, Name: name, New: ctor})
		inserted = true
	} else {
		gpures.Logger().Warn("factory: duplicate registration ignored", "name", name, "priority", priority)
	}
	slices.SortFunc(r.entries, compareEntries[T])
	return inserted
}

// MustRegister is like Register but panics if name is already registered.
// Use it where a name collision between modules is a startup error.
func (r *Registry[T]) MustRegister(name string, ctor Constructor[T], priority int) {
	if !r.Register(name, ctor, priority) {
		panic(fmt.Sprintf("factory: %q already registered", name))
	}
}

// RegisterModules runs each module's registration routine in turn.
func (r *Registry[T]) RegisterModules(mods ...Module[T]) {
	for _, m := range mods {
		m(r)
	}
}

// Create invokes the constructor registered under name.
// It returns the zero T and false if name is unknown.
func (r *Registry[T]) Create(name string) (T, bool) {
	r.mu.RLock()
	i := r.index(name)
	var ctor Constructor[T]
	if i >= 0 {
		ctor = r.entries[i].New
	}
	r.mu.RUnlock()

	if ctor == nil {
		var zero T
		return zero, false
	}
	return ctor(), true
}

// CreateAt invokes the constructor at position i in sorted order.
// It returns the zero T and false if i is out of range.
func (r *Registry[T]) CreateAt(i int) (T, bool) {
	r.mu.RLock()
	var ctor Constructor[T]
	if i >= 0 && i < len(r.entries) {
		ctor = r.entries[i].New
	}
	r.mu.RUnlock()

	if ctor == nil {
		var zero T
		return zero, false
	}
	return ctor(), true
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Contains reports whether name is registered.
func (r *Registry[T]) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index(name) >= 0
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a snapshot of all entries in sorted order.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// index returns the position of name, or -1. Must be called with lock held.
func (r *Registry[T]) index(name string) int {
	return slices.IndexFunc(r.entries, func(e Entry[T]) bool { return e.Name == name })
}

func compareEntries[T any](a, b Entry[T]) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
