// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package props provides a named property store holding values of any type.
//
// Components attach auxiliary data to a shared object under a string key
// (typically the consumer's name) and read it back with the static type they
// stored. A snapshot of the store can be rendered to JSON and queried with
// gjson path syntax.
package props

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store maps names to values of arbitrary type. The zero Store is empty and
// ready to use. Store is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	m  map[string]any
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Set stores v under key, replacing any previous value.
func (s *Store) Set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]any)
	}
	s.m[key] = v
}

// Get returns the value stored under key as a T. ok is false when the key is
// absent or holds a value of another type.
func Get[T any](s *Store, key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key].(T)
	return v, ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.m[key]
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.m))
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// JSON renders the store as a JSON object with one member per key.
// Values are encoded as encoding/json would encode them. A value stored
// under the empty key has no JSON path and is left out.
func (s *Store) JSON() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := "{}"
	for _, key := range slices.Sorted(maps.Keys(s.m)) {
		if key == "" {
			continue
		}
		var err error
		doc, err = sjson.Set(doc, escape(key), s.m[key])
		if err != nil {
			return "", fmt.Errorf("props: encode %q: %w", key, err)
		}
	}
	return doc, nil
}

// Query evaluates a gjson path against the JSON snapshot of the store.
func (s *Store) Query(path string) (gjson.Result, error) {
	doc, err := s.JSON()
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.Get(doc, path), nil
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`:`, `\:`,
)

// escape turns key into a single sjson path component.
func escape(key string) string {
	return pathEscaper.Replace(key)
}
