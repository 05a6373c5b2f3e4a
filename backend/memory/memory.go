// Package memory provides an in-process backing system for gpures.
//
// The memory backend issues sequential handles that are never reused, keeps
// track of which ones are live and counts every create and destroy call. It
// needs no GPU and is the always-available fallback of package backend, as
// well as a convenient double for tests that verify ownership behaviour.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/factory"
)

// Name is the backend identifier.
const Name = "memory"

// Priority is the registration priority used by Module. Memory sorts after
// every GPU backend.
const Priority = 100

// ErrExhausted is returned when a create call would exceed the capacity.
var ErrExhausted = errors.New("memory: handle capacity exhausted")

// Stats counts backend calls. Handle counts are per object, call counts are
// per Traits method invocation.
type Stats struct {
	CreateOne    int
	CreateBatch  int
	DestroyOne   int
	DestroyBatch int

	// Created and Destroyed count individual handles.
	Created   int
	Destroyed int

	// Stale counts destroy requests for handles that were not live.
	Stale int
}

// Calls returns the total number of Traits calls.
func (s Stats) Calls() int {
	return s.CreateOne + s.CreateBatch + s.DestroyOne + s.DestroyBatch
}

// Backend is an in-process gpures.Backend. It is safe for concurrent use.
type Backend struct {
	mu       sync.Mutex
	next     gpures.Handle
	live     map[gpures.Handle]gpures.Kind
	stats    map[gpures.Kind]*Stats
	capacity int
	closed   bool
}

// New creates an empty memory backend with unlimited capacity.
func New() *Backend {
	return &Backend{
		live:  make(map[gpures.Handle]gpures.Kind),
		stats: make(map[gpures.Kind]*Stats),
	}
}

// Module registers the memory backend with a backend registry.
func Module(r *factory.Registry[gpures.Backend]) {
	r.Register(Name, func() gpures.Backend { return New() }, Priority)
}

// Name returns "memory".
func (b *Backend) Name() string { return Name }

// Traits returns the traits for k. Every kind is supported.
func (b *Backend) Traits(k gpures.Kind) (gpures.Traits, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", gpures.ErrUnsupportedKind, k)
	}
	return &traits{b: b, kind: k}, nil
}

// SetCapacity limits the number of simultaneously live handles across all
// kinds. Zero or negative means unlimited.
func (b *Backend) SetCapacity(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.capacity = n
}

// Live returns the number of live handles of kind k.
func (b *Backend) Live(k gpures.Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, kind := range b.live {
		if kind == k {
			n++
		}
	}
	return n
}

// IsLive reports whether h is a live handle of kind k.
func (b *Backend) IsLive(k gpures.Kind, h gpures.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	kind, ok := b.live[h]
	return ok && kind == k
}

// Stats returns a copy of the call counters for kind k.
func (b *Backend) Stats(k gpures.Kind) Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return *b.statsFor(k)
}

// Close releases every handle still live and reports them as leaked.
// Subsequent create calls fail with gpures.ErrBackendClosed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if n := len(b.live); n > 0 {
		gpures.Logger().Warn("memory: handles leaked at close", "count", n)
		clear(b.live)
	}
	return nil
}

// statsFor returns the counters for k. Must be called with lock held.
func (b *Backend) statsFor(k gpures.Kind) *Stats {
	s, ok := b.stats[k]
	if !ok {
		s = &Stats{}
		b.stats[k] = s
	}
	return s
}

// issue fills dst with fresh handles. Must be called with lock held.
func (b *Backend) issue(k gpures.Kind, dst []gpures.Handle) error {
	if b.closed {
		return gpures.ErrBackendClosed
	}
	if b.capacity > 0 && len(b.live)+len(dst) > b.capacity {
		return fmt.Errorf("%w: %d live, %d requested, capacity %d",
			ErrExhausted, len(b.live), len(dst), b.capacity)
	}
	for i := range dst {
		b.next++
		dst[i] = b.next
		b.live[b.next] = k
	}
	b.statsFor(k).Created += len(dst)
	return nil
}

// retire destroys hs. Must be called with lock held.
func (b *Backend) retire(k gpures.Kind, hs []gpures.Handle) {
	s := b.statsFor(k)
	for _, h := range hs {
		if kind, ok := b.live[h]; ok && kind == k {
			delete(b.live, h)
			s.Destroyed++
			continue
		}
		if !h.IsNull() {
			s.Stale++
		}
	}
}

// traits implements gpures.Traits for one kind.
type traits struct {
	b    *Backend
	kind gpures.Kind
}

func (t *traits) Kind() gpures.Kind { return t.kind }

func (t *traits) CreateOne() (gpures.Handle, error) {
	t.b.mu.Lock()
	defer t.b.mu.Unlock()

	t.b.statsFor(t.kind).CreateOne++
	var h [1]gpures.Handle
	if err := t.b.issue(t.kind, h[:]); err != nil {
		return gpures.Null, err
	}
	return h[0], nil
}

func (t *traits) CreateBatch(dst []gpures.Handle) error {
	t.b.mu.Lock()
	defer t.b.mu.Unlock()

	t.b.statsFor(t.kind).CreateBatch++
	return t.b.issue(t.kind, dst)
}

func (t *traits) DestroyOne(h gpures.Handle) {
	t.b.mu.Lock()
	defer t.b.mu.Unlock()

	t.b.statsFor(t.kind).DestroyOne++
	t.b.retire(t.kind, []gpures.Handle{h})
}

func (t *traits) DestroyBatch(hs []gpures.Handle) {
	t.b.mu.Lock()
	defer t.b.mu.Unlock()

	t.b.statsFor(t.kind).DestroyBatch++
	t.b.retire(t.kind, hs)
}
