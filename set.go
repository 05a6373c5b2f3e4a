package gpures

import (
	"fmt"
	"slices"
)

// Set owns a fixed number of handles of a single kind.
//
// All handles are acquired together when the set is created and released
// together by Destroy. A Set must not be copied; use Move or MoveFrom to
// transfer ownership. The zero Set owns nothing and Destroy on it is a no-op.
type Set struct {
	traits  Traits
	handles []Handle
}

// NewSet creates n objects through t and returns a set owning them.
//
// A single backend call is made: CreateOne when n == 1, CreateBatch
// otherwise. If the backend fails, or reports success while leaving Null
// slots, every object it did create is destroyed and the error is returned;
// no partially populated set escapes.
func NewSet(t Traits, n int) (*Set, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	handles := make([]Handle, n)
	if err := acquire(t, handles); err != nil {
		return nil, err
	}
	Logger().Debug("gpures: created", "kind", t.Kind(), "count", n)
	return &Set{traits: t, handles: handles}, nil
}

// acquire fills dst with live handles or leaves it all-Null.
func acquire(t Traits, dst []Handle) error {
	if len(dst) == 1 {
		h, err := t.CreateOne()
		if err == nil && h.IsNull() {
			err = ErrNullHandle
		}
		if err != nil {
			if !h.IsNull() {
				t.DestroyOne(h)
			}
			return fmt.Errorf("create %s: %w", t.Kind(), err)
		}
		dst[0] = h
		return nil
	}

	err := t.CreateBatch(dst)
	if err == nil && !slices.Contains(dst, Null) {
		return nil
	}
	if err == nil {
		err = ErrNullHandle
	}
	discard(t, dst)
	return fmt.Errorf("create %d %s: %w", len(dst), t.Kind(), err)
}

// discard destroys whatever live handles a failed batch left behind.
func discard(t Traits, hs []Handle) {
	live := slices.DeleteFunc(slices.Clone(hs), Handle.IsNull)
	switch len(live) {
	case 0:
	case 1:
		t.DestroyOne(live[0])
	default:
		t.DestroyBatch(live)
	}
	clear(hs)
}

// release issues exactly one destroy call for hs and nulls every slot.
func release(t Traits, hs []Handle) {
	if len(hs) == 1 {
		t.DestroyOne(hs[0])
	} else {
		t.DestroyBatch(hs)
	}
	clear(hs)
}

// Kind returns the kind of the owned handles.
func (s *Set) Kind() Kind {
	return s.traits.Kind()
}

// Len returns the number of slots, live or not.
func (s *Set) Len() int {
	return len(s.handles)
}

// At returns the handle in slot i.
func (s *Set) At(i int) Handle {
	return s.handles[i]
}

// Handles returns a copy of all slots.
func (s *Set) Handles() []Handle {
	return slices.Clone(s.handles)
}

// Live reports whether the set currently owns its handles.
func (s *Set) Live() bool {
	return s != nil && len(s.handles) > 0 && !s.handles[0].IsNull()
}

// Destroy releases all owned handles in one backend call.
// It is safe to call Destroy more than once; later calls do nothing.
func (s *Set) Destroy() {
	if !s.Live() {
		return
	}
	release(s.traits, s.handles)
	Logger().Debug("gpures: destroyed", "kind", s.traits.Kind(), "count", len(s.handles))
}

// Move transfers ownership to a new Set and leaves s holding Null handles.
func (s *Set) Move() *Set {
	dst := &Set{traits: s.traits, handles: slices.Clone(s.handles)}
	clear(s.handles)
	return dst
}

// MoveFrom destroys the handles s owns, then takes ownership of src's
// handles and backend, leaving src holding Null. Moving a set into itself
// does nothing.
func (s *Set) MoveFrom(src *Set) error {
	if s == src {
		return nil
	}
	if !s.compatible(src) {
		return fmt.Errorf("%w: move %s[%d] into %s[%d]",
			ErrMismatch, src.Kind(), src.Len(), s.Kind(), s.Len())
	}
	s.Destroy()
	s.traits = src.traits
	copy(s.handles, src.handles)
	clear(src.handles)
	return nil
}

// Swap exchanges owned handles, and the backends they belong to, with other
// without any backend calls.
func (s *Set) Swap(other *Set) error {
	if s == other {
		return nil
	}
	if !s.compatible(other) {
		return fmt.Errorf("%w: swap %s[%d] with %s[%d]",
			ErrMismatch, s.Kind(), s.Len(), other.Kind(), other.Len())
	}
	s.traits, other.traits = other.traits, s.traits
	for i := range s.handles {
		s.handles[i], other.handles[i] = other.handles[i], s.handles[i]
	}
	return nil
}

// Equal reports whether both sets hold the same handle values.
// This is identity comparison and says nothing about ownership.
func (s *Set) Equal(other *Set) bool {
	return slices.Equal(s.handles, other.handles)
}

// String returns a short description such as "buffer[1 2 3]".
func (s *Set) String() string {
	return fmt.Sprintf("%s%v", s.Kind(), s.handles)
}

func (s *Set) compatible(other *Set) bool {
	return s.traits.Kind() == other.traits.Kind() && len(s.handles) == len(other.handles)
}
