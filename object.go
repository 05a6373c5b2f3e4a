package gpures

import "fmt"

// Object owns at most one handle of a single kind.
//
// Object adds the single-handle operations a Set cannot offer: adopting an
// existing handle, Release, Reset and the boolean Valid check.
type Object struct {
	traits Traits
	handle Handle
}

// NewObject creates one object through t.
func NewObject(t Traits) (*Object, error) {
	var h [1]Handle
	if err := acquire(t, h[:]); err != nil {
		return nil, err
	}
	Logger().Debug("gpures: created", "kind", t.Kind(), "handle", h[0])
	return &Object{traits: t, handle: h[0]}, nil
}

// AdoptObject wraps a handle obtained elsewhere. Ownership transfers
// immediately: destroying the Object destroys h.
func AdoptObject(t Traits, h Handle) *Object {
	if !h.IsNull() {
		Logger().Debug("gpures: adopted", "kind", t.Kind(), "handle", h)
	}
	return &Object{traits: t, handle: h}
}

// Kind returns the kind of the owned handle.
func (o *Object) Kind() Kind { return o.traits.Kind() }

// Handle returns the owned handle, or Null.
func (o *Object) Handle() Handle { return o.handle }

// Valid reports whether o owns a non-Null handle.
func (o *Object) Valid() bool { return o != nil && !o.handle.IsNull() }

// Is reports whether o holds the handle value h.
func (o *Object) Is(h Handle) bool { return o.handle == h }

// Equal reports whether both objects hold the same handle value.
// This is identity comparison and says nothing about ownership.
func (o *Object) Equal(other *Object) bool { return o.handle == other.handle }

// Release stops tracking the handle and returns it. The caller becomes
// responsible for destroying it; destroying o afterwards does nothing.
func (o *Object) Release() Handle {
	h := o.handle
	o.handle = Null
	return h
}

// Reset destroys the owned handle, if any, and takes ownership of h.
// Pass Null to simply destroy. Resetting to the handle already owned does
// nothing.
func (o *Object) Reset(h Handle) {
	if h == o.handle {
		return
	}
	o.Destroy()
	o.handle = h
}

// Destroy releases the owned handle. It is safe to call more than once.
func (o *Object) Destroy() {
	if !o.Valid() {
		return
	}
	o.traits.DestroyOne(o.handle)
	Logger().Debug("gpures: destroyed", "kind", o.traits.Kind(), "handle", o.handle)
	o.handle = Null
}

// Move transfers ownership to a new Object and leaves o holding Null.
func (o *Object) Move() *Object {
	dst := &Object{traits: o.traits, handle: o.handle}
	o.handle = Null
	return dst
}

// MoveFrom destroys the handle o owns, then takes ownership of src's
// handle and backend, leaving src holding Null. Moving an object into itself
// does nothing.
func (o *Object) MoveFrom(src *Object) error {
	if o == src {
		return nil
	}
	if o.Kind() != src.Kind() {
		return fmt.Errorf("%w: move %s into %s", ErrMismatch, src.Kind(), o.Kind())
	}
	o.Destroy()
	o.traits = src.traits
	o.handle = src.handle
	src.handle = Null
	return nil
}

// Swap exchanges owned handles, and the backends they belong to, with other
// without any backend calls.
func (o *Object) Swap(other *Object) error {
	if o.Kind() != other.Kind() {
		return fmt.Errorf("%w: swap %s with %s", ErrMismatch, o.Kind(), other.Kind())
	}
	o.traits, other.traits = other.traits, o.traits
	o.handle, other.handle = other.handle, o.handle
	return nil
}

// String returns a short description such as "texture(7)".
func (o *Object) String() string {
	return fmt.Sprintf("%s(%d)", o.Kind(), o.handle)
}
