package gpures

import (
	"errors"
	"testing"
)

func TestNewObject(t *testing.T) {
	tr := newCountingTraits(KindProgram)
	o, err := NewObject(tr)
	if err != nil {
		t.Fatalf("NewObject() error = %v", err)
	}
	if !o.Valid() {
		t.Error("Valid() = false after create")
	}
	if tr.createOne != 1 || tr.createBatch != 0 {
		t.Errorf("createOne=%d createBatch=%d, want 1/0", tr.createOne, tr.createBatch)
	}
	o.Destroy()
	o.Destroy()
	if tr.destroyOne != 1 {
		t.Errorf("destroyOne = %d, want 1", tr.destroyOne)
	}
	if o.Valid() {
		t.Error("Valid() = true after Destroy")
	}
}

func TestNewObjectFailure(t *testing.T) {
	tr := newCountingTraits(KindProgram)
	tr.failAt = 0
	o, err := NewObject(tr)
	if !errors.Is(err, errInjected) {
		t.Fatalf("NewObject() error = %v, want injected", err)
	}
	if o != nil {
		t.Error("NewObject() returned an object on failure")
	}
}

func TestObjectMoveLeavesSourceInert(t *testing.T) {
	tr := newCountingTraits(KindTexture)
	src, _ := NewObject(tr)
	h := src.Handle()

	dst := src.Move()
	if src.Valid() {
		t.Error("source Valid() = true after Move")
	}
	if !dst.Is(h) {
		t.Errorf("dst handle = %d, want %d", dst.Handle(), h)
	}

	src.Destroy()
	if tr.destroyOne != 0 {
		t.Error("destroying moved-from object issued a destroy call")
	}
	dst.Destroy()
	if tr.destroyOne != 1 {
		t.Errorf("destroyOne = %d, want 1", tr.destroyOne)
	}
}

func TestObjectMoveFrom(t *testing.T) {
	tr := newCountingTraits(KindBuffer)
	a, _ := NewObject(tr)
	b, _ := NewObject(tr)
	old, moved := a.Handle(), b.Handle()

	if err := a.MoveFrom(b); err != nil {
		t.Fatal(err)
	}
	if tr.live[old] {
		t.Error("destination's previous handle was not destroyed")
	}
	if !a.Is(moved) || b.Valid() {
		t.Errorf("a=%v b=%v after MoveFrom", a, b)
	}

	before := tr.calls()
	if err := a.MoveFrom(a); err != nil {
		t.Fatal(err)
	}
	if tr.calls() != before || !a.Is(moved) {
		t.Error("self MoveFrom was not a no-op")
	}

	other, _ := NewObject(newCountingTraits(KindSampler))
	if err := a.MoveFrom(other); !errors.Is(err, ErrMismatch) {
		t.Errorf("MoveFrom(kind mismatch) error = %v", err)
	}
}

func TestObjectReleaseAdoptRoundTrip(t *testing.T) {
	tr := newCountingTraits(KindRenderbuffer)
	o, _ := NewObject(tr)
	before := tr.calls()

	h := o.Release()
	if o.Valid() {
		t.Error("Valid() = true after Release")
	}
	o.Destroy()

	adopted := AdoptObject(tr, h)
	if tr.calls() != before {
		t.Errorf("Release/Adopt issued %d backend calls", tr.calls()-before)
	}
	if !adopted.Valid() || !adopted.Is(h) {
		t.Errorf("adopted = %v, want handle %d", adopted, h)
	}
	if !tr.live[h] {
		t.Error("released handle was destroyed")
	}

	adopted.Destroy()
	if tr.live[h] {
		t.Error("adopted handle not destroyed")
	}
}

func TestObjectReset(t *testing.T) {
	tr := newCountingTraits(KindTexture)
	o, _ := NewObject(tr)
	first := o.Handle()
	spare, _ := tr.CreateOne()

	o.Reset(spare)
	if tr.live[first] {
		t.Error("Reset did not destroy the previous handle")
	}
	if !o.Is(spare) {
		t.Errorf("handle = %d, want %d", o.Handle(), spare)
	}

	o.Reset(Null)
	if o.Valid() || tr.live[spare] {
		t.Error("Reset(Null) did not destroy and clear")
	}

	before := tr.calls()
	o.Reset(Null)
	if tr.calls() != before {
		t.Error("Reset on empty object issued backend calls")
	}
}

func TestObjectSwapAndEqual(t *testing.T) {
	tr := newCountingTraits(KindSampler)
	a, _ := NewObject(tr)
	b, _ := NewObject(tr)
	ah, bh := a.Handle(), b.Handle()
	before := tr.calls()

	if err := a.Swap(b); err != nil {
		t.Fatal(err)
	}
	if tr.calls() != before {
		t.Error("Swap issued backend calls")
	}
	if !a.Is(bh) || !b.Is(ah) {
		t.Errorf("after Swap a=%v b=%v", a, b)
	}
	if a.Equal(b) {
		t.Error("distinct objects compare equal")
	}
	if !a.Equal(AdoptObject(tr, bh)) {
		t.Error("objects with the same handle value compare unequal")
	}

	if err := a.Swap(AdoptObject(newCountingTraits(KindBuffer), 9)); !errors.Is(err, ErrMismatch) {
		t.Errorf("Swap(kind mismatch) error = %v", err)
	}
}

func TestObjectString(t *testing.T) {
	o := AdoptObject(newCountingTraits(KindTexture), 7)
	if got := o.String(); got != "texture(7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestObjectResetSameHandle(t *testing.T) {
	tr := newCountingTraits(KindTexture)
	o, _ := NewObject(tr)
	h := o.Handle()

	before := tr.calls()
	o.Reset(h)
	if tr.calls() != before {
		t.Error("Reset to the owned handle issued backend calls")
	}
	if !o.Is(h) || !tr.live[h] {
		t.Fatal("Reset to the owned handle lost it")
	}
	o.Destroy()
	if tr.destroyed != 1 || tr.destroyOne != 1 {
		t.Errorf("destroyed = %d in %d calls, want 1 in 1", tr.destroyed, tr.destroyOne)
	}
}

func TestObjectAcrossBackends(t *testing.T) {
	a := newCountingTraits(KindBuffer)
	b := newCountingTraits(KindBuffer)
	b.issue() // handle numbers differ between the two backends

	dst, _ := NewObject(a)
	src, _ := NewObject(b)
	if err := dst.MoveFrom(src); err != nil {
		t.Fatalf("MoveFrom: %v", err)
	}
	dst.Destroy()
	if len(a.live) != 0 || len(b.live) != 1 {
		t.Errorf("after MoveFrom+Destroy live a=%d b=%d, want 0/1 (b's padding only)", len(a.live), len(b.live))
	}

	x, _ := NewObject(a)
	y, _ := NewObject(b)
	if err := x.Swap(y); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	x.Destroy()
	y.Destroy()
	if len(a.live) != 0 || len(b.live) != 1 {
		t.Errorf("after Swap+Destroy live a=%d b=%d, want 0/1", len(a.live), len(b.live))
	}
}
