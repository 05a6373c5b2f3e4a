// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package factory

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

type shape interface {
	Name() string
}

type circle struct{}

func (circle) Name() string { return "circle" }

type square struct{}

func (square) Name() string { return "square" }

type named string

func (n named) Name() string { return string(n) }

func ctorFor(name string) Constructor[shape] {
	return func() shape { return named(name) }
}

func TestRegisterScenario(t *testing.T) {
	r := New[shape]()
	r.Register("alpha", ctorFor("alpha"), 5)
	r.Register("beta", ctorFor("beta"), 1)
	r.Register("gamma", ctorFor("gamma"), 1)

	if got := r.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	want := []string{"beta", "gamma", "alpha"}
	for i, name := range want {
		s, ok := r.CreateAt(i)
		if !ok {
			t.Fatalf("CreateAt(%d) missed", i)
		}
		if s.Name() != name {
			t.Errorf("CreateAt(%d) = %q, want %q", i, s.Name(), name)
		}
	}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegisterOrderIndependent(t *testing.T) {
	type reg struct {
		name string
		prio int
	}
	regs := []reg{
		{"points", 3}, {"mesh", 0}, {"lines", 3}, {"sky", -2},
		{"fog", 10}, {"aabb", 0}, {"text", 3}, {"bloom", 10},
	}
	want := []string{"sky", "aabb", "mesh", "lines", "points", "text", "bloom", "fog"}

	rng := rand.New(rand.NewPCG(1, 2))
	for trial := range 50 {
		order := slices.Clone(regs)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		r := New[shape]()
		for _, e := range order {
			if !r.Register(e.name, ctorFor(e.name), e.prio) {
				t.Fatalf("trial %d: Register(%q) = false", trial, e.name)
			}
		}
		if got := r.Names(); !slices.Equal(got, want) {
			t.Fatalf("trial %d: order %v gave %v, want %v", trial, order, got, want)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New[shape]()
	if !r.Register("circle", func() shape { return circle{} }, 0) {
		t.Fatal("first Register() = false")
	}
	if r.Register("circle", func() shape { return square{} }, -5) {
		t.Error("duplicate Register() = true")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after duplicate, want 1", r.Len())
	}
	s, _ := r.Create("circle")
	if _, ok := s.(circle); !ok {
		t.Errorf("duplicate replaced constructor: got %T", s)
	}
	if e := r.Entries()[0]; e.Priority != 0 {
		t.Errorf("duplicate changed priority to %d", e.Priority)
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	r := New[shape]()
	r.MustRegister("square", func() shape { return square{} }, 0)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister(duplicate) did not panic")
		}
	}()
	r.MustRegister("square", func() shape { return square{} }, 0)
}

func TestCreateByName(t *testing.T) {
	r := New[shape]()
	r.Register("circle", func() shape { return circle{} }, 0)
	r.Register("square", func() shape { return &square{} }, 0)

	s, ok := r.Create("square")
	if !ok {
		t.Fatal("Create(square) missed")
	}
	if _, isPtr := s.(*square); !isPtr {
		t.Errorf("Create(square) dynamic type = %T, want *square", s)
	}

	s, ok = r.Create("nonexistent")
	if ok || s != nil {
		t.Errorf("Create(nonexistent) = %v, %v; want nil, false", s, ok)
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	r := New[*square]()
	r.Register("square", func() *square { return &square{} }, 0)
	a, _ := r.Create("square")
	b, _ := r.Create("square")
	if a == b {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateAtBounds(t *testing.T) {
	r := New[shape]()
	for i, name := range []string{"c", "a", "b"} {
		r.Register(name, ctorFor(name), i%2)
	}
	n := r.Len()
	for _, i := range []int{-1, n, n + 10} {
		if s, ok := r.CreateAt(i); ok || s != nil {
			t.Errorf("CreateAt(%d) = %v, %v; want nil, false", i, s, ok)
		}
	}
	for i, name := range r.Names() {
		byIndex, _ := r.CreateAt(i)
		byName, _ := r.Create(name)
		if byIndex.Name() != byName.Name() {
			t.Errorf("CreateAt(%d) = %q, Create(%q) = %q", i, byIndex.Name(), name, byName.Name())
		}
	}
}

func TestEmptyRegistry(t *testing.T) {
	var r Registry[shape]
	if r.Len() != 0 {
		t.Errorf("Len() = %d", r.Len())
	}
	if _, ok := r.CreateAt(0); ok {
		t.Error("CreateAt(0) hit on empty registry")
	}
	if r.Contains("x") {
		t.Error("Contains(x) on empty registry")
	}
}

func TestRegisterModules(t *testing.T) {
	geometry := func(r *Registry[shape]) {
		r.Register("circle", func() shape { return circle{} }, 1)
		r.Register("square", func() shape { return square{} }, 1)
	}
	debug := func(r *Registry[shape]) {
		r.Register("grid", ctorFor("grid"), 0)
	}

	a := New[shape]()
	a.RegisterModules(geometry, debug)
	b := New[shape]()
	b.RegisterModules(debug, geometry)

	if !slices.Equal(a.Names(), b.Names()) {
		t.Errorf("module order changed result: %v vs %v", a.Names(), b.Names())
	}
	if want := []string{"grid", "circle", "square"}; !slices.Equal(a.Names(), want) {
		t.Errorf("Names() = %v, want %v", a.Names(), want)
	}
}

func TestEntriesIsSnapshot(t *testing.T) {
	r := New[shape]()
	r.Register("a", ctorFor("a"), 0)
	entries := r.Entries()
	entries[0].Name = "mutated"
	if !r.Contains("a") {
		t.Error("Entries() exposed internal storage")
	}
}

func BenchmarkRegister(b *testing.B) {
	names := make([]string, 64)
	for i := range names {
		names[i] = fmt.Sprintf("module-%02d", i)
	}
	b.ReportAllocs()
	for b.Loop() {
		r := New[shape]()
		for i, name := range names {
			r.Register(name, ctorFor(name), i%4)
		}
	}
}
