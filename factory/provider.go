// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package factory

import (
	"errors"
	"sync/atomic"
)

// ErrNoProvider is the panic value of Provider.Get before Install.
var ErrNoProvider = errors.New("factory: context provider not installed")

// Provider is a single slot holding a function that returns an
// application-owned context. The function is invoked on every Get; results
// are never cached.
//
// The zero Provider is empty and ready to use.
type Provider[C any] struct {
	fn atomic.Pointer[func() C]
}

// Install sets the provider function, replacing any previous one.
// A nil fn empties the slot.
func (p *Provider[C]) Install(fn func() C) {
	if fn == nil {
		p.fn.Store(nil)
		return
	}
	p.fn.Store(&fn)
}

// Installed reports whether a provider function is set.
func (p *Provider[C]) Installed() bool {
	return p.fn.Load() != nil
}

// Lookup invokes the provider and returns its result, or the zero C and
// false if none is installed.
func (p *Provider[C]) Lookup() (C, bool) {
	fn := p.fn.Load()
	if fn == nil {
		var zero C
		return zero, false
	}
	return (*fn)(), true
}

// Get invokes the provider and returns its result.
// It panics with ErrNoProvider if none is installed: constructors that
// depend on the context must not run before Install.
func (p *Provider[C]) Get() C {
	c, ok := p.Lookup()
	if !ok {
		panic(ErrNoProvider)
	}
	return c
}

// Adapt turns a context-consuming constructor into a Constructor that reads
// the context from p each time it runs.
func Adapt[T, C any](p *Provider[C], ctor func(C) T) Constructor[T] {
	return func() T {
		return ctor(p.Get())
	}
}
