// Package binding assigns global buffer binding points by name.
//
// Shaders that share a uniform or storage block by name must agree on the
// binding index it is bound to. Points hands out indexes in first-request
// order and returns the same index for a name on every later request.
// Uniform and storage blocks live in separate index spaces, so an
// application keeps one Points for each (see Spaces).
package binding

import (
	"cmp"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/gpures"
)

// Points maps block names to binding indexes. The zero Points is empty and
// ready to use; indexes start at 0. Points is safe for concurrent use.
type Points struct {
	mu     sync.Mutex
	points map[string]uint32
	next   uint32
}

// Point returns the binding index for name, assigning the next free one
// on first use.
func (p *Points) Point(name string) uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx, ok := p.points[name]; ok {
		return idx
	}
	if p.points == nil {
		p.points = make(map[string]uint32)
	}
	idx := p.next
	p.points[name] = idx
	p.next++
	gpures.Logger().Debug("binding: assigned", "name", name, "point", idx)
	return idx
}

// Lookup returns the index assigned to name without assigning one.
func (p *Points) Lookup(name string) (uint32, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx, ok := p.points[name]
	return idx, ok
}

// Len returns the number of assigned points.
func (p *Points) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.points)
}

// Names returns the assigned names in binding order.
func (p *Points) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.SortedFunc(maps.Keys(p.points), func(a, b string) int {
		return cmp.Compare(p.points[a], p.points[b])
	})
}

// Spaces holds the two binding index spaces an application shares between
// its shaders.
type Spaces struct {
	Uniform Points
	Storage Points
}
