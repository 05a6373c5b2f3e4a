package gpures

import "errors"

var errInjected = errors.New("injected failure")

// countingTraits is a backing-system double that hands out sequential
// handles and counts every call.
type countingTraits struct {
	kind Kind
	next Handle
	live map[Handle]bool

	createOne    int
	createBatch  int
	destroyOne   int
	destroyBatch int
	destroyed    int

	// failAt makes create calls fail after filling failAt slots (-1 disables).
	failAt int
	// leaveNull makes create calls report success while leaving the last slot Null.
	leaveNull bool
}

func newCountingTraits(k Kind) *countingTraits {
	return &countingTraits{kind: k, live: make(map[Handle]bool), failAt: -1}
}

func (c *countingTraits) Kind() Kind { return c.kind }

func (c *countingTraits) issue() Handle {
	c.next++
	c.live[c.next] = true
	return c.next
}

func (c *countingTraits) CreateOne() (Handle, error) {
	c.createOne++
	if c.failAt == 0 {
		return Null, errInjected
	}
	if c.leaveNull {
		return Null, nil
	}
	return c.issue(), nil
}

func (c *countingTraits) CreateBatch(dst []Handle) error {
	c.createBatch++
	for i := range dst {
		if c.failAt >= 0 && i == c.failAt {
			return errInjected
		}
		if c.leaveNull && i == len(dst)-1 {
			continue
		}
		dst[i] = c.issue()
	}
	return nil
}

func (c *countingTraits) DestroyOne(h Handle) {
	c.destroyOne++
	c.forget(h)
}

func (c *countingTraits) DestroyBatch(hs []Handle) {
	c.destroyBatch++
	for _, h := range hs {
		c.forget(h)
	}
}

func (c *countingTraits) forget(h Handle) {
	if c.live[h] {
		delete(c.live, h)
		c.destroyed++
	}
}

func (c *countingTraits) calls() int {
	return c.createOne + c.createBatch + c.destroyOne + c.destroyBatch
}

// countingBackend serves one countingTraits per kind.
type countingBackend struct {
	traits map[Kind]*countingTraits
}

func newCountingBackend() *countingBackend {
	return &countingBackend{traits: make(map[Kind]*countingTraits)}
}

func (b *countingBackend) Name() string { return "counting" }

func (b *countingBackend) Traits(k Kind) (Traits, error) {
	if k == KindShader {
		return nil, ErrUnsupportedKind
	}
	t, ok := b.traits[k]
	if !ok {
		t = newCountingTraits(k)
		b.traits[k] = t
	}
	return t, nil
}

func (b *countingBackend) Close() error { return nil }
