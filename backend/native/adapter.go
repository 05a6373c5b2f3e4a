// Package native provides a Pure Go WebGPU backing system for gpures using
// gogpu/wgpu/hal.
//
// WebGPU objects are Go values rather than integer names, so the backend
// keeps a handle table mapping each issued gpures.Handle to its hal object.
// Handles start at 1 and are never reused. Buffers, textures, renderbuffers
// (render-attachment textures) and samplers are supported; the descriptors
// used for each kind are configurable with options.
package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpures"
	"github.com/gogpu/wgpu/hal"
)

// Name is the backend identifier.
const Name = "native"

// Priority is the registration priority used by Module. Native is preferred
// over every other backend.
const Priority = 10

// entry is one live hal object. view is the lazily created default view of
// a texture or renderbuffer.
type entry struct {
	kind gpures.Kind
	obj  any
	view hal.TextureView
}

// kindOps creates and destroys hal objects of one kind.
type kindOps struct {
	create  func(label string) (any, error)
	destroy func(e entry)
}

// Backend is a gpures.Backend over a hal.Device.
//
// Thread Safety: Backend is safe for concurrent use from multiple goroutines.
// Handle table updates are protected by a mutex.
type Backend struct {
	device hal.Device
	cfg    config
	ops    map[gpures.Kind]kindOps

	mu      sync.Mutex
	next    gpures.Handle
	objects map[gpures.Handle]entry
	closed  bool
}

// New creates a backend that allocates objects on device. The device stays
// owned by the caller and is not destroyed by Close.
func New(device hal.Device, opts ...Option) (*Backend, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Backend{
		device:  device,
		cfg:     cfg,
		objects: make(map[gpures.Handle]entry),
	}
	b.ops = map[gpures.Kind]kindOps{
		gpures.KindBuffer: {
			create: func(label string) (any, error) {
				desc := b.cfg.buffer
				desc.Label = label
				return b.device.CreateBuffer(&desc)
			},
			destroy: func(e entry) { b.device.DestroyBuffer(e.obj.(hal.Buffer)) },
		},
		gpures.KindTexture: {
			create: func(label string) (any, error) {
				desc := b.cfg.texture
				desc.Label = label
				return b.device.CreateTexture(&desc)
			},
			destroy: b.destroyTexture,
		},
		gpures.KindRenderbuffer: {
			create: func(label string) (any, error) {
				desc := b.cfg.renderbuffer
				desc.Label = label
				return b.device.CreateTexture(&desc)
			},
			destroy: b.destroyTexture,
		},
		gpures.KindSampler: {
			create: func(label string) (any, error) {
				desc := b.cfg.sampler
				desc.Label = label
				return b.device.CreateSampler(&desc)
			},
			destroy: func(e entry) { b.device.DestroySampler(e.obj.(hal.Sampler)) },
		},
	}
	return b, nil
}

// Name returns "native".
func (b *Backend) Name() string { return Name }

// Traits returns the traits for k, or an error wrapping
// gpures.ErrUnsupportedKind for kinds WebGPU has no standalone object for.
func (b *Backend) Traits(k gpures.Kind) (gpures.Traits, error) {
	ops, ok := b.ops[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gpures.ErrUnsupportedKind, k)
	}
	return &traits{b: b, kind: k, ops: ops}, nil
}

// Device returns the underlying hal device.
func (b *Backend) Device() hal.Device { return b.device }

// Buffer returns the hal buffer behind h.
func (b *Backend) Buffer(h gpures.Handle) (hal.Buffer, bool) {
	obj, ok := b.lookup(gpures.KindBuffer, h)
	if !ok {
		return nil, false
	}
	return obj.(hal.Buffer), true
}

// Texture returns the hal texture behind a texture or renderbuffer handle.
func (b *Backend) Texture(h gpures.Handle) (hal.Texture, bool) {
	obj, ok := b.lookup(gpures.KindTexture, h)
	if !ok {
		obj, ok = b.lookup(gpures.KindRenderbuffer, h)
	}
	if !ok {
		return nil, false
	}
	return obj.(hal.Texture), true
}

// Sampler returns the hal sampler behind h.
func (b *Backend) Sampler(h gpures.Handle) (hal.Sampler, bool) {
	obj, ok := b.lookup(gpures.KindSampler, h)
	if !ok {
		return nil, false
	}
	return obj.(hal.Sampler), true
}

// View returns the default view of a texture or renderbuffer, creating it on
// first use. The view is destroyed together with its texture.
func (b *Backend) View(h gpures.Handle) (hal.TextureView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.objects[h]
	if !ok || (e.kind != gpures.KindTexture && e.kind != gpures.KindRenderbuffer) {
		return nil, fmt.Errorf("native: no texture for handle %d", h)
	}
	if e.view != nil {
		return e.view, nil
	}
	view, err := b.device.CreateTextureView(e.obj.(hal.Texture), &hal.TextureViewDescriptor{
		Label: fmt.Sprintf("gpures_%s_%d_view", e.kind, h),
	})
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}
	e.view = view
	b.objects[h] = e
	return view, nil
}

func (b *Backend) destroyTexture(e entry) {
	if e.view != nil {
		b.device.DestroyTextureView(e.view)
	}
	b.device.DestroyTexture(e.obj.(hal.Texture))
}

// Len returns the number of live objects in the handle table.
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

// Close destroys every object still in the handle table, logging them as
// leaked. Further creates fail with gpures.ErrBackendClosed.
func (b *Backend) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	leaked := b.objects
	b.objects = make(map[gpures.Handle]entry)
	b.mu.Unlock()

	if len(leaked) > 0 {
		gpures.Logger().Warn("native: objects leaked at close", "count", len(leaked))
	}
	for _, e := range leaked {
		b.ops[e.kind].destroy(e)
	}
	return nil
}

func (b *Backend) lookup(k gpures.Kind, h gpures.Handle) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.objects[h]
	if !ok || e.kind != k {
		return nil, false
	}
	return e.obj, true
}

// reserve allocates the next handle. The handle is only recorded by commit.
func (b *Backend) reserve() (gpures.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return gpures.Null, gpures.ErrBackendClosed
	}
	b.next++
	return b.next, nil
}

func (b *Backend) commit(h gpures.Handle, e entry) {
	b.mu.Lock()
	b.objects[h] = e
	b.mu.Unlock()
}

// take removes h from the table if it holds an object of kind k.
func (b *Backend) take(k gpures.Kind, h gpures.Handle) (entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.objects[h]
	if !ok || e.kind != k {
		return entry{}, false
	}
	delete(b.objects, h)
	return e, true
}

// traits implements gpures.Traits for one kind.
type traits struct {
	b    *Backend
	kind gpures.Kind
	ops  kindOps
}

func (t *traits) Kind() gpures.Kind { return t.kind }

func (t *traits) CreateOne() (gpures.Handle, error) {
	h, err := t.b.reserve()
	if err != nil {
		return gpures.Null, err
	}
	obj, err := t.ops.create(fmt.Sprintf("gpures_%s_%d", t.kind, h))
	if err != nil {
		return gpures.Null, fmt.Errorf("create %s: %w", t.kind, err)
	}
	t.b.commit(h, entry{kind: t.kind, obj: obj})
	return h, nil
}

// CreateBatch creates objects one at a time; WebGPU has no batch entry
// points. On failure the already filled slots are left for the caller.
func (t *traits) CreateBatch(dst []gpures.Handle) error {
	for i := range dst {
		h, err := t.CreateOne()
		if err != nil {
			return err
		}
		dst[i] = h
	}
	return nil
}

func (t *traits) DestroyOne(h gpures.Handle) {
	e, ok := t.b.take(t.kind, h)
	if !ok {
		gpures.Logger().Debug("native: destroy of unknown handle", "kind", t.kind, "handle", h)
		return
	}
	t.ops.destroy(e)
}

func (t *traits) DestroyBatch(hs []gpures.Handle) {
	for _, h := range hs {
		t.DestroyOne(h)
	}
}
