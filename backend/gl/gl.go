package gl

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/factory"
)

// Name is the backend identifier.
const Name = "gl"

// Priority is the registration priority used by Module.
const Priority = 20

// Option configures Open.
type Option func(*config)

type config struct {
	procAddress ProcAddressFunc
	libraries   []string
}

// WithProcAddress resolves entry points through fn instead of loading a
// system library. Use the windowing library's loader (e.g., glfw.GetProcAddress).
func WithProcAddress(fn ProcAddressFunc) Option {
	return func(c *config) { c.procAddress = fn }
}

// WithLibrary overrides the candidate library paths tried by Open.
func WithLibrary(paths ...string) Option {
	return func(c *config) { c.libraries = paths }
}

// Backend is an OpenGL gpures.Backend.
type Backend struct {
	procs  *procs
	closed atomic.Bool
}

// Open loads OpenGL and binds the entry points gpures needs.
// A current context is not required to open, only to create objects.
func Open(opts ...Option) (*Backend, error) {
	cfg := config{libraries: defaultLibraries()}
	for _, opt := range opts {
		opt(&cfg)
	}

	lookup := cfg.procAddress
	if lookup == nil {
		var err error
		if lookup, err = openLibrary(cfg.libraries); err != nil {
			return nil, err
		}
	}

	p, err := bind(lookup)
	if err != nil {
		return nil, err
	}
	return newBackend(p), nil
}

func newBackend(p *procs) *Backend {
	return &Backend{procs: p}
}

// Module registers the OpenGL backend with a backend registry. The
// constructor yields nil when OpenGL cannot be loaded.
func Module(r *factory.Registry[gpures.Backend]) {
	r.Register(Name, func() gpures.Backend {
		b, err := Open()
		if err != nil {
			gpures.Logger().Warn("gl: backend unavailable", "err", err)
			return nil
		}
		return b
	}, Priority)
}

// Name returns "gl".
func (b *Backend) Name() string { return Name }

// Traits returns the traits for k. Every kind is supported; shader traits
// refuse to create and must be used with adopted handles.
func (b *Backend) Traits(k gpures.Kind) (gpures.Traits, error) {
	switch k {
	case gpures.KindProgram:
		return &programTraits{b: b}, nil
	case gpures.KindShader:
		return &shaderTraits{b: b}, nil
	}
	if _, ok := batchEntries[k]; !ok {
		return nil, fmt.Errorf("%w: %s", gpures.ErrUnsupportedKind, k)
	}
	return &batchTraits{b: b, kind: k}, nil
}

// Close marks the backend closed. GL objects are owned by the context, not
// by the backend, so nothing is released here.
func (b *Backend) Close() error {
	b.closed.Store(true)
	return nil
}

func (b *Backend) usable() error {
	if b.closed.Load() {
		return gpures.ErrBackendClosed
	}
	return nil
}

func namesPtr(hs []gpures.Handle) *uint32 {
	// gpures.Handle has uint32 as its underlying type.
	return (*uint32)(unsafe.Pointer(unsafe.SliceData(hs)))
}

// batchTraits serves kinds with glGen*/glDelete* entry points.
type batchTraits struct {
	b    *Backend
	kind gpures.Kind
}

func (t *batchTraits) Kind() gpures.Kind { return t.kind }

func (t *batchTraits) CreateOne() (gpures.Handle, error) {
	var h [1]gpures.Handle
	if err := t.CreateBatch(h[:]); err != nil {
		return gpures.Null, err
	}
	return h[0], nil
}

func (t *batchTraits) CreateBatch(dst []gpures.Handle) error {
	if err := t.b.usable(); err != nil {
		return err
	}
	p := t.b.procs
	p.drainErrors()
	p.gen[t.kind](int32(len(dst)), namesPtr(dst))
	return p.check(batchEntries[t.kind].gen)
}

func (t *batchTraits) DestroyOne(h gpures.Handle) {
	t.DestroyBatch([]gpures.Handle{h})
}

func (t *batchTraits) DestroyBatch(hs []gpures.Handle) {
	t.b.procs.del[t.kind](int32(len(hs)), namesPtr(hs))
}

// programTraits serves program objects, which have no batch entry points.
type programTraits struct {
	b *Backend
}

func (t *programTraits) Kind() gpures.Kind { return gpures.KindProgram }

func (t *programTraits) CreateOne() (gpures.Handle, error) {
	if err := t.b.usable(); err != nil {
		return gpures.Null, err
	}
	p := t.b.procs
	p.drainErrors()
	h := gpures.Handle(p.createProgram())
	if err := p.check("glCreateProgram"); err != nil {
		return gpures.Null, err
	}
	if h.IsNull() {
		return gpures.Null, &Error{Op: "glCreateProgram", Code: NoError}
	}
	return h, nil
}

func (t *programTraits) CreateBatch(dst []gpures.Handle) error {
	for i := range dst {
		h, err := t.CreateOne()
		if err != nil {
			return err
		}
		dst[i] = h
	}
	return nil
}

func (t *programTraits) DestroyOne(h gpures.Handle) {
	t.b.procs.deleteProgram(uint32(h))
}

func (t *programTraits) DestroyBatch(hs []gpures.Handle) {
	for _, h := range hs {
		t.DestroyOne(h)
	}
}

// shaderTraits serves adopted shader objects.
type shaderTraits struct {
	b *Backend
}

func (t *shaderTraits) Kind() gpures.Kind { return gpures.KindShader }

func (t *shaderTraits) CreateOne() (gpures.Handle, error) {
	return gpures.Null, gpures.ErrAdoptOnly
}

func (t *shaderTraits) CreateBatch([]gpures.Handle) error {
	return gpures.ErrAdoptOnly
}

func (t *shaderTraits) DestroyOne(h gpures.Handle) {
	t.b.procs.deleteShader(uint32(h))
}

func (t *shaderTraits) DestroyBatch(hs []gpures.Handle) {
	for _, h := range hs {
		t.DestroyOne(h)
	}
}
