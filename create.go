package gpures

import "fmt"

// Create creates n objects of kind k on backend b.
func Create(b Backend, k Kind, n int) (*Set, error) {
	t, err := b.Traits(k)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", b.Name(), err)
	}
	return NewSet(t, n)
}

// CreateObject creates a single object of kind k on backend b.
func CreateObject(b Backend, k Kind) (*Object, error) {
	t, err := b.Traits(k)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", b.Name(), err)
	}
	return NewObject(t)
}

// Adopt wraps an existing handle of kind k issued by backend b.
func Adopt(b Backend, k Kind, h Handle) (*Object, error) {
	t, err := b.Traits(k)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", b.Name(), err)
	}
	return AdoptObject(t, h), nil
}

// NewProgram creates a shader program object.
func NewProgram(b Backend) (*Object, error) { return CreateObject(b, KindProgram) }

// AdoptShader takes ownership of a shader object created elsewhere.
// Shader objects need a stage at creation time and cannot be created here.
func AdoptShader(b Backend, h Handle) (*Object, error) { return Adopt(b, KindShader, h) }

// NewBuffer creates a single buffer object.
func NewBuffer(b Backend) (*Object, error) { return CreateObject(b, KindBuffer) }

// NewBuffers creates n buffer objects in one batch.
func NewBuffers(b Backend, n int) (*Set, error) { return Create(b, KindBuffer, n) }

// NewTexture creates a single texture object.
func NewTexture(b Backend) (*Object, error) { return CreateObject(b, KindTexture) }

// NewTextures creates n texture objects in one batch.
func NewTextures(b Backend, n int) (*Set, error) { return Create(b, KindTexture, n) }

// NewFramebuffer creates a single framebuffer object.
func NewFramebuffer(b Backend) (*Object, error) { return CreateObject(b, KindFramebuffer) }

// NewFramebuffers creates n framebuffer objects in one batch.
func NewFramebuffers(b Backend, n int) (*Set, error) { return Create(b, KindFramebuffer, n) }

// NewRenderbuffer creates a single renderbuffer object.
func NewRenderbuffer(b Backend) (*Object, error) { return CreateObject(b, KindRenderbuffer) }

// NewRenderbuffers creates n renderbuffer objects in one batch.
func NewRenderbuffers(b Backend, n int) (*Set, error) { return Create(b, KindRenderbuffer, n) }

// NewVertexArray creates a single vertex array object.
func NewVertexArray(b Backend) (*Object, error) { return CreateObject(b, KindVertexArray) }

// NewVertexArrays creates n vertex array objects in one batch.
func NewVertexArrays(b Backend, n int) (*Set, error) { return Create(b, KindVertexArray, n) }

// NewSampler creates a single sampler object.
func NewSampler(b Backend) (*Object, error) { return CreateObject(b, KindSampler) }

// NewSamplers creates n sampler objects in one batch.
func NewSamplers(b Backend, n int) (*Set, error) { return Create(b, KindSampler, n) }
