package native

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// config holds the descriptors used for each kind. Labels are overwritten
// per object.
type config struct {
	buffer       hal.BufferDescriptor
	texture      hal.TextureDescriptor
	renderbuffer hal.TextureDescriptor
	sampler      hal.SamplerDescriptor
}

// Default descriptor parameters.
const (
	// DefaultBufferSize is the size in bytes of buffers created without
	// WithBufferDescriptor.
	DefaultBufferSize = 256

	// DefaultTextureSize is the width and height of textures and
	// renderbuffers created without an explicit descriptor.
	DefaultTextureSize = 1
)

func defaultConfig() config {
	size := hal.Extent3D{
		Width:              DefaultTextureSize,
		Height:             DefaultTextureSize,
		DepthOrArrayLayers: 1,
	}
	return config{
		buffer: hal.BufferDescriptor{
			Size:  DefaultBufferSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		},
		texture: hal.TextureDescriptor{
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		},
		renderbuffer: hal.TextureDescriptor{
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatDepth24PlusStencil8,
			Usage:         gputypes.TextureUsageRenderAttachment,
		},
		sampler: hal.SamplerDescriptor{
			AddressModeU: gputypes.AddressModeClampToEdge,
			AddressModeV: gputypes.AddressModeClampToEdge,
			AddressModeW: gputypes.AddressModeClampToEdge,
			MagFilter:    gputypes.FilterModeLinear,
			MinFilter:    gputypes.FilterModeLinear,
			MipmapFilter: gputypes.FilterModeLinear,
		},
	}
}

// Option configures New.
type Option func(*config)

// WithBufferDescriptor sets the descriptor used for buffer objects.
func WithBufferDescriptor(desc hal.BufferDescriptor) Option {
	return func(c *config) { c.buffer = desc }
}

// WithTextureDescriptor sets the descriptor used for texture objects.
func WithTextureDescriptor(desc hal.TextureDescriptor) Option {
	return func(c *config) { c.texture = desc }
}

// WithRenderbufferDescriptor sets the descriptor used for renderbuffers.
// The usage should include gputypes.TextureUsageRenderAttachment.
func WithRenderbufferDescriptor(desc hal.TextureDescriptor) Option {
	return func(c *config) { c.renderbuffer = desc }
}

// WithSamplerDescriptor sets the descriptor used for sampler objects.
func WithSamplerDescriptor(desc hal.SamplerDescriptor) Option {
	return func(c *config) { c.sampler = desc }
}

// WithTextureSize sets the 2D extent of textures and renderbuffers.
func WithTextureSize(width, height uint32) Option {
	return func(c *config) {
		size := hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
		c.texture.Size = size
		c.renderbuffer.Size = size
	}
}
