package gpures

import (
	"fmt"
	"strings"
)

// Kind identifies a category of GPU object.
type Kind uint8

// Resource kinds.
const (
	KindProgram Kind = iota
	KindShader
	KindBuffer
	KindTexture
	KindFramebuffer
	KindRenderbuffer
	KindVertexArray
	KindSampler

	kindCount
)

// NumKinds is the number of defined kinds.
const NumKinds = int(kindCount)

var kindNames = [kindCount]string{
	KindProgram:      "program",
	KindShader:       "shader",
	KindBuffer:       "buffer",
	KindTexture:      "texture",
	KindFramebuffer:  "framebuffer",
	KindRenderbuffer: "renderbuffer",
	KindVertexArray:  "vertex-array",
	KindSampler:      "sampler",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the kind with the given name. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Handle is an opaque object name issued by a backing system.
type Handle uint32

// Null is the sentinel handle that never names a live object.
const Null Handle = 0

// IsNull reports whether h is the Null sentinel.
func (h Handle) IsNull() bool { return h == Null }
