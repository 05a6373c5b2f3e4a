package gl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ebitengine/purego"
	"github.com/gogpu/gpures"
)

// ProcAddressFunc resolves a GL entry point by name, returning 0 if it is
// not available.
type ProcAddressFunc func(name string) uintptr

// namesFunc is the shape shared by glGen* and glDelete*.
type namesFunc func(n int32, names *uint32)

// batchEntry names the glGen*/glDelete* pair for a kind.
type batchEntry struct {
	gen string
	del string
}

// batchEntries is the dispatch table for kinds that support batch calls.
var batchEntries = map[gpures.Kind]batchEntry{
	gpures.KindBuffer:       {"glGenBuffers", "glDeleteBuffers"},
	gpures.KindTexture:      {"glGenTextures", "glDeleteTextures"},
	gpures.KindFramebuffer:  {"glGenFramebuffers", "glDeleteFramebuffers"},
	gpures.KindRenderbuffer: {"glGenRenderbuffers", "glDeleteRenderbuffers"},
	gpures.KindVertexArray:  {"glGenVertexArrays", "glDeleteVertexArrays"},
	gpures.KindSampler:      {"glGenSamplers", "glDeleteSamplers"},
}

// procs holds the bound GL entry points.
type procs struct {
	gen [gpures.NumKinds]namesFunc
	del [gpures.NumKinds]namesFunc

	createProgram func() uint32
	deleteProgram func(program uint32)
	deleteShader  func(shader uint32)
	getError      func() uint32
}

// bind resolves every entry point through lookup. All missing names are
// reported together.
func bind(lookup ProcAddressFunc) (*procs, error) {
	p := &procs{}
	var missing []string

	register := func(fptr any, name string) {
		addr := lookup(name)
		if addr == 0 {
			missing = append(missing, name)
			return
		}
		purego.RegisterFunc(fptr, addr)
	}

	for k, e := range batchEntries {
		register(&p.gen[k], e.gen)
		register(&p.del[k], e.del)
	}
	register(&p.createProgram, "glCreateProgram")
	register(&p.deleteProgram, "glDeleteProgram")
	register(&p.deleteShader, "glDeleteShader")
	register(&p.getError, "glGetError")

	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingFunction, strings.Join(missing, ", "))
	}
	return p, nil
}

// maxDrain bounds how many stale errors are discarded before a call.
const maxDrain = 8

// drainErrors discards errors left by earlier, unrelated GL calls.
func (p *procs) drainErrors() {
	for range maxDrain {
		if p.getError() == NoError {
			return
		}
	}
}

// check converts a pending GL error into an *Error.
func (p *procs) check(op string) error {
	if code := p.getError(); code != NoError {
		return &Error{Op: op, Code: code}
	}
	return nil
}
