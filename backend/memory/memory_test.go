package memory_test

import (
	"errors"
	"testing"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/backend/memory"
	"github.com/gogpu/gpures/factory"
)

func TestBatchLifecycle(t *testing.T) {
	b := memory.New()
	defer b.Close()

	set, err := gpures.NewTextures(b, 3)
	if err != nil {
		t.Fatalf("NewTextures() error = %v", err)
	}
	if got := b.Live(gpures.KindTexture); got != 3 {
		t.Errorf("Live(texture) = %d, want 3", got)
	}
	for _, h := range set.Handles() {
		if !b.IsLive(gpures.KindTexture, h) {
			t.Errorf("handle %d not live", h)
		}
	}

	set.Destroy()
	st := b.Stats(gpures.KindTexture)
	if st.CreateBatch != 1 || st.DestroyBatch != 1 || st.CreateOne != 0 || st.DestroyOne != 0 {
		t.Errorf("Stats = %+v, want one batch create and one batch destroy", st)
	}
	if st.Created != 3 || st.Destroyed != 3 {
		t.Errorf("Created=%d Destroyed=%d, want 3/3", st.Created, st.Destroyed)
	}
}

func TestMovedSetDestroyedOnce(t *testing.T) {
	b := memory.New()
	defer b.Close()

	src, err := gpures.NewBuffers(b, 3)
	if err != nil {
		t.Fatal(err)
	}
	dst := src.Move()
	src.Destroy()
	dst.Destroy()
	src.Destroy()
	dst.Destroy()

	st := b.Stats(gpures.KindBuffer)
	if st.Destroyed != 3 {
		t.Errorf("Destroyed = %d handles, want 3", st.Destroyed)
	}
	if st.DestroyBatch != 1 {
		t.Errorf("DestroyBatch = %d calls, want 1", st.DestroyBatch)
	}
	if st.Stale != 0 {
		t.Errorf("Stale = %d, want 0", st.Stale)
	}
}

func TestHandlesNeverReused(t *testing.T) {
	b := memory.New()
	defer b.Close()

	first, _ := gpures.NewSampler(b)
	h := first.Handle()
	first.Destroy()

	second, _ := gpures.NewSampler(b)
	defer second.Destroy()
	if second.Is(h) {
		t.Errorf("handle %d reused after destroy", h)
	}
}

func TestCapacity(t *testing.T) {
	b := memory.New()
	defer b.Close()
	b.SetCapacity(4)

	keep, err := gpures.NewFramebuffers(b, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer keep.Destroy()

	if _, err := gpures.NewFramebuffers(b, 2); !errors.Is(err, memory.ErrExhausted) {
		t.Errorf("over-capacity batch error = %v, want ErrExhausted", err)
	}
	if got := b.Live(gpures.KindFramebuffer); got != 3 {
		t.Errorf("Live = %d after failed batch, want 3", got)
	}

	one, err := gpures.NewRenderbuffer(b)
	if err != nil {
		t.Fatalf("create within capacity: %v", err)
	}
	one.Destroy()
}

func TestStaleDestroy(t *testing.T) {
	b := memory.New()
	defer b.Close()

	tr, err := b.Traits(gpures.KindVertexArray)
	if err != nil {
		t.Fatal(err)
	}
	obj := gpures.AdoptObject(tr, 999)
	obj.Destroy()

	if st := b.Stats(gpures.KindVertexArray); st.Stale != 1 {
		t.Errorf("Stale = %d, want 1", st.Stale)
	}
}

func TestKindsAreSeparate(t *testing.T) {
	b := memory.New()
	defer b.Close()

	buf, _ := gpures.NewBuffer(b)
	defer buf.Destroy()

	tr, _ := b.Traits(gpures.KindTexture)
	wrong := gpures.AdoptObject(tr, buf.Handle())
	wrong.Destroy()

	if !b.IsLive(gpures.KindBuffer, buf.Handle()) {
		t.Error("destroying as texture released a buffer handle")
	}
}

func TestClose(t *testing.T) {
	b := memory.New()
	leaked, _ := gpures.NewProgram(b)
	_ = leaked

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if b.Live(gpures.KindProgram) != 0 {
		t.Error("Close did not release leaked handles")
	}
	if _, err := gpures.NewProgram(b); !errors.Is(err, gpures.ErrBackendClosed) {
		t.Errorf("create after Close error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestInvalidKind(t *testing.T) {
	b := memory.New()
	if _, err := b.Traits(gpures.Kind(99)); !errors.Is(err, gpures.ErrUnsupportedKind) {
		t.Errorf("Traits(99) error = %v", err)
	}
}

func TestModule(t *testing.T) {
	r := factory.New[gpures.Backend]()
	r.RegisterModules(memory.Module)

	b, ok := r.Create(memory.Name)
	if !ok {
		t.Fatal("memory backend not registered")
	}
	defer b.Close()
	if b.Name() != memory.Name {
		t.Errorf("Name() = %q", b.Name())
	}
}

func TestStatsCalls(t *testing.T) {
	s := memory.Stats{CreateOne: 1, CreateBatch: 2, DestroyOne: 3, DestroyBatch: 4, Created: 10}
	if s.Calls() != 10 {
		t.Errorf("Calls() = %d, want 10", s.Calls())
	}
}
