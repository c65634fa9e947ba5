package batch

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl3d"
)

func TestRendererOneDrawCallPerClass(t *testing.T) {
	be := &mockBackend{}
	r := NewRenderer(be)

	// Many instances across two primitive classes.
	for rangeIdx := 0; rangeIdx < 50; rangeIdx++ {
		if err := r.Add(gl3d.Triangles, stripIndices(triangleMesh()), mgl32.Ident4()); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	line := gl3d.Mesh{Vertices: []gl3d.Vertex{
		gl3d.V(0, 0, 0, 1, 1, 1), gl3d.V(1, 1, 1, 1, 1, 1),
	}}
	for rangeIdx := 0; rangeIdx < 20; rangeIdx++ {
		if err := r.Add(gl3d.Lines, line, mgl32.Ident4()); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(be.draws) != 2 {
		t.Fatalf("draw commands = %d, want 2 (one per non-empty class)", len(be.draws))
	}
	if r.DrawCalls() != 2 {
		t.Errorf("DrawCalls() = %d, want 2", r.DrawCalls())
	}

	// The empty points batch must not have drawn.
	for _, d := range be.draws {
		if d.prim == gl3d.Points {
			t.Error("empty points batch issued a draw command")
		}
	}
}

func TestRendererAddInvalidPrimitive(t *testing.T) {
	r := NewRenderer(&mockBackend{})
	if err := r.Add(gl3d.Primitive(42), triangleMesh(), mgl32.Ident4()); err == nil {
		t.Error("Add() with unknown primitive should fail")
	}
}

func TestRendererBatchAccess(t *testing.T) {
	r := NewRenderer(&mockBackend{})
	if b := r.Batch(gl3d.Triangles); b == nil || b.Primitive() != gl3d.Triangles {
		t.Error("Batch(Triangles) did not return the triangles batch")
	}
	if b := r.Batch(gl3d.Primitive(42)); b != nil {
		t.Error("Batch() with unknown primitive should return nil")
	}
}

func TestRendererFailedBatchDoesNotBlockOthers(t *testing.T) {
	be := &mockBackend{}
	r := NewRenderer(be)

	// Triangles batch is misconfigured (mixed indexing); lines batch is fine.
	r.Batch(gl3d.Triangles).Add(triangleMesh(), mgl32.Ident4())
	r.Batch(gl3d.Triangles).Add(stripIndices(triangleMesh()), mgl32.Ident4())
	r.Batch(gl3d.Lines).Add(gl3d.Mesh{Vertices: []gl3d.Vertex{
		gl3d.V(0, 0, 0, 1, 1, 1), gl3d.V(1, 0, 0, 1, 1, 1),
	}}, mgl32.Ident4())

	err := r.Flush()
	if !errors.Is(err, ErrMixedIndexing) {
		t.Fatalf("Flush() error = %v, want ErrMixedIndexing", err)
	}

	// The healthy batch still drew.
	if len(be.draws) != 1 || be.draws[0].prim != gl3d.Lines {
		t.Errorf("draws = %+v, want exactly one lines draw", be.draws)
	}
	if r.DrawCalls() != 1 {
		t.Errorf("DrawCalls() = %d, want 1", r.DrawCalls())
	}
}

func TestRendererDrawCallsAccumulateAndReset(t *testing.T) {
	be := &mockBackend{}
	r := NewRenderer(be)
	r.Add(gl3d.Triangles, stripIndices(triangleMesh()), mgl32.Ident4())

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("second Flush() error = %v", err)
	}
	// Two flushes of the same non-empty batch are two draw commands.
	if r.DrawCalls() != 2 {
		t.Errorf("DrawCalls() = %d, want 2", r.DrawCalls())
	}

	r.ResetDrawCalls()
	if r.DrawCalls() != 0 {
		t.Errorf("DrawCalls() after reset = %d, want 0", r.DrawCalls())
	}
}

func TestRendererClear(t *testing.T) {
	be := &mockBackend{}
	r := NewRenderer(be)
	r.Add(gl3d.Triangles, stripIndices(triangleMesh()), mgl32.Ident4())
	r.Add(gl3d.Points, gl3d.Mesh{Vertices: []gl3d.Vertex{gl3d.V(0, 0, 0, 1, 1, 1)}}, mgl32.Ident4())

	r.Clear()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(be.draws) != 0 {
		t.Errorf("draws after Clear = %d, want 0", len(be.draws))
	}
}

func BenchmarkBatchBuild(b *testing.B) {
	be := &mockBackend{}
	batch := New(gl3d.Triangles, be, WithCapacity(1024))
	mesh := triangleMesh()
	for i := 0; i < 1024; i++ {
		batch.Add(mesh, mgl32.Translate3D(float32(i), 0, 0))
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		batch.dirty = true
		if err := batch.Build(); err != nil {
			b.Fatal(err)
		}
	}
}
