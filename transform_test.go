package gl3d

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testEpsilon = 1e-5

func vec3Near(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, testEpsilon)
}

func TestTransformVertices_Translation(t *testing.T) {
	tests := []struct {
		name    string
		in      Vertex
		by      mgl32.Vec3
		wantPos mgl32.Vec3
	}{
		{"origin", V(0, 0, 0, 1, 0, 0), mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
		{"offset", V(1, 1, 1, 0, 1, 0), mgl32.Vec3{-1, 0, 2}, mgl32.Vec3{0, 1, 3}},
		{"negative", V(-2, 3, -4, 0, 0, 1), mgl32.Vec3{2, -3, 4}, mgl32.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mgl32.Translate3D(tt.by.X(), tt.by.Y(), tt.by.Z())
			got, err := TransformVertices([]Vertex{tt.in}, m)
			if err != nil {
				t.Fatalf("TransformVertices() error = %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("TransformVertices() returned %d vertices, want 1", len(got))
			}
			if !vec3Near(got[0].Position, tt.wantPos) {
				t.Errorf("position = %v, want %v", got[0].Position, tt.wantPos)
			}
			if got[0].Color != tt.in.Color {
				t.Errorf("color = %v, want %v (colors must pass through)", got[0].Color, tt.in.Color)
			}
		})
	}
}

func TestTransformVertices_Identity(t *testing.T) {
	in := []Vertex{V(1, 2, 3, 0.5, 0.5, 0.5), V(-1, 0, 4, 1, 1, 1)}
	got, err := TransformVertices(in, mgl32.Ident4())
	if err != nil {
		t.Fatalf("TransformVertices() error = %v", err)
	}
	for i := range in {
		if !vec3Near(got[i].Position, in[i].Position) {
			t.Errorf("vertex %d: position = %v, want %v", i, got[i].Position, in[i].Position)
		}
	}
}

func TestTransformVertices_Scale(t *testing.T) {
	in := []Vertex{V(1, 2, 3, 1, 0, 0)}
	got, err := TransformVertices(in, mgl32.Scale3D(2, 3, 4))
	if err != nil {
		t.Fatalf("TransformVertices() error = %v", err)
	}
	want := mgl32.Vec3{2, 6, 12}
	if !vec3Near(got[0].Position, want) {
		t.Errorf("position = %v, want %v", got[0].Position, want)
	}
}

func TestTransformVertices_PerspectiveDivide(t *testing.T) {
	// A matrix that sets w = z maps (2, 4, 2) to (1, 2, 1).
	var m mgl32.Mat4
	m.SetRow(0, mgl32.Vec4{1, 0, 0, 0})
	m.SetRow(1, mgl32.Vec4{0, 1, 0, 0})
	m.SetRow(2, mgl32.Vec4{0, 0, 1, 0})
	m.SetRow(3, mgl32.Vec4{0, 0, 1, 0})

	got, err := TransformVertices([]Vertex{V(2, 4, 2, 1, 1, 1)}, m)
	if err != nil {
		t.Fatalf("TransformVertices() error = %v", err)
	}
	want := mgl32.Vec3{1, 2, 1}
	if !vec3Near(got[0].Position, want) {
		t.Errorf("position = %v, want %v", got[0].Position, want)
	}
}

func TestTransformVertices_DegenerateW(t *testing.T) {
	// w = z with z = 0 produces a zero homogeneous w.
	var m mgl32.Mat4
	m.SetRow(0, mgl32.Vec4{1, 0, 0, 0})
	m.SetRow(1, mgl32.Vec4{0, 1, 0, 0})
	m.SetRow(2, mgl32.Vec4{0, 0, 1, 0})
	m.SetRow(3, mgl32.Vec4{0, 0, 1, 0})

	_, err := TransformVertices([]Vertex{V(1, 1, 0, 1, 1, 1)}, m)
	if !errors.Is(err, ErrDegenerateTransform) {
		t.Errorf("TransformVertices() error = %v, want ErrDegenerateTransform", err)
	}
}

func TestTransformVertices_InputUnmodified(t *testing.T) {
	in := []Vertex{V(1, 2, 3, 0.1, 0.2, 0.3)}
	orig := in[0]

	if _, err := TransformVertices(in, mgl32.Translate3D(5, 5, 5)); err != nil {
		t.Fatalf("TransformVertices() error = %v", err)
	}
	if in[0] != orig {
		t.Errorf("input vertex mutated: %v, want %v", in[0], orig)
	}
}

func TestTransformVertices_Empty(t *testing.T) {
	got, err := TransformVertices(nil, mgl32.Ident4())
	if err != nil {
		t.Fatalf("TransformVertices() error = %v", err)
	}
	if got != nil {
		t.Errorf("TransformVertices(nil) = %v, want nil", got)
	}
}
