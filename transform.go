package gl3d

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateTransform is returned when a transform maps a vertex to a
// homogeneous w of zero, which has no finite Cartesian equivalent.
var ErrDegenerateTransform = errors.New("gl3d: degenerate transform: homogeneous w is zero")

// wEpsilon is the tolerance below which a homogeneous w component is
// treated as zero.
const wEpsilon = 1e-7

// TransformVertices applies a 4x4 homogeneous transform to a vertex block
// and returns the transformed block. Each position is promoted to
// (x, y, z, 1), multiplied as world = m * local, and divided by the
// resulting w. The divide is performed unconditionally so projective
// transforms are handled correctly; for affine transforms w is 1 and the
// divide is a no-op. Colors pass through unchanged.
//
// TransformVertices is a pure function: the input slice is never mutated
// and the result shares no storage with it. It fails with
// [ErrDegenerateTransform] if any transformed w is zero within tolerance,
// rather than silently emitting non-finite positions.
func TransformVertices(verts []Vertex, m mgl32.Mat4) ([]Vertex, error) {
	if len(verts) == 0 {
		return nil, nil
	}
	out := make([]Vertex, len(verts))
	for i, v := range verts {
		h := m.Mul4x1(v.Position.Vec4(1))
		w := h.W()
		if math32.Abs(w) < wEpsilon {
			return nil, fmt.Errorf("%w (vertex %d)", ErrDegenerateTransform, i)
		}
		out[i] = Vertex{
			Position: h.Vec3().Mul(1 / w),
			Color:    v.Color,
		}
	}
	return out, nil
}
