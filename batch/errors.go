package batch

import (
	"errors"
	"fmt"

	"github.com/gogpu/gl3d"
)

// ErrMixedIndexing is returned by a build when entries within one batch
// inconsistently carry or omit index blocks. A batch is either fully
// indexed or fully non-indexed; mixing the two is a configuration error
// on the caller's side.
var ErrMixedIndexing = errors.New("gl3d: batch mixes indexed and non-indexed entries")

// CapacityError is returned when building a batch whose combined vertex
// count exceeds the configured maximum. The caller decides whether to
// split the scene into multiple batches or raise the limit.
type CapacityError struct {
	// Primitive identifies the batch that overflowed.
	Primitive gl3d.Primitive
	// Vertices is the combined vertex count the build would have produced.
	Vertices int
	// Max is the configured limit.
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("gl3d: %s batch exceeds capacity: %d vertices (max %d)",
		e.Primitive, e.Vertices, e.Max)
}
