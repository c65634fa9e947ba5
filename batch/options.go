package batch

// DefaultMaxVertices is the default safety bound on the combined vertex
// count of a single batch.
const DefaultMaxVertices = 1 << 20

// Option configures a Batch or Renderer during creation.
//
// Example:
//
//	// Default limits
//	r := batch.NewRenderer(backend)
//
//	// Reserve room for a known instance count and tighten the bound
//	r := batch.NewRenderer(backend,
//	    batch.WithCapacity(1024),
//	    batch.WithMaxVertices(1<<18))
type Option func(*options)

type options struct {
	maxVertices int
	capacity    int
}

func defaultOptions() options {
	return options{
		maxVertices: DefaultMaxVertices,
	}
}

// WithMaxVertices sets the maximum combined vertex count a batch may
// build. Builds that would exceed the bound fail with a [*CapacityError]
// instead of silently truncating. Non-positive values restore the default.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxVertices = n
		} else {
			o.maxVertices = DefaultMaxVertices
		}
	}
}

// WithCapacity preallocates the entry list for the given number of
// instances, avoiding repeated reallocation under high entry counts.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
