package perf

import (
	"fmt"
	"time"

	"github.com/gogpu/gl3d"
)

// DefaultWindow is the number of completed frames the FPS estimate
// averages over.
const DefaultWindow = 10

// Option configures a Recorder during creation.
type Option func(*Recorder)

// WithClock replaces the wall clock. Tests inject a fake clock to make
// durations deterministic.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithWindow sets the FPS averaging window in frames. Non-positive
// values restore the default.
func WithWindow(frames int) Option {
	return func(r *Recorder) {
		if frames > 0 {
			r.window = frames
		}
	}
}

// WithStrict makes instrumentation misuse (mismatched begin/end pairs,
// operations outside a frame) panic instead of self-healing. Intended
// for debug builds and tests; release loops keep the default tolerant
// behavior so instrumentation can never crash rendering.
func WithStrict() Option {
	return func(r *Recorder) {
		r.strict = true
	}
}

// opFrame is one level of the live operation stack.
type opFrame struct {
	stats *OperationStats
	start time.Time
}

// Recorder measures frame durations and named operation timings in a
// call hierarchy, and carries the per-frame draw-call count.
//
// Usage per frame:
//
//	rec.BeginFrame()
//	done := rec.Scope("update")
//	... // nested Scope/BeginOperation calls allowed
//	done()
//	rec.SetDrawCalls(r.DrawCalls())
//	rec.EndFrame()
//	stats := rec.PreviousFrame()
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	now    func() time.Time
	window int
	strict bool

	inFrame    bool
	healNeeded bool
	frameStart time.Time

	// Ring of the most recent completed frame durations.
	durations []time.Duration
	completed int

	roots     []*OperationStats
	stack     []opFrame
	drawCalls int

	prev FrameStats
}

// NewRecorder creates an idle recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		now:    time.Now,
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.durations = make([]time.Duration, 0, r.window)
	return r
}

// BeginFrame starts a new frame. If the previous frame was left open or
// instrumentation misuse was detected, the recorder resets its state
// here so one bad frame never poisons the next.
func (r *Recorder) BeginFrame() {
	if r.inFrame {
		r.misuse("BeginFrame called while a frame is in progress")
	}
	if r.healNeeded {
		r.stack = r.stack[:0]
		r.healNeeded = false
	}
	r.roots = nil
	r.stack = r.stack[:0]
	r.drawCalls = 0
	r.inFrame = true
	r.frameStart = r.now()
}

// EndFrame completes the current frame and publishes its snapshot.
// All operations begun within the frame must have ended.
func (r *Recorder) EndFrame() {
	if !r.inFrame {
		r.misuse("EndFrame called without BeginFrame")
		return
	}
	if len(r.stack) > 0 {
		r.misuse(fmt.Sprintf("EndFrame called with %d operation(s) still open", len(r.stack)))
		r.stack = r.stack[:0]
	}
	frameTime := r.now().Sub(r.frameStart)
	r.inFrame = false

	if len(r.durations) < r.window {
		r.durations = append(r.durations, frameTime)
	} else {
		r.durations[r.completed%r.window] = frameTime
	}
	r.completed++

	r.prev = FrameStats{
		FPS:        r.fps(),
		FrameTime:  frameTime,
		DrawCalls:  r.drawCalls,
		Operations: r.roots,
	}
}

// fps returns the reciprocal of the mean frame duration over the window,
// or 0 until the window has filled.
func (r *Recorder) fps() float64 {
	if len(r.durations) < r.window {
		return 0
	}
	var sum time.Duration
	for _, d := range r.durations {
		sum += d
	}
	mean := sum / time.Duration(r.window)
	if mean <= 0 {
		return 0
	}
	return float64(time.Second) / float64(mean)
}

// BeginOperation pushes a named operation onto the timing stack. Nested
// operations become children of the enclosing one; repeated operations
// with the same name at the same position accumulate.
//
// Every BeginOperation needs a matching EndOperation on all code paths;
// prefer [Recorder.Scope] with defer.
func (r *Recorder) BeginOperation(name string) {
	if !r.inFrame {
		r.misuse("BeginOperation called outside a frame")
		return
	}
	siblings := &r.roots
	if len(r.stack) > 0 {
		siblings = &r.stack[len(r.stack)-1].stats.Children
	}
	var node *OperationStats
	for _, s := range *siblings {
		if s.Name == name {
			node = s
			break
		}
	}
	if node == nil {
		node = &OperationStats{Name: name}
		*siblings = append(*siblings, node)
	}
	r.stack = append(r.stack, opFrame{stats: node, start: r.now()})
}

// EndOperation pops the top of the timing stack and adds the elapsed
// time to the operation's aggregate.
func (r *Recorder) EndOperation() {
	if len(r.stack) == 0 {
		r.misuse("EndOperation called with no open operation")
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	top.stats.Duration += r.now().Sub(top.start)
	top.stats.Calls++
}

// Scope begins a named operation and returns the function that ends it.
// Deferring the result guarantees the matching EndOperation on every
// path out of the scope, including early returns and panics:
//
//	defer rec.Scope("build batches")()
func (r *Recorder) Scope(name string) func() {
	r.BeginOperation(name)
	return r.EndOperation
}

// SetDrawCalls records the frame's draw-call count for the snapshot.
func (r *Recorder) SetDrawCalls(n int) { r.drawCalls = n }

// DrawCalls returns the draw-call count recorded for the current frame.
func (r *Recorder) DrawCalls() int { return r.drawCalls }

// PreviousFrame returns the snapshot of the most recently completed
// frame. It may be called at any point, including mid-frame: the
// in-progress frame is never visible.
func (r *Recorder) PreviousFrame() FrameStats { return r.prev }

// FrameCount returns the number of completed frames.
func (r *Recorder) FrameCount() int { return r.completed }

// Reset discards all statistics and returns the recorder to idle.
func (r *Recorder) Reset() {
	r.inFrame = false
	r.healNeeded = false
	r.durations = r.durations[:0]
	r.completed = 0
	r.roots = nil
	r.stack = r.stack[:0]
	r.drawCalls = 0
	r.prev = FrameStats{}
}

// misuse handles an instrumentation ordering error: a programming error,
// not a recoverable runtime failure. Strict recorders panic; tolerant
// recorders log and schedule a self-heal so the render loop never
// crashes because of instrumentation.
func (r *Recorder) misuse(msg string) {
	if r.strict {
		panic("gl3d/perf: " + msg)
	}
	r.healNeeded = true
	gl3d.Logger().Warn("performance recorder misuse", "detail", msg)
}
