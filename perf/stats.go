// Package perf provides frame and operation timing for a render loop:
// wall-clock duration of named operations in a call hierarchy, a
// fixed-window FPS estimate and the per-frame draw-call count.
//
// The recorder is driven by the loop that owns it and is not safe for
// concurrent use. Timing uses a local clock only; there is no I/O
// failure mode.
package perf

import (
	"fmt"
	"strings"
	"time"
)

// OperationStats is one node of a frame's hierarchical timing tree.
// Repeated operations with the same name at the same stack position
// accumulate into a single node.
type OperationStats struct {
	// Name is the operation name passed to BeginOperation.
	Name string
	// Duration is the total time spent in this operation, children
	// included, across all calls at this position.
	Duration time.Duration
	// Calls is the number of completed begin/end pairs.
	Calls int
	// Children are nested operations in first-execution order.
	Children []*OperationStats
}

// ChildTime returns the total time attributed to children.
func (o *OperationStats) ChildTime() time.Duration {
	var sum time.Duration
	for _, c := range o.Children {
		sum += c.Duration
	}
	return sum
}

// Self returns the operation's own time: Duration minus child time.
// It is never negative for a well-formed frame.
func (o *OperationStats) Self() time.Duration {
	self := o.Duration - o.ChildTime()
	if self < 0 {
		return 0
	}
	return self
}

// FrameStats is the complete snapshot of one completed frame. It is
// published by EndFrame and read back via [Recorder.PreviousFrame]; it is
// never updated mid-frame.
type FrameStats struct {
	// FPS is the reciprocal of the mean frame duration over the most
	// recent window of completed frames, or 0 until the window fills.
	FPS float64
	// FrameTime is the duration of this frame.
	FrameTime time.Duration
	// DrawCalls is the draw-call count reported for this frame.
	DrawCalls int
	// Operations are the frame's top-level timed operations in
	// first-execution order.
	Operations []*OperationStats
}

// String renders the snapshot as an indented tree, one operation per
// line, suitable for logging or a debug overlay.
func (s FrameStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fps %.1f  frame %.2fms  draw calls %d",
		s.FPS, float64(s.FrameTime.Microseconds())/1000, s.DrawCalls)
	for _, op := range s.Operations {
		writeOp(&b, op, 1)
	}
	return b.String()
}

func writeOp(b *strings.Builder, op *OperationStats, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	fmt.Fprintf(b, "%s: %.2fms", op.Name, float64(op.Duration.Microseconds())/1000)
	if op.Calls > 1 {
		fmt.Fprintf(b, " (x%d)", op.Calls)
	}
	for _, c := range op.Children {
		writeOp(b, c, depth+1)
	}
}
