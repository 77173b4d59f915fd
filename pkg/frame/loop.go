// Package frame drives a widget tree one frame at a time: it measures the
// time since the previous frame, updates every widget and draws the tree.
package frame

import (
	"time"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering"
)

// Loop steps a tree. The zero Clock uses the package clock. A Loop is not
// safe for concurrent use.
type Loop struct {
	Tree  *core.Tree
	Clock Clock

	last    time.Time
	started bool
	frames  int
}

// NewLoop returns a loop over tree using the package clock.
func NewLoop(tree *core.Tree) *Loop {
	return &Loop{Tree: tree}
}

func (l *Loop) now() time.Time {
	if l.Clock != nil {
		return l.Clock.Now()
	}
	return Now()
}

// Tick updates every widget with the time since the previous tick and
// returns it. The first tick reports zero, as does a clock that went
// backwards.
func (l *Loop) Tick() time.Duration {
	now := l.now()
	var elapsed time.Duration
	if l.started {
		elapsed = max(now.Sub(l.last), 0)
	}
	l.last = now
	l.started = true

	l.Tree.Update(elapsed)
	return elapsed
}

// Frame ticks, then draws the tree to r.
func (l *Loop) Frame(r rendering.Renderer) time.Duration {
	elapsed := l.Tick()
	l.Tree.Draw(r)
	l.frames++
	return elapsed
}

// LayoutFrame lays the tree out within area before running Frame.
func (l *Loop) LayoutFrame(area graphics.Size, r rendering.Renderer) time.Duration {
	l.Tree.Layout(area)
	return l.Frame(r)
}

// Frames returns the number of frames drawn.
func (l *Loop) Frames() int {
	return l.frames
}
