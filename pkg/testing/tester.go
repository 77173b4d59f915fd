package testing

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/errors"
	"github.com/go-drift/trellis/pkg/frame"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/theme"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
)

// FrameDuration is how far PumpFrames advances the clock per frame.
const FrameDuration = 16 * time.Millisecond

// WidgetTester builds a tree, lays it out, and draws it into a recording
// display list on every Pump, using a fake clock for frame timing.
type WidgetTester struct {
	tree    *core.Tree
	loop    *frame.Loop
	themes  *theme.Set
	size    graphics.Size
	clock   *FakeClock
	display *DisplayList
	cursor  input.Cursor

	prevClock   frame.Clock
	prevHandler errors.ErrorHandler
	errs        *errorRecorder
}

// NewWidgetTester creates a tester with the default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	t := &WidgetTester{
		themes:  theme.NewSet(),
		size:    graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		clock:   clk,
		display: &DisplayList{},
		errs:    &errorRecorder{},
	}
	t.prevClock = frame.SetClock(clk)
	t.prevHandler = errors.SetHandler(t.errs)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the frame clock and error handler. Must be called if
// not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	t.tree = nil
	t.loop = nil
	frame.SetClock(t.prevClock)
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the surface size the root is laid out in.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// SetThemes sets the catalog used by the next PumpWidget.
func (t *WidgetTester) SetThemes(themes *theme.Set) {
	t.themes = themes
}

// LoadThemes parses a YAML theme description and uses it for the next
// PumpWidget.
func (t *WidgetTester) LoadThemes(source string) error {
	s, err := theme.Parse([]byte(source))
	if err != nil {
		return err
	}
	t.themes = s
	return nil
}

// Clock returns the fake clock frames are timed with.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// PumpWidget builds a new tree rooted at root and runs one frame.
func (t *WidgetTester) PumpWidget(root core.Widget) error {
	t.tree = core.New(root, t.themes)
	t.loop = frame.NewLoop(t.tree)
	return t.Pump()
}

// Pump lays the tree out and draws one frame, replacing the display list.
func (t *WidgetTester) Pump() error {
	if t.tree == nil {
		return fmt.Errorf("no widget mounted")
	}
	t.display = &DisplayList{}
	t.loop.LayoutFrame(t.size, t.display)
	return nil
}

// PumpFrames advances the clock by FrameDuration before each of n frames.
func (t *WidgetTester) PumpFrames(n int) error {
	for range n {
		t.clock.Advance(FrameDuration)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// Tree returns the mounted tree, or nil.
func (t *WidgetTester) Tree() *core.Tree {
	return t.tree
}

// DisplayList returns the layers drawn by the last frame.
func (t *WidgetTester) DisplayList() *DisplayList {
	return t.display
}

// Errors returns the errors reported since the tester was created.
func (t *WidgetTester) Errors() []*errors.TrellisError {
	return t.errs.list()
}

// Find evaluates a finder against the mounted tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.tree == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		tree:    t.tree,
		handles: finder.Evaluate(t.tree),
		finder:  finder,
	}
}

// errorRecorder captures reports instead of logging them.
type errorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.TrellisError
	panics []*errors.PanicError
}

func (r *errorRecorder) HandleError(err *errors.TrellisError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *errorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func (r *errorRecorder) list() []*errors.TrellisError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.TrellisError, len(r.errs))
	copy(out, r.errs)
	return out
}
