package frame

import (
	"testing"
	"time"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering"
	"github.com/go-drift/trellis/pkg/theme"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

type counter struct {
	core.Base
	total   time.Duration
	updates int
}

func (*counter) Kind() string { return "counter" }

func (c *counter) Update(elapsed time.Duration) {
	c.total += elapsed
	c.updates++
}

func TestLoop_Tick(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	root := &counter{}
	loop := &Loop{Tree: core.New(root, nil), Clock: clk}

	if got := loop.Tick(); got != 0 {
		t.Errorf("first Tick() = %v, want 0", got)
	}
	clk.now = clk.now.Add(16 * time.Millisecond)
	if got := loop.Tick(); got != 16*time.Millisecond {
		t.Errorf("Tick() = %v, want 16ms", got)
	}
	clk.now = clk.now.Add(-time.Second)
	if got := loop.Tick(); got != 0 {
		t.Errorf("Tick() after clock went backwards = %v, want 0", got)
	}

	if root.updates != 3 {
		t.Errorf("updates = %d, want 3", root.updates)
	}
	if root.total != 16*time.Millisecond {
		t.Errorf("total = %v, want 16ms", root.total)
	}
}

func TestLoop_PackageClock(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	defer SetClock(prev)

	root := &counter{}
	loop := NewLoop(core.New(root, nil))
	loop.Tick()
	clk.now = clk.now.Add(time.Second)
	loop.Tick()

	if root.total != time.Second {
		t.Errorf("total = %v, want 1s", root.total)
	}
	if !Now().Equal(clk.now) {
		t.Errorf("Now() = %v, want %v", Now(), clk.now)
	}
}

func TestLoop_Frame(t *testing.T) {
	themes := theme.NewSet(&theme.Theme{
		ID:         "root",
		Background: "ff0000",
		Relative:   theme.Relative{Width: theme.SizeParent, Height: theme.SizeParent},
	})
	root := core.NewEmptyWidget()
	root.State().SetTheme("root")
	loop := &Loop{Tree: core.New(root, themes), Clock: &stepClock{}}

	var layers []rendering.Layer
	loop.LayoutFrame(graphics.Size{Width: 8, Height: 6}, rendering.RendererFunc(func(l rendering.Layer) {
		layers = append(layers, l)
	}))

	if len(layers) != 1 {
		t.Fatalf("drew %d layers, want 1", len(layers))
	}
	if got := layers[0].Size; got != (graphics.Size{Width: 8, Height: 6}) {
		t.Errorf("layer size = %+v", got)
	}
	if loop.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", loop.Frames())
	}
}
