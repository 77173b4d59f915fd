package testing

import (
	"slices"
	"testing"
	"time"

	"github.com/go-drift/trellis/pkg/frame"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/testing/internal/testbed"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestWidgetTester_Clock(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	clk := tester.Clock()

	if clk == nil {
		t.Fatal("expected non-nil clock")
	}
	if !frame.Now().Equal(clk.Now()) {
		t.Error("tester clock should drive the frame package clock")
	}

	start := clk.Now()
	clk.Advance(500 * time.Millisecond)
	if frame.Now().Sub(start) != 500*time.Millisecond {
		t.Error("clock advancement not reflected")
	}
}

func TestFakeClock_Steps(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(testbed.NewBox(graphics.RectFromXYWH(0, 0, 10, 10), "")); err != nil {
		t.Fatal(err)
	}
	if err := tester.PumpFrames(3); err != nil {
		t.Fatal(err)
	}

	clk := tester.Clock()
	if got := clk.Elapsed(); got != 3*FrameDuration {
		t.Errorf("Elapsed() = %v, want %v", got, 3*FrameDuration)
	}
	want := []time.Duration{FrameDuration, FrameDuration, FrameDuration}
	if got := clk.Steps(); !slices.Equal(got, want) {
		t.Errorf("Steps() = %v, want %v", got, want)
	}
}

func TestFakeClock_BackwardsIsZeroFrame(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	box := testbed.NewBox(graphics.RectFromXYWH(0, 0, 10, 10), "")
	if err := tester.PumpWidget(box); err != nil {
		t.Fatal(err)
	}
	tester.Clock().Advance(-time.Second)
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	if box.Elapsed != 0 {
		t.Errorf("Elapsed = %v after the clock went back, want 0", box.Elapsed)
	}
}
