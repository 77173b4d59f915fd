package testing

import (
	"testing"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/testing/internal/testbed"
)

// pumpCounters mounts a box holding a panel with two counters.
func pumpCounters(t *testing.T) *WidgetTester {
	t.Helper()
	tester := NewWidgetTesterWithT(t)
	root := testbed.NewBox(graphics.RectFromXYWH(0, 0, 200, 100), "")
	root.State().AddChild(testbed.NewCounter(7, graphics.RectFromXYWH(0, 0, 50, 50)))
	panel := core.NewEmptyWidget()
	panel.State().SetPosition(graphics.Point{X: 100, Y: 0})
	panel.State().SetSize(graphics.Size{Width: 100, Height: 100})
	panel.State().AddChild(testbed.NewCounter(42, graphics.RectFromXYWH(100, 0, 50, 50)))
	root.State().AddChild(panel)
	if err := tester.PumpWidget(root); err != nil {
		t.Fatal(err)
	}
	return tester
}

func TestByType(t *testing.T) {
	tester := pumpCounters(t)

	result := tester.Find(ByType[*testbed.Counter]())
	if result.Count() != 2 {
		t.Fatalf("expected 2 counters, got %d", result.Count())
	}
	if got := result.Widget().(*testbed.Counter).Count; got != 7 {
		t.Errorf("first counter = %d, want 7 (draw order)", got)
	}
	if tester.Find(ByType[*core.EmptyWidget]()).Count() != 1 {
		t.Error("expected one EmptyWidget")
	}
}

func TestByKind(t *testing.T) {
	tester := pumpCounters(t)
	if got := tester.Find(ByKind("Counter")).Count(); got != 2 {
		t.Errorf("ByKind(Counter) found %d, want 2", got)
	}
	if tester.Find(ByKind("Label")).Exists() {
		t.Error("should not find a Label")
	}
}

func TestByText(t *testing.T) {
	tester := pumpCounters(t)

	if !tester.Find(ByText("42")).Exists() {
		t.Error("expected to find text '42'")
	}
	if tester.Find(ByText("99")).Exists() {
		t.Error("should not find text '99'")
	}
	if !tester.Find(ByTextContaining("4")).Exists() {
		t.Error("expected to find text containing '4'")
	}
}

func TestByPredicate(t *testing.T) {
	tester := pumpCounters(t)

	result := tester.Find(ByPredicate(func(w core.Widget) bool {
		c, ok := w.(*testbed.Counter)
		return ok && c.Count > 10
	}))
	if result.Count() != 1 {
		t.Errorf("expected one counter above 10, got %d", result.Count())
	}
}

func TestDescendantAndAncestor(t *testing.T) {
	tester := pumpCounters(t)

	inPanel := tester.Find(Descendant(ByType[*core.EmptyWidget](), ByType[*testbed.Counter]()))
	if inPanel.Count() != 1 || inPanel.Widget().(*testbed.Counter).Count != 42 {
		t.Errorf("Descendant found %v", inPanel.All())
	}

	holders := tester.Find(Ancestor(ByText("42"), ByPredicate(func(core.Widget) bool { return true })))
	if holders.Count() != 2 {
		t.Errorf("Ancestor found %d widgets, want root and panel", holders.Count())
	}
}

func TestFinderResult_First_PanicsOnEmpty(t *testing.T) {
	tester := pumpCounters(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected First() to panic on empty result")
		}
	}()
	tester.Find(ByText("missing")).First()
}

func TestFinderResult_At(t *testing.T) {
	tester := pumpCounters(t)
	result := tester.Find(ByType[*testbed.Counter]())
	if result.At(1) != result.All()[1] {
		t.Error("At(1) should match All()[1]")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected At() to panic out of range")
		}
	}()
	result.At(5)
}

func TestFind_NoTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if tester.Find(ByKind("Counter")).Exists() {
		t.Error("no tree should yield no matches")
	}
}
