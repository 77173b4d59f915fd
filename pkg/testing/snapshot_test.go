package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/testing/internal/testbed"
)

func TestCaptureSnapshot_Structure(t *testing.T) {
	tester := pumpCounters(t)

	snap := tester.CaptureSnapshot()
	root := snap.Tree
	if root == nil {
		t.Fatal("expected snapshot tree")
	}
	if root.ID != "Box#0" || root.Bounds != [4]int{0, 0, 200, 100} {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}
	if got := root.Children[1].Children[0]; got.ID != "Counter#1" || got.Text != "42" {
		t.Errorf("nested counter = %+v", got)
	}
	if len(snap.DisplayOps) != 2 || snap.DisplayOps[0].Op != "text" {
		t.Errorf("display ops = %+v", snap.DisplayOps)
	}
}

func TestCaptureSnapshot_NoTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if snap := tester.CaptureSnapshot(); snap.Tree != nil {
		t.Error("expected empty snapshot without a tree")
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := pumpCounters(t)

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(testbed.NewBox(graphics.RectFromXYWH(0, 0, 50, 50), "ff0000"))
	a := tester.CaptureSnapshot()

	tester.PumpWidget(testbed.NewBox(graphics.RectFromXYWH(0, 0, 100, 50), "00ff00"))
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

// recordingT counts failures instead of failing the enclosing test.
type recordingT struct {
	name   string
	fatals int
	errs   int
}

func (r *recordingT) Fatalf(string, ...any) { r.fatals++ }
func (r *recordingT) Errorf(string, ...any) { r.errs++ }
func (r *recordingT) Helper()               {}
func (r *recordingT) Name() string          { return r.name }

func TestSnapshot_MatchesFile(t *testing.T) {
	box := func(w, h int, bg string) *Snapshot {
		tester := NewWidgetTesterWithT(t)
		if err := tester.PumpWidget(testbed.NewBox(graphics.RectFromXYWH(0, 0, w, h), bg)); err != nil {
			t.Fatal(err)
		}
		return tester.CaptureSnapshot()
	}
	stored := filepath.Join(t.TempDir(), "testdata", "box.snapshot.json")
	if err := box(50, 50, "ff0000").UpdateFile(stored); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	tests := []struct {
		name       string
		snap       *Snapshot
		path       string
		wantFatals int
		wantErrs   int
	}{
		{"match", box(50, 50, "ff0000"), stored, 0, 0},
		{"mismatch", box(999, 999, "0000ff"), stored, 0, 1},
		{"missing file", box(50, 50, "ff0000"), "/nonexistent/path/snap.json", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(UpdateSnapshotsEnv, "")
			rec := &recordingT{name: t.Name()}
			tt.snap.MatchesFile(rec, tt.path)
			if rec.fatals != tt.wantFatals || rec.errs != tt.wantErrs {
				t.Errorf("fatals = %d errors = %d, want %d and %d", rec.fatals, rec.errs, tt.wantFatals, tt.wantErrs)
			}
		})
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := pumpCounters(t).CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file should be written in update mode: %v", err)
	}
	t.Setenv(UpdateSnapshotsEnv, "")
	snap.MatchesFile(t, path)
}
