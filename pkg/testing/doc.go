// Package testing mounts widget trees in memory and drives them the way a
// host would: layout at a fixed size, frames from a fake clock, pointer
// gestures routed through Tree.HandleEvent, and draw calls captured in a
// DisplayList instead of reaching a real backend.
//
// The package shares its name with the standard library, so import it
// under an alias:
//
//	import trellistest "github.com/go-drift/trellis/pkg/testing"
//
// A typical test mounts a root, locates widgets with a Finder, acts on
// them and checks what changed:
//
//	tester := trellistest.NewWidgetTesterWithT(t)
//	if err := tester.LoadThemes(themesYAML); err != nil {
//		t.Fatal(err)
//	}
//	if err := tester.PumpWidget(root); err != nil {
//		t.Fatal(err)
//	}
//	if err := tester.Tap(trellistest.ByText("Submit")); err != nil {
//		t.Fatal(err)
//	}
//	tester.Pump()
//	if !tester.Find(trellistest.ByText("Submitted")).Exists() {
//		t.Error("no confirmation label")
//	}
//
// Widgets see frame time only through the fake clock. Advance it and pump
// to deliver an exact elapsed duration to every Update:
//
//	tester.Clock().Advance(250 * time.Millisecond)
//	tester.Pump()
//
// While a tester is live, diagnostics reported through the errors package
// (unresolved theme ids, unknown fonts) are kept on the tester and
// returned by Errors rather than logged.
//
// Snapshots record the widget tree and the last frame's draw calls as
// JSON. Set TRELLIS_UPDATE_SNAPSHOTS=1 to rewrite stored snapshots:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.json")
package testing
