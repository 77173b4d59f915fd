package errors

import (
	"bytes"
	stderrors "errors"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTrellisErrorString(t *testing.T) {
	err := &TrellisError{
		Op:   "theme.Load",
		Kind: KindConfig,
		Err:  &ConfigError{Source: "theme.yml", Theme: "root", Field: "layout", Err: stderrors.New("bad value")},
	}
	got := err.Error()
	want := `theme.Load [config]: theme.yml: theme "root": field layout: bad value`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTrellisErrorUnwrap(t *testing.T) {
	inner := &ConfigError{Err: stderrors.New("boom")}
	err := &TrellisError{Op: "theme.Parse", Kind: KindConfig, Err: inner}

	var cfg *ConfigError
	if !stderrors.As(err, &cfg) {
		t.Fatal("expected errors.As to find *ConfigError")
	}
	if cfg != inner {
		t.Error("unwrapped a different ConfigError")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindTopology, "topology"},
		{KindResolution, "resolution"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTopologyErrorString(t *testing.T) {
	err := &TopologyError{Op: "core.Get", Handle: 7, Reason: "no such widget"}
	if got := err.Error(); got != "core.Get: handle 7: no such widget" {
		t.Errorf("Error() = %q", got)
	}
	err = &TopologyError{Op: "core.WidgetAs", Handle: -1, Reason: "wrong kind"}
	if got := err.Error(); got != "core.WidgetAs: wrong kind" {
		t.Errorf("Error() = %q", got)
	}
}

func TestResolutionErrorString(t *testing.T) {
	err := &ResolutionError{Parent: 3, ParentTheme: "root.panel", Partial: "slider", Kind: "Button"}
	got := err.Error()
	for _, want := range []string{`"slider"`, `"root.panel"`, "handle 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, should contain %q", got, want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got := err.Error(); got != "panic: test panic" {
		t.Errorf("PanicError.Error() = %q", got)
	}
	err.Op = "core.Dispatch"
	if got := err.Error(); got != "panic in core.Dispatch: test panic" {
		t.Errorf("PanicError.Error() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *TrellisError
	prev := SetHandler(&testHandler{onError: func(err *TrellisError) { captured = err }})
	defer SetHandler(prev)

	Report(&TrellisError{Op: "test.op", Kind: KindResolution, Err: &ResolutionError{Partial: "x"}})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{onError: func(*TrellisError) { called = true }})
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v", captured.Value)
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q", captured.Op)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Logger: log.New(&buf, "", 0)}

	h.HandleError(&TrellisError{Op: "core.AddChild", Kind: KindResolution, Err: stderrors.New("no match"), StackTrace: "frame"})
	h.HandlePanic(&PanicError{Op: "core.Dispatch", Value: "boom"})

	out := buf.String()
	for _, want := range []string{"[trellis resolution] core.AddChild: no match", "Stack trace:\nframe", "[trellis panic] core.Dispatch: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*TrellisError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *TrellisError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
