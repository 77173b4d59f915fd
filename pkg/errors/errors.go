// Package errors provides structured error handling for trellis.
//
// Configuration problems are returned to callers as *TrellisError values with
// KindConfig. Resolution shortfalls during tree construction are recoverable
// and are reported through the global ErrorHandler instead of being returned.
// Topology misuse panics with a *TopologyError.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a malformed theme description.
	KindConfig
	// KindTopology indicates misuse of widget handles or downcasts.
	KindTopology
	// KindResolution indicates a theme id with no attachment point.
	KindResolution
	// KindRender indicates a renderer backend failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTopology:
		return "topology"
	case KindResolution:
		return "resolution"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TrellisError represents a structured error in trellis.
type TrellisError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TrellisError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TrellisError) Unwrap() error {
	return e.Err
}

// ConfigError describes a problem in a theme description.
type ConfigError struct {
	// Source names where the description came from, usually a file path.
	Source string
	// Theme is the fully-qualified theme id being decoded, if known.
	Theme string
	// Field is the offending field, if known.
	Field string
	// Err is the underlying decode or validation error.
	Err error
}

func (e *ConfigError) Error() string {
	msg := ""
	if e.Source != "" {
		msg = e.Source + ": "
	}
	if e.Theme != "" {
		msg += fmt.Sprintf("theme %q: ", e.Theme)
	}
	if e.Field != "" {
		msg += fmt.Sprintf("field %s: ", e.Field)
	}
	return msg + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ResolutionError reports a child whose theme id matched no attachment point
// beneath the requested parent. The child is still attached at Parent.
type ResolutionError struct {
	// Parent is the handle passed to AddChild.
	Parent int
	// ParentTheme is the parent's fully-resolved theme id.
	ParentTheme string
	// Partial is the child's unresolved theme id.
	Partial string
	// Kind is the child's widget kind.
	Kind string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no theme for %s %q under %q (handle %d); attaching unresolved",
		e.Kind, e.Partial, e.ParentTheme, e.Parent)
}

// TopologyError is the panic value raised on handle or downcast misuse.
type TopologyError struct {
	// Op is the tree operation that detected the problem.
	Op string
	// Handle is the offending handle, or -1 when not applicable.
	Handle int
	// Reason describes the violated invariant.
	Reason string
}

func (e *TopologyError) Error() string {
	if e.Handle >= 0 {
		return fmt.Sprintf("%s: handle %d: %s", e.Op, e.Handle, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by trellis.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *TrellisError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
