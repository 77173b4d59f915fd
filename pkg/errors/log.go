package errors

import (
	"log"
	"os"
)

// LogHandler is an ErrorHandler that logs errors, to stderr unless Logger is set.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger receives the output. Nil means a stderr logger.
	Logger *log.Logger
}

var stderrLogger = log.New(os.Stderr, "", log.LstdFlags)

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return stderrLogger
}

// HandleError logs a TrellisError.
func (h *LogHandler) HandleError(err *TrellisError) {
	if err == nil {
		return
	}
	l := h.logger()
	l.Printf("[trellis %s] %s: %v", err.Kind, err.Op, err.Err)
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[trellis panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[trellis panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
