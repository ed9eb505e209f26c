package core

import (
	"fmt"
	"io"
	"sync"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// WriterLogger implements Logger by formatting messages onto an io.Writer
type WriterLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

// Printf implements core.Logger interface
func (l *WriterLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements core.Logger interface
func (NopLogger) Printf(format string, args ...interface{}) {}
