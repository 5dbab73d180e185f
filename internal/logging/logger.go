package logging

import (
	"io"
	"log"
	"os"
)

// New returns a logger writing to stdout with a consistent component prefix.
func New(component string) *log.Logger {
	return NewWithWriter(component, os.Stdout)
}

// NewWithWriter is New with an explicit destination, used by tests to capture output.
func NewWithWriter(component string, w io.Writer) *log.Logger {
	prefix := component
	if prefix != "" {
		prefix = "[" + component + "] "
	}

	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}
