package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// StatusWriter returns f when it is a terminal, otherwise nil. Live status
// lines rewrite themselves with \r and only make sense on a terminal.
func StatusWriter(f *os.File) io.Writer {
	if !IsTerminal(f) {
		return nil
	}
	return f
}
