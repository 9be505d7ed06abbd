// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var isTerminalFunc = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return isTerminalFunc(int(os.Stdin.Fd())) && isTerminalFunc(int(os.Stdout.Fd()))
}

// IsTerminalWriter reports whether w is a file attached to a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFunc(int(f.Fd()))
}

// ColorEnabled decides whether output to w should be colored. An explicit
// setting wins; otherwise color follows terminal detection and NO_COLOR.
func ColorEnabled(setting *bool, w io.Writer) bool {
	if setting != nil {
		return *setting
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminalWriter(w)
}
