package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how headless commands render.
type OutputMode int

const (
	// OutputModePlain is unstyled text, safe for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled uses lipgloss styling on interactive terminals.
	OutputModeStyled
)

// DetectOutputMode picks a rendering mode for w. The plain flag and the
// NO_COLOR convention both force plain output; otherwise styling is used
// when w is a terminal.
func DetectOutputMode(w io.Writer, plain bool) OutputMode {
	if plain || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if isTerminalWriter(w) {
		return OutputModeStyled
	}
	return OutputModePlain
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
