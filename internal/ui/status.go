package ui

import (
	"os"

	"github.com/amonks/journey/board"
	"golang.org/x/term"
)

const (
	ansiBold   = "\x1b[1m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiGray   = "\x1b[90m"
	ansiReset  = "\x1b[0m"
)

// Checkbox renders a task's completion checkbox.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// HighlightStatus returns a status label coloured for the terminal.
func HighlightStatus(status board.Status) string {
	return highlightStatus(status, ansiEnabled())
}

func highlightStatus(status board.Status, enabled bool) string {
	label := status.Label()
	if !enabled {
		return label
	}
	switch status {
	case board.StatusInProgress:
		return ansiBold + ansiYellow + label + ansiReset
	case board.StatusCompleted:
		return ansiGreen + label + ansiReset
	default:
		return ansiGray + label + ansiReset
	}
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
