//go:build !(js && wasm)

package colorscheme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 60
)

// TerminalDetector asks the controlling terminal for its background color.
// It only runs when stdout is a TTY, since the query writes escape sequences.
type TerminalDetector struct {
	isTerminal        func() bool
	hasDarkBackground func() bool
}

// NewTerminalDetector creates a terminal background detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		hasDarkBackground: lipgloss.HasDarkBackground,
	}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.isTerminal()
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	return d.hasDarkBackground(), true
}
