// Package tui provides the terminal user interface: live generation progress
// and scheme previews.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinge-cli/tinge/scheme"
	"golang.org/x/term"
)

// Generate runs the scheme pipeline for one image, rendering stage progress
// while it works. Plain, non-animated output is used when stdout is not a
// terminal.
func Generate(path string, params scheme.Params) (*scheme.Scheme, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return scheme.Generate(path, params)
	}

	bubble := newGenerateBubble(path, params)

	if _, err := tea.NewProgram(bubble).Run(); err != nil {
		return nil, err
	}

	return bubble.scheme, bubble.err
}
