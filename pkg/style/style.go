// Package style holds the lipgloss styles for terminal output
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// GroupHeaderStyle renders the [group] header lines
	GroupHeaderStyle = lipgloss.NewStyle().Bold(true)

	// PathStyle renders workspace-relative package paths dimmed next to
	// the package name
	PathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// DisableColorsIfNotTTY downgrades rendering to plain text when stdout is
// not a terminal, so piped list output stays clean
func DisableColorsIfNotTTY() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
