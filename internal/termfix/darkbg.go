// ABOUTME: Settles the terminal background before BubbleTea's init() can send OSC queries
// ABOUTME: Import with _ ahead of any package that imports bubbletea; GROCER_THEME=light flips it

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// An explicit background stops lipgloss from querying the terminal;
	// late OSC 10/11 replies would otherwise land in the input line.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(darkBackground(os.Getenv("GROCER_THEME")))
}

func darkBackground(theme string) bool {
	return !strings.EqualFold(strings.TrimSpace(theme), "light")
}
