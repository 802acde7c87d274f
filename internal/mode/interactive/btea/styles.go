// ABOUTME: Lipgloss styles for the chat transcript, input line and footer

package btea

import "github.com/charmbracelet/lipgloss"

// ChatStyles holds the styles used by AppModel.View.
type ChatStyles struct {
	Banner lipgloss.Style
	Bot    lipgloss.Style
	Plain  lipgloss.Style
	Prompt lipgloss.Style
	User   lipgloss.Style
	Border lipgloss.Style
	Footer lipgloss.Style
	Cursor lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the built-in palette. Colors adapt to light and
// dark terminal backgrounds.
func DefaultStyles() ChatStyles {
	return ChatStyles{
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}),
		Bot:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "117"}),
		Plain:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"}),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "221"}),
		User:   lipgloss.NewStyle().Bold(true),
		Border: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}),
		Footer: lipgloss.NewStyle().Faint(true),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
