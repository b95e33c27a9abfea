package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/passgen/internal/tui/generator"
)

// View renders the framed panel, centred when the window size is known.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	styles := m.theme.Styles
	card := styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(generator.Title),
		"",
		m.panel.View(),
	))

	out := card
	if m.width > 0 && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}
