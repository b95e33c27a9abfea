// Package toast shows short-lived, non-blocking notices.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
)

// DefaultDuration is how long a toast stays up when none is configured.
const DefaultDuration = 3 * time.Second

// Toast is a single notice.
type Toast struct {
	Message string
	Variant theme.Variant
}

// DismissedMsg is delivered when the toast with ID has timed out.
type DismissedMsg struct {
	ID int
}

// Model holds at most one visible toast. A newer toast replaces the current
// one and the older timer is ignored when it fires.
type Model struct {
	current  *Toast
	seq      int
	duration time.Duration
	theme    theme.Theme
}

// New creates a toast model. A non-positive duration uses DefaultDuration.
func New(duration time.Duration, th theme.Theme) *Model {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Model{duration: duration, theme: th}
}

// SetTheme updates the styles used by View.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// Show displays message and returns the command that dismisses it.
func (m *Model) Show(message string, variant theme.Variant) tea.Cmd {
	m.seq++
	id := m.seq
	m.current = &Toast{Message: message, Variant: variant}
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return DismissedMsg{ID: id}
	})
}

// Info shows an informational toast.
func (m *Model) Info(message string) tea.Cmd { return m.Show(message, theme.VariantInfo) }

// Success shows a success toast.
func (m *Model) Success(message string) tea.Cmd { return m.Show(message, theme.VariantSuccess) }

// Danger shows an error toast.
func (m *Model) Danger(message string) tea.Cmd { return m.Show(message, theme.VariantDanger) }

// Update handles dismissal messages.
func (m *Model) Update(msg tea.Msg) {
	if dismissed, ok := msg.(DismissedMsg); ok && dismissed.ID == m.seq {
		m.current = nil
	}
}

// Current returns the visible toast, if any.
func (m *Model) Current() (Toast, bool) {
	if m.current == nil {
		return Toast{}, false
	}
	return *m.current, true
}

// Visible reports whether a toast is showing.
func (m *Model) Visible() bool { return m.current != nil }

// Dismiss hides the current toast immediately.
func (m *Model) Dismiss() { m.current = nil }

// View renders the current toast, or "" when none is visible.
func (m *Model) View() string {
	if m.current == nil {
		return ""
	}
	return m.theme.Toast(m.current.Variant).Render(icon(m.current.Variant) + m.current.Message)
}

func icon(v theme.Variant) string {
	switch v {
	case theme.VariantSuccess:
		return "✓ "
	case theme.VariantWarning:
		return "! "
	case theme.VariantDanger:
		return "✗ "
	default:
		return "i "
	}
}
