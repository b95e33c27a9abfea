package generator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/passgen/internal/tui/components"
)

// View renders the panel body. The caller frames it and scans zones.
func (m *Model) View() string {
	styles := m.theme.Styles
	sections := []string{
		styles.Label.Render(fmt.Sprintf("%s %d", LengthLabel, m.opts.Length)),
		m.slider.View(),
		"",
		m.checkbox(focusUppercase, UppercaseLabel, m.opts.IncludeUppercase),
		m.checkbox(focusLowercase, LowercaseLabel, m.opts.IncludeLowercase),
		"  " + styles.Muted.Render("[x] "+NumbersLabel),
		m.checkbox(focusSymbols, SymbolsLabel, m.opts.IncludeSymbols),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.button(focusGenerate, GenerateLabel),
			" ",
			m.button(focusCopy, CopyLabel),
		),
		styles.Output.Render(m.output.View()),
		m.meter.View(),
	}

	if line := components.NewSummary(m.summary).View(); line != "" {
		sections = append(sections, styles.Muted.Render(line))
	}
	if t := m.toast.View(); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

func (m *Model) checkbox(t focusTarget, label string, checked bool) string {
	styles := m.theme.Styles
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	text := styles.Checkbox.Render(box + " " + label)
	prefix := "  "
	if m.focus == t {
		prefix = styles.Focus.Render("▸ ")
		text = styles.Focus.Render(box + " " + label)
	}
	return prefix + m.locator.Mark(focusZones[t], text)
}

func (m *Model) button(t focusTarget, label string) string {
	style := m.theme.Styles.Button
	if m.focus == t {
		style = m.theme.Styles.ButtonFocused
	}
	return m.locator.Mark(focusZones[t], style.Render(label))
}
