package generator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
	"github.com/alexisbeaulieu97/passgen/internal/tui/components"
	"github.com/alexisbeaulieu97/passgen/internal/tui/toast"
)

// Update routes a message to the panel. Mouse messages reach the pointer
// document before hit-testing so an active drag sees every event.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case toast.DismissedMsg:
		m.toast.Update(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.focus == focusSlider && m.slider.HandleKey(msg) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate(m.focus)
	case key.Matches(msg, m.keys.Generate):
		return m.Generate()
	case key.Matches(msg, m.keys.Copy):
		return m.Copy()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.doc.Dispatch(msg)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if r, ok := m.locator.Rect(zoneTrack); ok {
		m.slider.SetTrack(r)
	}
	if m.slider.HandlePress(msg) {
		m.setFocus(focusSlider)
		return nil
	}

	for target := focusUppercase; target < focusCount; target++ {
		r, ok := m.locator.Rect(focusZones[target])
		if !ok || !r.Contains(msg.X, msg.Y) {
			continue
		}
		m.setFocus(target)
		return m.activate(target)
	}
	return nil
}

func (m *Model) activate(t focusTarget) tea.Cmd {
	switch t {
	case focusUppercase, focusLowercase, focusSymbols:
		m.toggle(focusClasses[t])
	case focusGenerate:
		return m.Generate()
	case focusCopy:
		return m.Copy()
	}
	return nil
}

// Generate replaces the password using the current options. A weak request
// still generates, after raising the advisory toast.
func (m *Model) Generate() tea.Cmd {
	var cmd tea.Cmd
	opts := m.opts
	classes := classList(opts)

	if opts.IsWeak() {
		cmd = m.toast.Danger(WeakMessage)
		m.logger.Warn(m.ctx, "weak password requested", "length", opts.Length, "classes", classes)
		m.publish(ports.EventPasswordWeak, "length", opts.Length, "classes", classes)
	}

	m.password = m.generate(opts)
	m.output.SetValue(m.password)
	score := m.meter.Rate(m.password)
	m.summary = components.SummaryFromOptions(opts)

	m.logger.Debug(m.ctx, "password generated", "length", len(m.password), "score", score)
	m.publish(ports.EventPasswordGenerated, "length", len(m.password), "classes", classes, "score", score)
	return cmd
}

// Copy writes the password to the clipboard.
func (m *Model) Copy() tea.Cmd {
	if m.password == "" {
		return m.toast.Info(NothingToCopy)
	}
	if m.clipboard == nil {
		m.logger.Warn(m.ctx, "no clipboard configured")
		return m.toast.Danger(CopyFailedMessage)
	}
	if err := m.clipboard.WriteAll(m.password); err != nil {
		m.logger.Error(m.ctx, "copy to clipboard failed", "error", err)
		m.publish(ports.EventClipboardFailed, "error", err.Error())
		return m.toast.Danger(CopyFailedMessage)
	}
	m.publish(ports.EventPasswordCopied, "length", len(m.password))
	return m.toast.Success(CopiedMessage)
}
