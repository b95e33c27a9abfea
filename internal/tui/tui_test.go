package tui

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/passgen/internal/tui/generator"
	"github.com/alexisbeaulieu97/passgen/internal/tui/slider"
	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
	"github.com/alexisbeaulieu97/passgen/pkg/password"
)

func newShell(t *testing.T, opts Options) Model {
	t.Helper()
	return NewModel(generator.Props{}, opts,
		generator.WithGenerator(password.NewGenerator(rand.NewPCG(1, 2))),
	)
}

func TestNewModelDefaultsToLightTheme(t *testing.T) {
	t.Parallel()

	m := newShell(t, Options{})
	require.Equal(t, theme.NameLight, m.theme.Name)
	require.NotNil(t, m.Panel())
	require.Nil(t, m.Init())
}

func TestViewFramesPanel(t *testing.T) {
	t.Parallel()

	m := newShell(t, Options{Theme: theme.Dark(), Zones: zone.New()})
	view := m.View()
	require.Contains(t, view, generator.Title)
	require.Contains(t, view, generator.Placeholder)
}

func TestWindowSizeIsRecorded(t *testing.T) {
	t.Parallel()

	m := newShell(t, Options{})
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 50, m.height)
	require.Contains(t, m.View(), generator.Title)
}

func TestKeysAreForwardedToPanel(t *testing.T) {
	t.Parallel()

	m := newShell(t, Options{})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = updated.(Model)
	require.Len(t, m.Panel().Password(), 12)
}

func TestQuitClosesPanel(t *testing.T) {
	t.Parallel()

	m := NewModel(generator.Props{}, Options{},
		generator.WithLocator(generator.StaticLocator{
			"passgen-track": slider.Rect{Left: 0, Top: 0, Width: 32, Height: 1},
		}),
	)

	// 12 in [4, 20] puts the thumb at round(0.5 * 31) = 16.
	updated, _ := m.Update(tea.MouseMsg{X: 16, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	require.True(t, m.Panel().Slider().Dragging())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, m.Quitting())
	require.False(t, m.Panel().Slider().Dragging())
	require.Zero(t, m.Panel().Document().ListenerCount())
	require.Empty(t, m.View())
}
