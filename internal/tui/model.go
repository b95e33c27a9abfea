package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/passgen/internal/tui/generator"
	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
)

// Model is the application shell. It frames the generator panel in the
// active theme and owns the program-level concerns: window size, zone
// scanning and quitting.
type Model struct {
	panel    *generator.Model
	theme    theme.Theme
	zones    *zone.Manager
	keys     generator.KeyMap
	width    int
	height   int
	quitting bool
}

// Options configures the shell.
type Options struct {
	Theme theme.Theme
	// Zones enables mouse hit-testing. Nil disables mouse targets.
	Zones *zone.Manager
}

// NewModel builds the shell and its panel. Panel options are applied after
// the shell's own theme and locator options so callers can override them.
func NewModel(props generator.Props, opts Options, panelOpts ...generator.Option) Model {
	if opts.Theme.Name == "" {
		opts.Theme = theme.Light()
	}

	base := []generator.Option{generator.WithTheme(opts.Theme)}
	if opts.Zones != nil {
		base = append(base, generator.WithLocator(generator.NewZoneLocator(opts.Zones)))
	}

	return Model{
		panel: generator.New(props, append(base, panelOpts...)...),
		theme: opts.Theme,
		zones: opts.Zones,
		keys:  generator.DefaultKeyMap(),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Panel exposes the mounted generator panel.
func (m Model) Panel() *generator.Model {
	return m.panel
}

// Quitting reports whether the shell has begun shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}
