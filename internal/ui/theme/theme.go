// Package theme holds the colour palettes and derived lipgloss styles used by
// every passgen view. Components receive a Theme value; they never build
// colours themselves.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// NameLight selects the light palette.
	NameLight = "light"
	// NameDark selects the dark palette.
	NameDark = "dark"
)

const paletteShadeCount = 10

// PaletteShade indexes a shade scale from 50 (lightest) to 900 (darkest).
type PaletteShade int

const (
	Shade50 PaletteShade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// PaletteShades is a Tailwind-style colour scale.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a scale from colours ordered lightest to darkest.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at shade, or "" when out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette groups the colour families the UI draws from.
type ColorPalette struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
}

// Variant selects a semantic colour role.
type Variant int

const (
	VariantInfo Variant = iota
	VariantSuccess
	VariantWarning
	VariantDanger
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantSuccess:
		return "success"
	case VariantWarning:
		return "warning"
	case VariantDanger:
		return "danger"
	default:
		return "info"
	}
}

// ColourSet is the foreground/background/border triple of one variant.
type ColourSet struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
}

// Styles are the derived lipgloss styles shared by the panel and its controls.
type Styles struct {
	Card          lipgloss.Style
	Title         lipgloss.Style
	Label         lipgloss.Style
	Muted         lipgloss.Style
	Focus         lipgloss.Style
	Disabled      lipgloss.Style
	Track         lipgloss.Style
	Fill          lipgloss.Style
	Thumb         lipgloss.Style
	ThumbDragging lipgloss.Style
	Checkbox      lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Output        lipgloss.Style
}

// Theme bundles a palette with the styles derived from it.
type Theme struct {
	Name    string
	Palette ColorPalette
	Styles  Styles

	variants map[Variant]ColourSet
}

// Variant returns the colour set for v, falling back to info.
func (t Theme) Variant(v Variant) ColourSet {
	if set, ok := t.variants[v]; ok {
		return set
	}
	return t.variants[VariantInfo]
}

// Toast returns the bordered box style used for a notification of variant v.
func (t Theme) Toast(v Variant) lipgloss.Style {
	set := t.Variant(v)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(set.Border).
		Foreground(set.Foreground).
		Background(set.Background).
		Bold(true).
		Padding(0, 1)
}

// Names lists the selectable theme names.
func Names() []string {
	return []string{NameLight, NameDark}
}

// ByName resolves a theme by name, case-insensitively.
func ByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameLight:
		return Light(), nil
	case NameDark:
		return Dark(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (expected one of %s)", name, strings.Join(Names(), ", "))
	}
}

// Light returns the default theme.
func Light() Theme {
	return build(NameLight, defaultPalette(), false)
}

// Dark returns the dark theme.
func Dark() Theme {
	return build(NameDark, defaultPalette(), true)
}

func defaultPalette() ColorPalette {
	return ColorPalette{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Blue: NewPaletteShades(
			"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
			"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
		),
		Green: NewPaletteShades(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Red: NewPaletteShades(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Yellow: NewPaletteShades(
			"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15",
			"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
		),
	}
}

// pick chooses the light-background or dark-background shade for a role.
func pick(dark bool, shades PaletteShades, onLight, onDark PaletteShade) lipgloss.Color {
	if dark {
		return shades.Color(onDark)
	}
	return shades.Color(onLight)
}

func build(name string, p ColorPalette, dark bool) Theme {
	text := pick(dark, p.Slate, Shade900, Shade100)
	muted := pick(dark, p.Slate, Shade500, Shade400)
	faint := pick(dark, p.Slate, Shade300, Shade700)
	accent := pick(dark, p.Blue, Shade600, Shade400)
	surface := pick(dark, p.Slate, Shade50, Shade900)

	variants := map[Variant]ColourSet{
		VariantInfo: {
			Foreground: pick(dark, p.Blue, Shade800, Shade100),
			Background: pick(dark, p.Blue, Shade50, Shade900),
			Border:     accent,
		},
		VariantSuccess: {
			Foreground: pick(dark, p.Green, Shade800, Shade100),
			Background: pick(dark, p.Green, Shade50, Shade900),
			Border:     pick(dark, p.Green, Shade600, Shade400),
		},
		VariantWarning: {
			Foreground: pick(dark, p.Yellow, Shade800, Shade100),
			Background: pick(dark, p.Yellow, Shade50, Shade900),
			Border:     pick(dark, p.Yellow, Shade600, Shade400),
		},
		VariantDanger: {
			Foreground: pick(dark, p.Red, Shade800, Shade100),
			Background: pick(dark, p.Red, Shade50, Shade900),
			Border:     pick(dark, p.Red, Shade600, Shade400),
		},
	}

	styles := Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(1, 2),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:         lipgloss.NewStyle().Foreground(text),
		Muted:         lipgloss.NewStyle().Foreground(muted),
		Focus:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		Disabled:      lipgloss.NewStyle().Foreground(faint).Faint(true),
		Track:         lipgloss.NewStyle().Foreground(faint),
		Fill:          lipgloss.NewStyle().Foreground(accent),
		Thumb:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		ThumbDragging: lipgloss.NewStyle().Foreground(pick(dark, p.Blue, Shade800, Shade200)).Bold(true).Underline(true),
		Checkbox:      lipgloss.NewStyle().Foreground(text),
		Button: lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(faint).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(surface).
			Background(accent).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 2),
		Output: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(faint).
			Padding(0, 1),
	}

	return Theme{Name: name, Palette: p, Styles: styles, variants: variants}
}
