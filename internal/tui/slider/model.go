// Package slider implements a controlled range slider for bubbletea programs.
//
// The owner holds the value. The slider reports change intents through
// Props.OnChange and only reflects a new value after the owner calls
// SetValue. Dragging is tracked with a pointer.Subscription so release and
// motion events are observed anywhere on screen, not just over the track.
package slider

import (
	"github.com/alexisbeaulieu97/passgen/internal/ui/pointer"
	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
	"github.com/alexisbeaulieu97/passgen/pkg/rangemath"
)

// DefaultLabel is the accessible name used when Props.AriaLabel is empty.
const DefaultLabel = "Slider"

// DefaultWidth is the rendered track width in cells.
const DefaultWidth = 32

// Props is the public contract of the slider.
type Props struct {
	Min       int
	Max       int
	Value     int
	OnChange  func(int)
	AriaLabel string
	Disabled  bool
}

// Rect is a bounding box in screen cells.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.Width > 0 && r.Height > 0 &&
		x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

// Descriptor is the slider's accessibility description.
type Descriptor struct {
	Role     string
	ValueMin int
	ValueMax int
	ValueNow int
	Label    string
	TabIndex int
}

// Model is a slider instance. It must be used through a pointer.
type Model struct {
	props   Props
	doc     *pointer.Document
	drag    pointer.Subscription
	track   Rect
	width   int
	focused bool
	theme   theme.Theme
	keys    KeyMap
	marker  func(string) string
}

// New creates a slider bound to doc for drag tracking.
func New(doc *pointer.Document, props Props) *Model {
	m := &Model{
		doc:   doc,
		width: DefaultWidth,
		theme: theme.Light(),
		keys:  DefaultKeyMap(),
	}
	m.SetProps(props)
	return m
}

// SetProps replaces the props. Disabling the slider ends any drag and drops
// focus.
func (m *Model) SetProps(props Props) {
	if props.AriaLabel == "" {
		props.AriaLabel = DefaultLabel
	}
	m.props = props
	if props.Disabled {
		m.endDrag()
		m.focused = false
	}
}

// Props returns the current props.
func (m *Model) Props() Props { return m.props }

// SetValue is called by the owner after it accepts a change intent.
func (m *Model) SetValue(v int) { m.props.Value = v }

// Value returns the value last supplied by the owner.
func (m *Model) Value() int { return m.props.Value }

// Dragging reports whether a drag is in progress.
func (m *Model) Dragging() bool { return m.drag != nil && m.drag.Active() }

// SetTrack records where the track was last drawn on screen.
func (m *Model) SetTrack(r Rect) { m.track = r }

// Track returns the last recorded track bounds.
func (m *Model) Track() Rect { return m.track }

// SetWidth sets the rendered track width in cells.
func (m *Model) SetWidth(w int) {
	if w < 2 {
		w = 2
	}
	m.width = w
}

// Width returns the rendered track width.
func (m *Model) Width() int { return m.width }

// SetTheme changes the styles used by View.
func (m *Model) SetTheme(t theme.Theme) { m.theme = t }

// SetMarker installs a function applied to the rendered track line, used to
// register the track as a mouse zone.
func (m *Model) SetMarker(fn func(string) string) { m.marker = fn }

// Focusable reports whether the slider can take keyboard focus.
func (m *Model) Focusable() bool { return !m.props.Disabled }

// Focus gives the slider keyboard focus if it is focusable.
func (m *Model) Focus() {
	if m.Focusable() {
		m.focused = true
	}
}

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the slider has keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// Accessibility describes the slider for assistive output.
func (m *Model) Accessibility() Descriptor {
	tab := 0
	if m.props.Disabled {
		tab = -1
	}
	return Descriptor{
		Role:     "slider",
		ValueMin: m.props.Min,
		ValueMax: m.props.Max,
		ValueNow: m.props.Value,
		Label:    m.props.AriaLabel,
		TabIndex: tab,
	}
}

// Close releases the drag subscription, if any. Call it when the slider is
// removed from the screen.
func (m *Model) Close() { m.endDrag() }

func (m *Model) percent() float64 {
	v := rangemath.Normalize(m.props.Value, m.props.Min, m.props.Max)
	return rangemath.ValueToPercent(float64(v), float64(m.props.Min), float64(m.props.Max))
}

// thumbOffset is the thumb's cell index within a track of the given width.
func (m *Model) thumbOffset(width int) int {
	if width <= 1 {
		return 0
	}
	return rangemath.Snap(m.percent() / 100 * float64(width-1))
}

func (m *Model) emit(v int) {
	if v == m.props.Value || m.props.OnChange == nil {
		return
	}
	m.props.OnChange(v)
}
