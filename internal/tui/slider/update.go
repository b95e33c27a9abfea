package slider

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passgen/pkg/rangemath"
)

// HandlePress handles a mouse press at screen coordinates. It reports whether
// the press landed on the track. A press on the thumb starts a drag; a press
// elsewhere on the track moves the value to the pressed position.
func (m *Model) HandlePress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if m.props.Disabled || !m.track.Contains(msg.X, msg.Y) {
		return false
	}

	if msg.X == m.track.Left+m.thumbOffset(m.track.Width) {
		m.startDrag()
		return true
	}

	m.emit(m.valueAt(msg.X))
	return true
}

// HandleKey applies keyboard navigation while focused. It reports whether the
// key was consumed.
func (m *Model) HandleKey(msg tea.KeyMsg) bool {
	if !m.focused || m.props.Disabled {
		return false
	}

	v := m.props.Value
	switch {
	case key.Matches(msg, m.keys.Increase):
		m.emit(min(m.props.Max, v+1))
	case key.Matches(msg, m.keys.Decrease):
		m.emit(max(m.props.Min, v-1))
	case key.Matches(msg, m.keys.Home):
		m.emit(m.props.Min)
	case key.Matches(msg, m.keys.End):
		m.emit(m.props.Max)
	default:
		return false
	}
	return true
}

func (m *Model) startDrag() {
	if m.Dragging() {
		return
	}
	m.drag = m.doc.Subscribe(m.onPointer)
}

func (m *Model) endDrag() {
	if m.drag == nil {
		return
	}
	m.drag.Unsubscribe()
	m.drag = nil
}

func (m *Model) onPointer(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.endDrag()
	case tea.MouseActionMotion:
		if m.Dragging() {
			m.emit(m.valueAt(msg.X))
		}
	}
}

func (m *Model) valueAt(x int) int {
	v := rangemath.PositionToValue(
		float64(x),
		float64(m.track.Left),
		float64(m.track.Width),
		float64(m.props.Min),
		float64(m.props.Max),
	)
	return rangemath.Normalize(rangemath.Snap(v), m.props.Min, m.props.Max)
}
