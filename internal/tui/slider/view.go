package slider

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	trackRune = "─"
	fillRune  = "━"
	thumbRune = "●"
)

// View renders the track above a "min value max" legend.
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.TrackView(), m.LegendView())
}

// TrackView renders the track line alone.
func (m *Model) TrackView() string {
	styles := m.theme.Styles
	fill, track, thumb := styles.Fill, styles.Track, styles.Thumb
	if m.Dragging() {
		thumb = styles.ThumbDragging
	}
	if m.props.Disabled {
		fill, track, thumb = styles.Disabled, styles.Disabled, styles.Disabled
	}

	offset := m.thumbOffset(m.width)
	line := fill.Render(strings.Repeat(fillRune, offset)) +
		thumb.Render(thumbRune) +
		track.Render(strings.Repeat(trackRune, m.width-offset-1))

	if m.marker != nil {
		line = m.marker(line)
	}
	if m.focused {
		return styles.Focus.Render("▸") + line
	}
	return " " + line
}

// LegendView renders the min, current and max values spread across the track.
func (m *Model) LegendView() string {
	style := m.theme.Styles.Muted
	if m.props.Disabled {
		style = m.theme.Styles.Disabled
	}

	lo := strconv.Itoa(m.props.Min)
	hi := strconv.Itoa(m.props.Max)
	now := strconv.Itoa(m.props.Value)

	gap := m.width - len(lo) - len(hi) - len(now)
	if gap < 2 {
		return " " + style.Render(lo+" "+now+" "+hi)
	}
	left := gap / 2
	return " " + style.Render(lo+strings.Repeat(" ", left)+now+strings.Repeat(" ", gap-left)+hi)
}
