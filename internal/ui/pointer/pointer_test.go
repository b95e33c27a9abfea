package pointer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func TestDocumentDispatchesToSubscribers(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	var seen []int
	doc.Subscribe(func(msg tea.MouseMsg) { seen = append(seen, msg.X) })
	doc.Subscribe(func(msg tea.MouseMsg) { seen = append(seen, msg.X*10) })

	doc.Dispatch(motion(3, 0))

	require.Equal(t, []int{3, 30}, seen)
	require.Equal(t, 2, doc.ListenerCount())
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	calls := 0
	sub := doc.Subscribe(func(tea.MouseMsg) { calls++ })
	other := doc.Subscribe(func(tea.MouseMsg) {})

	sub.Unsubscribe()
	sub.Unsubscribe()

	assert.False(t, sub.Active())
	assert.True(t, other.Active())
	assert.Equal(t, 1, doc.ListenerCount())

	doc.Dispatch(motion(1, 1))
	assert.Equal(t, 0, calls)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	calls := 0
	var sub Subscription
	sub = doc.Subscribe(func(tea.MouseMsg) {
		calls++
		sub.Unsubscribe()
	})

	doc.Dispatch(motion(0, 0))
	doc.Dispatch(motion(0, 0))

	require.Equal(t, 1, calls)
	require.Zero(t, doc.ListenerCount())
}

func TestNilDocumentAndHandler(t *testing.T) {
	t.Parallel()

	var doc *Document
	sub := doc.Subscribe(func(tea.MouseMsg) {})
	require.False(t, sub.Active())
	require.NotPanics(t, func() {
		sub.Unsubscribe()
		doc.Dispatch(motion(0, 0))
	})

	live := NewDocument()
	require.False(t, live.Subscribe(nil).Active())
	require.Zero(t, live.ListenerCount())
}
