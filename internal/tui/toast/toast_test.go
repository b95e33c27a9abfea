package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
)

func TestShowAndDismiss(t *testing.T) {
	t.Parallel()

	m := New(time.Millisecond, theme.Light())
	require.False(t, m.Visible())
	require.Empty(t, m.View())

	cmd := m.Danger("Vulnerable password, please use it carefully")
	require.NotNil(t, cmd)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, theme.VariantDanger, current.Variant)
	assert.Contains(t, m.View(), "Vulnerable password")

	m.Update(cmd())
	assert.False(t, m.Visible())
}

func TestStaleDismissalIsIgnored(t *testing.T) {
	t.Parallel()

	m := New(time.Millisecond, theme.Dark())
	first := m.Info("first")
	m.Success("Copied!")

	m.Update(first())

	current, ok := m.Current()
	require.True(t, ok, "older timer must not hide the newer toast")
	assert.Equal(t, "Copied!", current.Message)
}

func TestDefaultsAndDismiss(t *testing.T) {
	t.Parallel()

	m := New(0, theme.Light())
	assert.Equal(t, DefaultDuration, m.duration)

	m.Info("hello")
	m.Dismiss()
	assert.False(t, m.Visible())
	assert.Equal(t, "i ", icon(theme.VariantInfo))
	assert.Equal(t, "! ", icon(theme.VariantWarning))
}
