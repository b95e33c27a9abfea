package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/passgen/pkg/password"
)

func TestSummaryFromOptions(t *testing.T) {
	t.Parallel()

	data := SummaryFromOptions(password.Options{Length: 6, IncludeLowercase: true})
	require.Equal(t, 6, data.Length)
	require.True(t, data.Weak)
	require.Equal(t, []ClassStatus{
		{Class: password.ClassUppercase, Included: false},
		{Class: password.ClassLowercase, Included: true},
		{Class: password.ClassDigits, Included: true},
		{Class: password.ClassSymbols, Included: false},
	}, data.Classes)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("empty data renders nothing", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, NewSummary(SummaryData{}).View())
	})

	t.Run("lists classes and weakness", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryFromOptions(password.Options{Length: 6, IncludeSymbols: true})).View()
		require.Contains(t, view, "6 chars")
		require.Contains(t, view, "✓ numbers")
		require.Contains(t, view, "✓ symbols")
		require.Contains(t, view, "✗ uppercase")
		require.Contains(t, view, "(weak)")
	})

	t.Run("strong request has no weak marker", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryFromOptions(password.Options{Length: 12, IncludeUppercase: true})).View()
		require.NotContains(t, view, "(weak)")
	})
}
