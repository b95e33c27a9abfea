package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to light", input: "", want: NameLight},
		{name: "light", input: "light", want: NameLight},
		{name: "case insensitive dark", input: " Dark ", want: NameDark},
		{name: "unknown", input: "neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ByName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "neon")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Name)
		})
	}
}

func TestPaletteShadesBounds(t *testing.T) {
	t.Parallel()

	shades := NewPaletteShades("#000", "#111")
	assert.Equal(t, lipgloss.Color("#000"), shades.Color(Shade50))
	assert.Equal(t, lipgloss.Color("#111"), shades.Color(Shade100))
	assert.Equal(t, lipgloss.Color(""), shades.Color(Shade900))
	assert.Equal(t, lipgloss.Color(""), shades.Color(PaletteShade(42)))
}

func TestThemesDifferInForeground(t *testing.T) {
	t.Parallel()

	light, dark := Light(), Dark()
	assert.NotEqual(t, light.Styles.Label.GetForeground(), dark.Styles.Label.GetForeground())
	assert.NotEqual(t, light.Variant(VariantDanger).Border, dark.Variant(VariantDanger).Border)
}

func TestVariantFallsBackToInfo(t *testing.T) {
	t.Parallel()

	th := Light()
	assert.Equal(t, th.Variant(VariantInfo), th.Variant(Variant(99)))
	assert.Equal(t, "danger", VariantDanger.String())
	assert.Equal(t, "info", Variant(99).String())
}

func TestToastStyleRendersText(t *testing.T) {
	t.Parallel()

	out := Light().Toast(VariantSuccess).Render("Copied!")
	assert.Contains(t, out, "Copied!")
}
