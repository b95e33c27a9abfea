package rangemath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{name: "inside", value: 12, want: 12},
		{name: "below", value: -3, want: 4},
		{name: "above", value: 99, want: 20},
		{name: "at min", value: 4, want: 4},
		{name: "at max", value: 20, want: 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Normalize(tc.value, 4, 20))
		})
	}

	require.InDelta(t, 0.5, Normalize(0.5, 0.0, 1.0), 1e-9)
}

func TestPercentRoundTrip(t *testing.T) {
	t.Parallel()

	ranges := [][2]int{{0, 100}, {4, 20}, {8, 32}, {-10, 10}, {0, 1}}
	for _, r := range ranges {
		lo, hi := float64(r[0]), float64(r[1])
		for v := r[0]; v <= r[1]; v++ {
			percent := ValueToPercent(float64(v), lo, hi)
			require.GreaterOrEqual(t, percent, 0.0)
			require.LessOrEqual(t, percent, 100.0)
			require.Equal(t, v, Snap(PercentToValue(percent, lo, hi)), "range %v value %d", r, v)
		}
	}
}

func TestValueToPercent(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 50.0, ValueToPercent(50, 0, 100), 1e-9)
	require.InDelta(t, 25.0, ValueToPercent(8, 4, 20), 1e-9)
	require.InDelta(t, 0.0, ValueToPercent(4, 4, 20), 1e-9)
	require.InDelta(t, 100.0, ValueToPercent(20, 4, 20), 1e-9)
}

func TestDegenerateRange(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, ValueToPercent(7, 7, 7))
	require.Equal(t, 7.0, PercentToValue(80, 7, 7))
	require.Equal(t, 7.0, PositionToValue(150, 100, 200, 7, 7))
}

func TestPositionToValue(t *testing.T) {
	t.Parallel()

	t.Run("maps track fractions", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 25, Snap(PositionToValue(150, 100, 200, 0, 100)))
		require.Equal(t, 75, Snap(PositionToValue(250, 100, 200, 0, 100)))
		require.Equal(t, 50, Snap(PositionToValue(200, 100, 200, 0, 100)))
	})

	t.Run("clamps pointers outside the track", func(t *testing.T) {
		t.Parallel()
		for x := -500; x <= 800; x += 7 {
			got := PositionToValue(float64(x), 100, 200, 4, 20)
			require.GreaterOrEqual(t, got, 4.0)
			require.LessOrEqual(t, got, 20.0)
		}
		require.Equal(t, 4.0, PositionToValue(0, 100, 200, 4, 20))
		require.Equal(t, 20.0, PositionToValue(1000, 100, 200, 4, 20))
	})

	t.Run("zero width track yields min", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 4.0, PositionToValue(10, 0, 0, 4, 20))
	})
}

func TestSnap(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, Snap(2.5))
	require.Equal(t, 2, Snap(2.49))
	require.Equal(t, -3, Snap(-2.5))
	require.Equal(t, 0, Snap(0.2))
}
