// Package rangemath maps values between a closed integer range, a percentage
// scale, and a horizontal track measured in terminal cells.
package rangemath

import (
	"cmp"
	"math"
)

// Normalize clamps value into [lo, hi]. Callers guarantee lo <= hi; when they
// do not, the result is lo.
func Normalize[T cmp.Ordered](value, lo, hi T) T {
	return max(lo, min(hi, value))
}

// ValueToPercent converts value to its position on a 0-100 scale over [lo, hi].
// A degenerate range (lo == hi) always reports 0.
func ValueToPercent(value, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (value - lo) / (hi - lo) * 100
}

// PercentToValue is the inverse of ValueToPercent. A degenerate range always
// yields lo.
func PercentToValue(percent, lo, hi float64) float64 {
	if hi == lo {
		return lo
	}
	return lo + percent/100*(hi-lo)
}

// PositionToValue projects a pointer column onto a track starting at trackLeft
// and spanning trackWidth cells. The percentage is clamped to [0, 100] first, so
// the result stays inside [lo, hi] for pointers beyond either end of the track.
func PositionToValue(pointerX, trackLeft, trackWidth, lo, hi float64) float64 {
	if trackWidth <= 0 {
		return lo
	}
	percent := Normalize((pointerX-trackLeft)/trackWidth*100, 0, 100)
	return PercentToValue(percent, lo, hi)
}

// Snap rounds v to the nearest integer, halves away from zero.
func Snap(v float64) int {
	return int(math.Round(v))
}
