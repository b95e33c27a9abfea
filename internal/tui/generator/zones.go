package generator

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/passgen/internal/tui/slider"
)

const (
	zoneTrack     = "passgen-track"
	zoneUppercase = "passgen-uppercase"
	zoneLowercase = "passgen-lowercase"
	zoneSymbols   = "passgen-symbols"
	zoneGenerate  = "passgen-generate"
	zoneCopy      = "passgen-copy"
)

// Locator marks rendered regions and resolves them to screen rectangles
// after the frame was drawn.
type Locator interface {
	Mark(id, s string) string
	Rect(id string) (slider.Rect, bool)
}

// ZoneLocator resolves regions with a bubblezone manager. The manager's
// Scan must run on the final frame.
type ZoneLocator struct {
	manager *zone.Manager
}

// NewZoneLocator wraps manager.
func NewZoneLocator(manager *zone.Manager) ZoneLocator {
	return ZoneLocator{manager: manager}
}

// Mark implements Locator.
func (l ZoneLocator) Mark(id, s string) string {
	if l.manager == nil {
		return s
	}
	return l.manager.Mark(id, s)
}

// Rect implements Locator. Zone end coordinates are inclusive.
func (l ZoneLocator) Rect(id string) (slider.Rect, bool) {
	if l.manager == nil {
		return slider.Rect{}, false
	}
	info := l.manager.Get(id)
	if info == nil || info.IsZero() {
		return slider.Rect{}, false
	}
	return slider.Rect{
		Left:   info.StartX,
		Top:    info.StartY,
		Width:  info.EndX - info.StartX + 1,
		Height: info.EndY - info.StartY + 1,
	}, true
}

// StaticLocator resolves regions from a fixed table and leaves rendered
// output untouched.
type StaticLocator map[string]slider.Rect

// Mark implements Locator.
func (StaticLocator) Mark(_ string, s string) string { return s }

// Rect implements Locator.
func (l StaticLocator) Rect(id string) (slider.Rect, bool) {
	r, ok := l[id]
	return r, ok
}
