package generator

import "github.com/alexisbeaulieu97/passgen/pkg/password"

type focusTarget int

const (
	focusSlider focusTarget = iota
	focusUppercase
	focusLowercase
	focusSymbols
	focusGenerate
	focusCopy
	focusCount
)

var focusZones = map[focusTarget]string{
	focusUppercase: zoneUppercase,
	focusLowercase: zoneLowercase,
	focusSymbols:   zoneSymbols,
	focusGenerate:  zoneGenerate,
	focusCopy:      zoneCopy,
}

var focusClasses = map[focusTarget]password.Class{
	focusUppercase: password.ClassUppercase,
	focusLowercase: password.ClassLowercase,
	focusSymbols:   password.ClassSymbols,
}

func (m *Model) focusable(t focusTarget) bool {
	return t != focusSlider || m.slider.Focusable()
}

// moveFocus steps through the focus ring by delta, skipping targets that
// cannot take focus.
func (m *Model) moveFocus(delta int) {
	next := m.focus
	for i := 0; i < int(focusCount); i++ {
		next = focusTarget((int(next) + delta + int(focusCount)) % int(focusCount))
		if m.focusable(next) {
			break
		}
	}
	m.focus = next
	m.applyFocus()
}

func (m *Model) setFocus(t focusTarget) {
	if !m.focusable(t) {
		return
	}
	m.focus = t
	m.applyFocus()
}

func (m *Model) applyFocus() {
	if m.focus == focusSlider {
		m.slider.Focus()
		return
	}
	m.slider.Blur()
}
