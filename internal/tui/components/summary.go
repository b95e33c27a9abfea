package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/passgen/pkg/password"
)

// ClassStatus reports whether a character class took part in generation.
type ClassStatus struct {
	Class    password.Class
	Included bool
}

// SummaryData describes the request that produced the current password.
type SummaryData struct {
	Length  int
	Weak    bool
	Classes []ClassStatus
}

// SummaryFromOptions builds summary data for opts in class order.
func SummaryFromOptions(opts password.Options) SummaryData {
	active := make(map[password.Class]bool)
	for _, c := range opts.ActiveClasses() {
		active[c] = true
	}
	all := []password.Class{password.ClassUppercase, password.ClassLowercase, password.ClassDigits, password.ClassSymbols}
	classes := make([]ClassStatus, 0, len(all))
	for _, c := range all {
		classes = append(classes, ClassStatus{Class: c, Included: active[c]})
	}
	return SummaryData{Length: opts.Length, Weak: opts.IsWeak(), Classes: classes}
}

// Summary renders a one-line description of a generation request.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Length == 0 && len(s.data.Classes) == 0 {
		return ""
	}

	parts := []string{fmt.Sprintf("%d chars", s.data.Length)}
	for _, c := range s.data.Classes {
		status := "✗"
		if c.Included {
			status = "✓"
		}
		parts = append(parts, fmt.Sprintf("%s %s", status, c.Class))
	}
	line := strings.Join(parts, "  ")
	if s.data.Weak {
		line += "  (weak)"
	}
	return line
}
