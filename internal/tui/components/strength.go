package components

import (
	"fmt"

	"github.com/ccojocar/zxcvbn-go"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
)

// MaxScore is the highest zxcvbn score.
const MaxScore = 4

var scoreLabels = [MaxScore + 1]string{"Very weak", "Weak", "Fair", "Strong", "Very strong"}

// ScoreLabel names a zxcvbn score. Out of range scores are clamped.
func ScoreLabel(score int) string {
	return scoreLabels[max(0, min(MaxScore, score))]
}

// Score rates password from 0 to MaxScore.
func Score(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}

// StrengthMeter renders an estimate of how hard the current password is to
// guess.
type StrengthMeter struct {
	bar   progress.Model
	score int
	rated bool
	theme theme.Theme
}

// NewStrengthMeter creates a meter of the given bar width.
func NewStrengthMeter(width int, th theme.Theme) StrengthMeter {
	bar := progress.New(progress.WithSolidFill(string(th.Palette.Slate.Color(theme.Shade400))))
	bar.Width = width
	bar.ShowPercentage = false
	bar.EmptyColor = string(th.Palette.Slate.Color(theme.Shade200))
	return StrengthMeter{bar: bar, theme: th}
}

// Rate scores password. An empty password clears the meter.
func (m *StrengthMeter) Rate(password string) int {
	if password == "" {
		m.score, m.rated = 0, false
		return 0
	}
	m.score, m.rated = Score(password), true
	m.bar.FullColor = string(m.colour())
	return m.score
}

// Score returns the last computed score and whether one exists.
func (m StrengthMeter) Score() (int, bool) { return m.score, m.rated }

func (m StrengthMeter) colour() lipgloss.Color {
	p := m.theme.Palette
	switch {
	case m.score <= 1:
		return p.Red.Color(theme.Shade500)
	case m.score == 2:
		return p.Yellow.Color(theme.Shade500)
	default:
		return p.Green.Color(theme.Shade500)
	}
}

// View renders the bar followed by the score label.
func (m StrengthMeter) View() string {
	muted := m.theme.Styles.Muted
	if !m.rated {
		return lipgloss.JoinHorizontal(lipgloss.Left, m.bar.ViewAs(0), " ", muted.Render("Not rated"))
	}
	ratio := float64(m.score+1) / float64(MaxScore+1)
	label := lipgloss.NewStyle().Bold(true).Foreground(m.colour()).Render(fmt.Sprintf("%s (%d/%d)", ScoreLabel(m.score), m.score, MaxScore))
	return lipgloss.JoinHorizontal(lipgloss.Left, m.bar.ViewAs(ratio), " ", label)
}
