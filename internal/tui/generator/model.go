// Package generator implements the password generator panel: a length
// slider, character class toggles, Generate and Copy actions, a read-only
// output field and a strength meter.
package generator

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	logginginfra "github.com/alexisbeaulieu97/passgen/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/passgen/internal/ports"
	"github.com/alexisbeaulieu97/passgen/internal/tui/components"
	"github.com/alexisbeaulieu97/passgen/internal/tui/slider"
	"github.com/alexisbeaulieu97/passgen/internal/tui/toast"
	"github.com/alexisbeaulieu97/passgen/internal/ui/pointer"
	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
	"github.com/alexisbeaulieu97/passgen/pkg/password"
	"github.com/alexisbeaulieu97/passgen/pkg/rangemath"
)

const (
	DefaultMinLength     = 4
	DefaultMaxLength     = 20
	DefaultDefaultLength = 12
)

// UI text.
const (
	Title             = "Password Generator"
	LengthLabel       = "Password Length:"
	UppercaseLabel    = "Include Uppercase Letters"
	LowercaseLabel    = "Include Lowercase Letters"
	NumbersLabel      = "Include Numbers"
	SymbolsLabel      = "Include Symbols"
	GenerateLabel     = "Generate"
	CopyLabel         = "Copy"
	Placeholder       = `Click "Generate" to start`
	WeakMessage       = "Vulnerable password, please use it carefully"
	CopiedMessage     = "Copied!"
	NothingToCopy     = "Nothing to copy yet"
	CopyFailedMessage = "Could not copy to clipboard"
)

// Props configures the panel. Zero values select the defaults.
type Props struct {
	MinLength     int
	MaxLength     int
	DefaultLength int
	// LockLength disables the length slider.
	LockLength bool
}

func (p Props) withDefaults() Props {
	if p.MinLength <= 0 {
		p.MinLength = DefaultMinLength
	}
	if p.MaxLength <= 0 {
		p.MaxLength = DefaultMaxLength
	}
	if p.MaxLength < p.MinLength {
		p.MaxLength = p.MinLength
	}
	if p.DefaultLength <= 0 {
		p.DefaultLength = DefaultDefaultLength
	}
	p.DefaultLength = rangemath.Normalize(p.DefaultLength, p.MinLength, p.MaxLength)
	return p
}

// Model is the panel state. It owns the password options and the generated
// password; the slider only reports change intents.
type Model struct {
	ctx   context.Context
	props Props
	opts  password.Options

	password string
	summary  components.SummaryData

	doc     *pointer.Document
	slider  *slider.Model
	output  textinput.Model
	meter   components.StrengthMeter
	toast   *toast.Model
	help    help.Model
	keys    KeyMap
	focus   focusTarget
	locator Locator
	theme   theme.Theme

	generate   func(password.Options) string
	clipboard  ports.Clipboard
	logger     ports.Logger
	events     ports.EventPublisher
	toastDelay time.Duration
	trackWidth int
}

// Option customises a Model.
type Option func(*Model)

// WithContext sets the context used for log and event correlation.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithGenerator replaces the process-wide password generator.
func WithGenerator(g *password.Generator) Option {
	return func(m *Model) {
		if g != nil {
			m.generate = g.Generate
		}
	}
}

// WithClipboard sets the clipboard used by Copy.
func WithClipboard(c ports.Clipboard) Option {
	return func(m *Model) { m.clipboard = c }
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithEvents sets the event publisher.
func WithEvents(p ports.EventPublisher) Option {
	return func(m *Model) { m.events = p }
}

// WithLocator sets how mouse zones are marked and resolved.
func WithLocator(l Locator) Option {
	return func(m *Model) {
		if l != nil {
			m.locator = l
		}
	}
}

// WithDocument shares a pointer document with the caller.
func WithDocument(doc *pointer.Document) Option {
	return func(m *Model) {
		if doc != nil {
			m.doc = doc
		}
	}
}

// WithTheme sets the theme.
func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithToastDuration sets how long notices stay visible.
func WithToastDuration(d time.Duration) Option {
	return func(m *Model) { m.toastDelay = d }
}

// WithTrackWidth sets the slider track width in cells.
func WithTrackWidth(w int) Option {
	return func(m *Model) { m.trackWidth = w }
}

// New builds a panel.
func New(props Props, options ...Option) *Model {
	props = props.withDefaults()
	m := &Model{
		ctx:   context.Background(),
		props: props,
		opts: password.Options{
			Length:           props.DefaultLength,
			IncludeUppercase: true,
			IncludeLowercase: true,
			IncludeSymbols:   false,
		},
		doc:        pointer.NewDocument(),
		keys:       DefaultKeyMap(),
		locator:    StaticLocator{},
		theme:      theme.Light(),
		generate:   password.Default().Generate,
		logger:     logginginfra.NewNoOpLogger(),
		trackWidth: slider.DefaultWidth,
	}
	for _, opt := range options {
		opt(m)
	}
	m.logger = m.logger.With("layer", "tui", "component", "generator")

	m.slider = slider.New(m.doc, slider.Props{
		Min:       props.MinLength,
		Max:       props.MaxLength,
		Value:     props.DefaultLength,
		OnChange:  m.setLength,
		AriaLabel: LengthLabel,
		Disabled:  props.LockLength,
	})
	m.slider.SetWidth(m.trackWidth)
	m.slider.SetTheme(m.theme)
	m.slider.SetMarker(func(s string) string { return m.locator.Mark(zoneTrack, s) })

	m.output = textinput.New()
	m.output.Placeholder = Placeholder
	m.output.Prompt = ""
	m.output.Width = max(props.MaxLength, len(Placeholder))
	m.output.CharLimit = 0

	m.meter = components.NewStrengthMeter(m.trackWidth, m.theme)
	m.toast = toast.New(m.toastDelay, m.theme)
	m.help = help.New()

	m.focus = focusSlider
	if !m.slider.Focusable() {
		m.focus = focusUppercase
	}
	m.applyFocus()
	return m
}

// Password returns the generated password, or "" before the first Generate.
func (m *Model) Password() string { return m.password }

// Options returns the current generation options.
func (m *Model) Options() password.Options { return m.opts }

// Props returns the effective props.
func (m *Model) Props() Props { return m.props }

// Slider exposes the length slider.
func (m *Model) Slider() *slider.Model { return m.slider }

// Toast exposes the notification model.
func (m *Model) Toast() *toast.Model { return m.toast }

// Document returns the pointer document used for drags.
func (m *Model) Document() *pointer.Document { return m.doc }

// Close releases pointer subscriptions held by the panel.
func (m *Model) Close() { m.slider.Close() }

func (m *Model) setLength(v int) {
	v = rangemath.Normalize(v, m.props.MinLength, m.props.MaxLength)
	if v == m.opts.Length {
		return
	}
	m.opts.Length = v
	m.slider.SetValue(v)
	m.publish(ports.EventOptionsChanged, "length", v)
}

func (m *Model) toggle(class password.Class) {
	var value bool
	switch class {
	case password.ClassUppercase:
		m.opts.IncludeUppercase = !m.opts.IncludeUppercase
		value = m.opts.IncludeUppercase
	case password.ClassLowercase:
		m.opts.IncludeLowercase = !m.opts.IncludeLowercase
		value = m.opts.IncludeLowercase
	case password.ClassSymbols:
		m.opts.IncludeSymbols = !m.opts.IncludeSymbols
		value = m.opts.IncludeSymbols
	default:
		return
	}
	m.publish(ports.EventOptionsChanged, string(class), value)
}

func (m *Model) publish(eventType string, kv ...interface{}) {
	if m.events == nil {
		return
	}
	if err := m.events.Publish(m.ctx, ports.NewEvent(eventType, kv...)); err != nil {
		m.logger.Warn(m.ctx, "publish event failed", "event_type", eventType, "error", err)
	}
}

func classList(opts password.Options) string {
	classes := opts.ActiveClasses()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	return strings.Join(names, ",")
}
