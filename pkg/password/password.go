// Package password generates random passwords from selectable character classes
// and flags configurations that are likely to produce weak passwords.
//
// The generator is a convenience tool, not a credential vault: randomness comes
// from math/rand/v2 and is not required to be cryptographically secure.
package password

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"sync"
)

// Character sets drawn from for each class.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// WeakLengthThreshold is the shortest length not flagged as weak.
const WeakLengthThreshold = 8

// Class identifies a character class.
type Class string

const (
	ClassUppercase Class = "uppercase"
	ClassLowercase Class = "lowercase"
	ClassDigits    Class = "numbers"
	ClassSymbols   Class = "symbols"
)

// Charset returns the characters belonging to the class.
func (c Class) Charset() string {
	switch c {
	case ClassUppercase:
		return Uppercase
	case ClassLowercase:
		return Lowercase
	case ClassDigits:
		return Digits
	case ClassSymbols:
		return Symbols
	default:
		return ""
	}
}

// Options describes a generation request. Digits are always included.
type Options struct {
	Length           int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeSymbols   bool
}

// IsWeak reports whether the options are flagged by IsWeak.
func (o Options) IsWeak() bool {
	return IsWeak(o.Length, o.IncludeUppercase, o.IncludeLowercase, o.IncludeSymbols)
}

// ActiveClasses lists the classes used for o, in seeding order.
func (o Options) ActiveClasses() []Class {
	classes := make([]Class, 0, 4)
	if o.IncludeUppercase {
		classes = append(classes, ClassUppercase)
	}
	if o.IncludeLowercase {
		classes = append(classes, ClassLowercase)
	}
	classes = append(classes, ClassDigits)
	if o.IncludeSymbols {
		classes = append(classes, ClassSymbols)
	}
	return classes
}

// IsWeak flags a configuration as weak when no optional class is selected
// (digits-only output) or when length is below WeakLengthThreshold.
func IsWeak(length int, includeUppercase, includeLowercase, includeSymbols bool) bool {
	noClass := !includeUppercase && !includeLowercase && !includeSymbols
	return noClass || length < WeakLengthThreshold
}

// Generator produces passwords from a random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src. Tests pass a seeded
// rand.NewPCG to get reproducible output.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate builds a password for opts.
//
// One character is drawn from every active class, the remainder is filled from
// the union of active classes, and the result is shuffled. When opts.Length is
// smaller than the number of active classes the seed characters are kept, so the
// result is longer than requested.
func (g *Generator) Generate(opts Options) string {
	classes := opts.ActiveClasses()

	var pool strings.Builder
	out := make([]byte, 0, max(opts.Length, len(classes)))
	for _, class := range classes {
		set := class.Charset()
		out = append(out, set[g.rng.IntN(len(set))])
		pool.WriteString(set)
	}

	available := pool.String()
	for len(out) < opts.Length {
		out = append(out, available[g.rng.IntN(len(available))])
	}

	g.shuffle(out)
	return string(out)
}

// shuffle applies a Fisher-Yates permutation in place.
func (g *Generator) shuffle(b []byte) {
	for i := len(b) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultMu   sync.Mutex
)

// Default returns the process-wide generator, seeded from the operating system.
func Default() *Generator {
	defaultOnce.Do(func() {
		var seed [32]byte
		if _, err := crand.Read(seed[:]); err != nil {
			binary.LittleEndian.PutUint64(seed[:], rand.Uint64())
			binary.LittleEndian.PutUint64(seed[8:], rand.Uint64())
		}
		defaultGen = NewGenerator(rand.NewChaCha8(seed))
	})
	return defaultGen
}

// Generate builds a password with the default generator.
func Generate(length int, includeUppercase, includeLowercase, includeSymbols bool) string {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return Default().Generate(Options{
		Length:           length,
		IncludeUppercase: includeUppercase,
		IncludeLowercase: includeLowercase,
		IncludeSymbols:   includeSymbols,
	})
}
