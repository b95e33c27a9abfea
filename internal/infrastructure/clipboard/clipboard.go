// Package clipboard adapts the system clipboard to ports.Clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
	pkgerrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
)

// System writes to the operating system clipboard.
type System struct{}

// New returns the system clipboard adapter.
func New() System { return System{} }

// WriteAll copies text to the clipboard. macOS prefers pbcopy, which works
// in more terminal sessions than the library path.
func (System) WriteAll(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	if clipboard.Unsupported {
		return pkgerrors.NewClipboardError("write", errUnsupported)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return pkgerrors.NewClipboardError("write", err)
	}
	return nil
}

// Memory is an in-process clipboard used when no system clipboard exists and
// in tests.
type Memory struct {
	Text string
	Err  error
}

// WriteAll stores text unless Err is set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return pkgerrors.NewClipboardError("write", m.Err)
	}
	m.Text = text
	return nil
}

var errUnsupported = errors.New("no clipboard utility available")

var (
	_ ports.Clipboard = System{}
	_ ports.Clipboard = (*Memory)(nil)
)
