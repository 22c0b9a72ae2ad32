package bdgeo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal is an ordered buffer of display lines rendered as one
// bordered block. Appending, clearing and rendering are serialized by
// an internal mutex; rendering leaves the buffer unchanged so the
// usual add-then-show flow can continue appending.
type Terminal struct {
	mu         sync.Mutex
	lines      []string
	width      int
	timestamps bool
	now        func() time.Time
}

// TerminalOption is a functional option for configuring a Terminal.
type TerminalOption func(*Terminal)

// WithTimestamps prefixes every buffered line with an [hh:mm:ss]
// wall-clock stamp, like the published dataset tooling did.
func WithTimestamps() TerminalOption {
	return func(t *Terminal) {
		t.timestamps = true
	}
}

// WithWidth fixes the rendered block width. Zero lets the content
// decide.
func WithWidth(w int) TerminalOption {
	return func(t *Terminal) {
		t.width = w
	}
}

// NewTerminal creates an empty terminal buffer.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add appends one entry to the buffer. Strings are appended verbatim,
// structs, maps and the dataset record types are rendered as indented
// JSON, everything else through fmt. The buffer is unbounded.
func (t *Terminal) Add(v any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var line string
	switch item := v.(type) {
	case string:
		line = item
	case fmt.Stringer:
		line = item.String()
	case error:
		line = item.Error()
	default:
		b, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			line = fmt.Sprintf("%v", item)
		} else {
			line = string(b)
		}
	}

	if t.timestamps {
		line = t.now().Format("[03:04:05] ") + line
	}
	t.lines = append(t.lines, line)
}

// Clear empties the buffer. Clearing an empty buffer is a no-op.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}

// Len returns the number of buffered entries.
func (t *Terminal) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}

// Lines returns a copy of the buffered entries in append order.
func (t *Terminal) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Render returns the buffer contents as one bordered block. The
// buffer is not cleared.
func (t *Terminal) Render() string {
	t.mu.Lock()
	content := strings.Join(t.lines, "\n")
	t.mu.Unlock()

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if t.width > 0 {
		style = style.Width(t.width)
	}
	return style.Render(content)
}

// Show renders the buffer and writes it to w.
func (t *Terminal) Show(w io.Writer) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// defaultTerminal backs the package-level presenter functions kept
// for parity with the published dataset tooling.
var defaultTerminal = NewTerminal()

// AddToTerminal appends one entry to the shared terminal buffer.
func AddToTerminal(v any) {
	defaultTerminal.Add(v)
}

// ClearFromTerminal empties the shared terminal buffer.
func ClearFromTerminal() {
	defaultTerminal.Clear()
}

// ShowTerminal renders the shared terminal buffer to stdout. The
// buffer is left intact for further appends.
func ShowTerminal() {
	_ = defaultTerminal.Show(os.Stdout)
}
