// Package display implements Cortex's terminal presentation layer:
// badge-prefixed status lines, boxes, tables, spinners, progress bars
// and the live multi-step panel. The core packages hand it plain
// strings and status tags and never depend on rendering internals.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/cortexlinux/cortex/pkg/style"
)

// Display writes styled output to a terminal. Rich output uses pterm
// and lipgloss; plain output is unstyled text suitable for pipes and
// logs. Construct with New for auto-detection, or NewRich / NewPlain
// to force a mode.
type Display struct {
	out  io.Writer
	rich bool
}

// New creates a Display that renders rich output when out is an
// interactive color terminal, plain output otherwise. NO_COLOR and
// dumb terminals select plain mode.
func New(out io.Writer) *Display {
	return &Display{out: out, rich: richCapable(out)}
}

// NewRich creates a Display that always renders rich output.
func NewRich(out io.Writer) *Display {
	return &Display{out: out, rich: true}
}

// NewPlain creates a Display that always renders plain output.
func NewPlain(out io.Writer) *Display {
	return &Display{out: out, rich: false}
}

// Rich reports whether the display renders rich output.
func (d *Display) Rich() bool {
	return d.rich
}

// Writer returns the underlying writer.
func (d *Display) Writer() io.Writer {
	return d.out
}

func richCapable(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// badge returns the CX badge prefix for status lines.
func (d *Display) badge() string {
	if d.rich {
		return style.BadgeStyle.Render("CX")
	}
	return "CX"
}

// Success prints a success message with the CX badge and checkmark.
func (d *Display) Success(message string) {
	d.statusLine(style.StatusSuccess, message)
}

// Error prints an error message with the CX badge and cross.
func (d *Display) Error(message string) {
	d.statusLine(style.StatusError, message)
}

// Warning prints a warning message with the CX badge.
func (d *Display) Warning(message string) {
	d.statusLine(style.StatusWarning, message)
}

// Info prints an informational message with the CX badge.
func (d *Display) Info(message string) {
	d.statusLine(style.StatusInfo, message)
}

func (d *Display) statusLine(status style.Status, message string) {
	if d.rich {
		fmt.Fprintf(d.out, "%s %s %s\n", d.badge(), style.StatusIcon(status), message)
		return
	}
	fmt.Fprintf(d.out, "%s [%s] %s\n", d.badge(), status, message)
}

// Step prints a numbered step line: CX │ [2/4] Installing nginx...
func (d *Display) Step(num, total int, message string) {
	if d.rich {
		sep := style.MutedStyle.Render("│")
		fmt.Fprintf(d.out, "%s %s [%d/%d] %s\n", d.badge(), sep, num, total, message)
		return
	}
	fmt.Fprintf(d.out, "%s [%d/%d] %s\n", d.badge(), num, total, message)
}

// Divider prints a horizontal divider with an optional section title.
func (d *Display) Divider(title string) {
	if title == "" {
		rule := strings.Repeat("━", 50)
		if d.rich {
			rule = style.InfoStyle.Render(rule)
		}
		fmt.Fprintln(d.out, rule)
		return
	}

	line := fmt.Sprintf("━━━ %s ━━━", title)
	if d.rich {
		line = style.SubtitleStyle.Render(line)
	}
	fmt.Fprintf(d.out, "\n%s\n\n", line)
}
