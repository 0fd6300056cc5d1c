package display

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Spinner shows activity during an operation of unknown length. In
// plain mode it degrades to simple status lines.
type Spinner struct {
	display *Display
	printer *pterm.SpinnerPrinter
	text    string
}

// Spinner starts a spinner with the given message.
func (d *Display) Spinner(text string) *Spinner {
	s := &Spinner{display: d, text: text}

	if !d.rich {
		fmt.Fprintf(d.out, "... %s\n", text)
		return s
	}

	printer, err := pterm.DefaultSpinner.
		WithWriter(d.out).
		WithRemoveWhenDone(false).
		Start(text)
	if err == nil {
		s.printer = printer
	}
	return s
}

// UpdateText changes the spinner message while it keeps spinning.
func (s *Spinner) UpdateText(text string) {
	s.text = text
	if s.printer != nil {
		s.printer.UpdateText(text)
		return
	}
	fmt.Fprintf(s.display.out, "... %s\n", text)
}

// Success stops the spinner with a success message. An empty message
// reuses the last spinner text.
func (s *Spinner) Success(message string) {
	if message == "" {
		message = s.text
	}
	if s.printer != nil {
		s.printer.Success(message)
		s.printer = nil
		return
	}
	fmt.Fprintf(s.display.out, "✓ %s\n", message)
}

// Fail stops the spinner with a failure message.
func (s *Spinner) Fail(message string) {
	if message == "" {
		message = s.text
	}
	if s.printer != nil {
		s.printer.Fail(message)
		s.printer = nil
		return
	}
	fmt.Fprintf(s.display.out, "✗ %s\n", message)
}

// Stop halts the spinner without a final status.
func (s *Spinner) Stop() {
	if s.printer != nil {
		_ = s.printer.Stop()
		s.printer = nil
	}
}
