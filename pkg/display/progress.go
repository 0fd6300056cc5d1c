package display

import (
	"fmt"

	"github.com/pterm/pterm"
)

// ProgressTracker drives a progress bar through discrete advance and
// update signals. With a positive total it renders a bounded bar; with
// zero it falls back to a spinner. Plain mode prints counter lines.
type ProgressTracker struct {
	display *Display
	bar     *pterm.ProgressbarPrinter
	spinner *Spinner
	title   string
	total   int
	current int
}

// NewProgress starts a progress tracker. total may be zero for
// operations of unknown length.
func (d *Display) NewProgress(title string, total int) *ProgressTracker {
	p := &ProgressTracker{display: d, title: title, total: total}

	if !d.rich {
		fmt.Fprintf(d.out, "%s\n", title)
		return p
	}

	if total <= 0 {
		p.spinner = d.Spinner(title)
		return p
	}

	bar, err := pterm.DefaultProgressbar.
		WithWriter(d.out).
		WithTotal(total).
		WithTitle(title).
		Start()
	if err == nil {
		p.bar = bar
	}
	return p
}

// UpdateTitle changes the text shown next to the bar.
func (p *ProgressTracker) UpdateTitle(title string) {
	p.title = title
	switch {
	case p.bar != nil:
		p.bar.UpdateTitle(title)
	case p.spinner != nil:
		p.spinner.UpdateText(title)
	default:
		fmt.Fprintf(p.display.out, "%s\n", title)
	}
}

// Increment advances the bar by one.
func (p *ProgressTracker) Increment() {
	p.Add(1)
}

// Add advances the bar by n.
func (p *ProgressTracker) Add(n int) {
	p.current += n
	if p.bar != nil {
		p.bar.Add(n)
		return
	}
	if p.spinner == nil && p.total > 0 {
		fmt.Fprintf(p.display.out, "[%d/%d] %s\n", p.current, p.total, p.title)
	}
}

// Current returns how far the tracker has advanced.
func (p *ProgressTracker) Current() int {
	return p.current
}

// Finish stops the bar or spinner.
func (p *ProgressTracker) Finish() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
