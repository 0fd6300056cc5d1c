package display

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/cortexlinux/cortex/pkg/style"
)

// stepRefreshInterval is the redraw rate of the live panel. Display
// refresh only; state changes redraw immediately.
const stepRefreshInterval = 100 * time.Millisecond

// StepTracker renders a multi-step operation as a live panel. Each
// step moves through pending → running → completed/failed/skipped and
// the panel is re-rendered on every transition plus a low-frequency
// ticker. Plain mode prints one line per transition instead.
type StepTracker struct {
	display *Display
	title   string
	steps   []string

	mu     sync.Mutex
	states map[string]style.StepState

	area *pterm.AreaPrinter
	done chan struct{}
	wg   sync.WaitGroup
}

// NewStepTracker creates a tracker with all steps pending and starts
// the live display.
func (d *Display) NewStepTracker(title string, steps []string) *StepTracker {
	states := make(map[string]style.StepState, len(steps))
	for _, step := range steps {
		states[step] = style.StepPending
	}

	t := &StepTracker{
		display: d,
		title:   title,
		steps:   steps,
		states:  states,
	}

	if !d.rich {
		fmt.Fprintf(d.out, "%s\n", title)
		return t
	}

	area, err := pterm.DefaultArea.Start(t.render())
	if err != nil {
		return t
	}
	t.area = area
	t.done = make(chan struct{})

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(stepRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				t.redraw()
			}
		}
	}()

	return t
}

// Start marks a step as running.
func (t *StepTracker) Start(step string) {
	t.transition(step, style.StepRunning)
}

// Complete marks a step as completed.
func (t *StepTracker) Complete(step string) {
	t.transition(step, style.StepCompleted)
}

// Fail marks a step as failed.
func (t *StepTracker) Fail(step string) {
	t.transition(step, style.StepFailed)
}

// Skip marks a step as skipped.
func (t *StepTracker) Skip(step string) {
	t.transition(step, style.StepSkipped)
}

// State returns the current state of a step.
func (t *StepTracker) State(step string) style.StepState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[step]
}

func (t *StepTracker) transition(step string, state style.StepState) {
	t.mu.Lock()
	if _, known := t.states[step]; !known {
		t.mu.Unlock()
		return
	}
	t.states[step] = state
	t.mu.Unlock()

	if t.area != nil {
		t.redraw()
		return
	}
	if !t.display.rich {
		fmt.Fprintf(t.display.out, "[%s] %s\n", state, step)
	}
}

func (t *StepTracker) redraw() {
	if t.area != nil {
		t.area.Update(t.render())
	}
}

// render draws the panel: a title and one icon-prefixed line per step.
func (t *StepTracker) render() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	title := t.title
	if t.display.rich {
		title = style.SubtitleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	for _, step := range t.steps {
		state := t.states[step]
		icon := style.StepIcon(state)
		label := step
		if t.display.rich {
			label = style.StepStyle(state).Sprint(step)
		}
		fmt.Fprintf(&b, "  %s %s\n", icon, label)
	}

	return b.String()
}

// Stop ends the live display, leaving the final panel on screen. In
// plain mode it prints a closing summary line.
func (t *StepTracker) Stop() {
	if t.done != nil {
		close(t.done)
		t.wg.Wait()
		t.done = nil
	}

	if t.area != nil {
		t.area.Update(t.render())
		_ = t.area.Stop()
		t.area = nil
		return
	}

	if !t.display.rich {
		completed := 0
		t.mu.Lock()
		for _, state := range t.states {
			if state == style.StepCompleted {
				completed++
			}
		}
		t.mu.Unlock()
		fmt.Fprintf(t.display.out, "%d/%d steps completed\n", completed, len(t.steps))
	}
}
