package display

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/cortexlinux/cortex/pkg/style"
)

// Box prints content inside a rounded box. The status selects the
// border color; an empty title omits the header.
func (d *Display) Box(title, content string, status style.Status) {
	if !d.rich {
		if title != "" {
			fmt.Fprintf(d.out, "== %s ==\n", title)
		}
		fmt.Fprintln(d.out, content)
		return
	}

	box := pterm.DefaultBox.
		WithBoxStyle(style.StatusStyle(status)).
		WithHorizontalString("─").
		WithVerticalString("│").
		WithTopLeftCornerString("╭").
		WithTopRightCornerString("╮").
		WithBottomLeftCornerString("╰").
		WithBottomRightCornerString("╯")

	if title != "" {
		box = box.WithTitle(pterm.Bold.Sprint(title))
	}

	fmt.Fprintln(d.out, box.Sprint(content))
}

// StatusItem is one labeled value in a status box.
type StatusItem struct {
	Label  string
	Value  string
	Status style.Status
}

// StatusBox prints a box of aligned label/value pairs, the values
// colored by their status.
func (d *Display) StatusBox(title string, items []StatusItem) {
	maxLabel := 0
	for _, item := range items {
		if len(item.Label) > maxLabel {
			maxLabel = len(item.Label)
		}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		label := item.Label + ":" + strings.Repeat(" ", maxLabel-len(item.Label))
		value := item.Value
		if d.rich {
			label = style.MutedStyle.Render(label)
			value = style.StatusStyle(item.Status).Sprint(value)
		}
		lines = append(lines, fmt.Sprintf("%s  %s", label, value))
	}

	d.Box(title, strings.Join(lines, "\n"), style.StatusInfo)
}
