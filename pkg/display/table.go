package display

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"

	"github.com/cortexlinux/cortex/pkg/style"
)

// Table prints a table with a header row and an optional title.
func (d *Display) Table(title string, headers []string, rows [][]string) {
	if title != "" {
		header := title
		if d.rich {
			header = style.SubtitleStyle.Render(title)
		}
		fmt.Fprintln(d.out, header)
	}

	if !d.rich {
		w := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		for _, row := range rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		w.Flush()
		return
	}

	data := pterm.TableData{headers}
	data = append(data, rows...)

	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).
		WithData(data).
		Srender()
	if err != nil {
		// Styled rendering failed; fall back to plain rows.
		for _, row := range rows {
			fmt.Fprintln(d.out, strings.Join(row, "  "))
		}
		return
	}
	fmt.Fprintln(d.out, rendered)
}

// PackageAction is one row of an install plan table.
type PackageAction struct {
	Name    string
	Version string
	Action  string
}

// PackageTable prints the install plan with per-action coloring:
// installs green, removals red, upgrades yellow.
func (d *Display) PackageTable(title string, packages []PackageAction) {
	rows := make([][]string, 0, len(packages))
	for _, pkg := range packages {
		action := pkg.Action
		if d.rich {
			action = style.ActionStyle(pkg.Action).Sprint(pkg.Action)
		}
		version := pkg.Version
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{pkg.Name, version, action})
	}

	d.Table(title, []string{"Package", "Version", "Action"}, rows)
}
