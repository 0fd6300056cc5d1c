package display

import (
	"fmt"
	"strings"

	"github.com/cortexlinux/cortex/pkg/style"
)

// logo is the CX mark shown by the banner.
const logo = ` ██████╗██╗  ██╗
██╔════╝╚██╗██╔╝
██║      ╚███╔╝
██║      ██╔██╗
╚██████╗██╔╝ ██╗
 ╚═════╝╚═╝  ╚═╝`

const tagline = "Cortex Linux • package stacks for humans"

// Banner prints the full Cortex banner with an optional version line.
func (d *Display) Banner(version string) {
	var b strings.Builder

	mark := logo
	tag := tagline
	if d.rich {
		mark = style.InfoStyle.Render(logo)
		tag = style.MutedStyle.Render(tagline)
	}
	b.WriteString(mark)
	b.WriteString("\n")
	b.WriteString(tag)

	if version != "" {
		v := "v" + version
		if d.rich {
			v = style.MutedStyle.Render(v)
		}
		b.WriteString("\n")
		b.WriteString(v)
	}

	d.Box("", b.String(), style.StatusInfo)
	fmt.Fprintln(d.out)
}
