package cortex

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/cortexlinux/cortex/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

func newTopicsCmd(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: MsgTopicsShort,
		Long: `Topics prints longer-form documentation that does not fit in command
help text. Run without arguments to list the available topics.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.loadConfig()
			if err != nil {
				return err
			}
			d := cctx.newDisplay(cfg)
			out := d.Writer()

			if len(args) == 0 {
				fmt.Fprintln(out, "Available topics:")
				for _, name := range listTopics() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintln(out, "\nUse 'cortex topics <topic>' to read one.")
				return nil
			}

			name := strings.ToLower(args[0])
			content, err := topicsFS.ReadFile("topics/" + name + ".md")
			if err != nil {
				return errors.Newf(errors.ErrNotFound,
					"unknown topic %q, run 'cortex topics' to list topics", name)
			}

			fmt.Fprint(out, renderTopic(string(content), d.Rich()))
			return nil
		},
	}
}

func listTopics() []string {
	entries, err := fs.ReadDir(topicsFS, "topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderTopic formats markdown with glamour on rich terminals and
// passes it through untouched otherwise.
func renderTopic(content string, rich bool) string {
	if !rich {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
