package cortex

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/cortexlinux/cortex/pkg/config"
	"github.com/cortexlinux/cortex/pkg/display"
	"github.com/cortexlinux/cortex/pkg/logging"
)

// Build metadata, injected via ldflags by the release pipeline.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// NewRootCmd builds the cortex command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configFile string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "cortex",
		Short: MsgRootShort,
		Long: `Cortex is a package manager for Linux that installs curated package
stacks for common workloads and adapts them to your hardware.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			display.New(os.Stdout).Banner(version)
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/cortex/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	ctx := &commandContext{
		configFile: &configFile,
		noColor:    &noColor,
	}

	rootCmd.AddCommand(newStackCmd(ctx))
	rootCmd.AddCommand(newInfoCmd(ctx))
	rootCmd.AddCommand(newConfigCmd(ctx))
	rootCmd.AddCommand(newTopicsCmd(ctx))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// commandContext carries flag state shared by subcommands.
type commandContext struct {
	configFile *string
	noColor    *bool
}

// loadConfig resolves the effective configuration for a command run.
func (c *commandContext) loadConfig() (*config.Config, error) {
	return config.Load(*c.configFile)
}

// newDisplay picks the renderer from config and flags. --no-color and
// color = "never" force plain output; color = "always" forces rich.
func (c *commandContext) newDisplay(cfg *config.Config) *display.Display {
	if *c.noColor || cfg.Color == "never" {
		return display.NewPlain(os.Stdout)
	}
	if cfg.Color == "always" {
		return display.NewRich(os.Stdout)
	}
	return display.New(os.Stdout)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cortex version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "CORTEX",
				Section: "1",
			}
			return doc.GenManTree(rootCmd, header, "/tmp")
		},
	}
}
