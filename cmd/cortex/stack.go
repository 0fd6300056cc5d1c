package cortex

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cortexlinux/cortex/pkg/display"
	"github.com/cortexlinux/cortex/pkg/errors"
	"github.com/cortexlinux/cortex/pkg/hardware"
	"github.com/cortexlinux/cortex/pkg/installer"
	"github.com/cortexlinux/cortex/pkg/logging"
	"github.com/cortexlinux/cortex/pkg/stacks"
)

func newStackCmd(cctx *commandContext) *cobra.Command {
	var (
		list      bool
		dryRun    bool
		describe  bool
		noGPU     bool
		exportYML bool
	)

	cmd := &cobra.Command{
		Use:   "stack [stack-name]",
		Short: MsgStackShort,
		Long:  MsgStackLong,
		Example: `  cortex stack --list              List all stacks
  cortex stack ml                  Install ML stack (auto-detects GPU)
  cortex stack ml-cpu              Install CPU-only version
  cortex stack webdev --dry-run    Preview webdev stack`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.stack")

			cfg, err := cctx.loadConfig()
			if err != nil {
				return err
			}
			d := cctx.newDisplay(cfg)

			catalog, err := stacks.NewLoader(cfg.CatalogPath).Load()
			if err != nil {
				d.Error(err.Error())
				return err
			}

			if list {
				renderStackList(d, catalog)
				return nil
			}

			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgStackNoArg)
			}
			requested := args[0]

			if describe {
				fmt.Fprint(d.Writer(), catalog.Describe(requested))
				return nil
			}

			var probe hardware.Probe = hardware.NewNVIDIAProbe()
			if noGPU {
				probe = &hardware.StaticProbe{GPU: hardware.Absent}
			}

			resolved := stacks.ResolveVariant(cmd.Context(), requested, probe)
			if resolved != requested {
				d.Info(fmt.Sprintf(MsgVariantFallback, resolved))
			} else if requested == stacks.MLStackID {
				d.Info(fmt.Sprintf(MsgVariantKept, resolved))
			}

			stack, err := catalog.Find(resolved)
			if err != nil {
				d.Error(fmt.Sprintf("Stack '%s' not found. Run 'cortex stack --list' to see available stacks.", resolved))
				return err
			}

			if exportYML {
				out, err := yaml.Marshal(stack)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode stack")
				}
				fmt.Fprint(d.Writer(), string(out))
				return nil
			}

			// Interactive terminals get a confirmation prompt unless
			// assume_yes is set; plain mode never blocks on input.
			if !dryRun && !cfg.AssumeYes && d.Rich() && len(stack.Packages) > 0 {
				ok, _ := pterm.DefaultInteractiveConfirm.
					WithDefaultValue(true).
					Show(fmt.Sprintf("Install %d packages from '%s'?", len(stack.Packages), stack.ID))
				if !ok {
					d.Info("Aborted, no changes were made")
					return nil
				}
			}

			logger.Info().
				Str("stack", stack.ID).
				Int("packages", len(stack.Packages)).
				Bool("dryRun", dryRun).
				Msg("Installing stack")

			ins := installer.New(installer.Options{
				Display:    d,
				AptCommand: cfg.AptCommand,
				DryRun:     dryRun,
			})

			result, err := ins.Install(cmd.Context(), stack)
			if err != nil {
				d.Error(fmt.Sprintf(MsgInstallPartial, stack.ID, len(result.Installed), len(result.Failed)))
				return err
			}

			if !dryRun && len(result.Installed) > 0 {
				d.Success(fmt.Sprintf(MsgInstallDone, stack.ID, len(result.Installed), display.Duration(result.Duration)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List all available stacks")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the install plan without installing")
	cmd.Flags().BoolVar(&describe, "describe", false, "Show the stack's full description")
	cmd.Flags().BoolVar(&noGPU, "no-gpu", false, "Skip GPU detection and use CPU-only variants")
	cmd.Flags().BoolVar(&exportYML, "export", false, "Print the stack definition as YAML")

	return cmd
}

// renderStackList prints the catalog as a table.
func renderStackList(d *display.Display, catalog *stacks.Catalog) {
	all := catalog.List()
	if len(all) == 0 {
		d.Info(MsgNoStacks)
		return
	}

	rows := make([][]string, 0, len(all))
	for _, s := range all {
		rows = append(rows, []string{
			s.ID,
			s.Name,
			strconv.Itoa(len(s.Packages)),
			s.HardwareRequirement(),
		})
	}
	d.Table(MsgAvailableStacks, []string{"Stack", "Name", "Packages", "Hardware"}, rows)
}
