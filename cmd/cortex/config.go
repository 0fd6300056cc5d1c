package cortex

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cortexlinux/cortex/pkg/config"
	"github.com/cortexlinux/cortex/pkg/display"
	"github.com/cortexlinux/cortex/pkg/style"
)

func newConfigCmd(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	cmd.AddCommand(newConfigInitCmd(cctx))
	cmd.AddCommand(newConfigShowCmd(cctx))

	return cmd
}

func newConfigInitCmd(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.loadConfig()
			if err != nil {
				return err
			}
			d := cctx.newDisplay(cfg)

			path := *cctx.configFile
			if path == "" {
				path = config.DefaultPath()
			}

			if err := config.WriteStarter(path, cfg); err != nil {
				return err
			}
			d.Success(fmt.Sprintf(MsgConfigCreated, path))
			return nil
		},
	}
}

func newConfigShowCmd(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.loadConfig()
			if err != nil {
				return err
			}
			d := cctx.newDisplay(cfg)

			catalog := cfg.CatalogPath
			if catalog == "" {
				catalog = "(embedded)"
			}

			d.StatusBox("CONFIGURATION", []display.StatusItem{
				{Label: "Catalog", Value: catalog, Status: style.StatusInfo},
				{Label: "Color", Value: cfg.Color, Status: style.StatusInfo},
				{Label: "Assume yes", Value: fmt.Sprintf("%t", cfg.AssumeYes), Status: style.StatusInfo},
				{Label: "Apt command", Value: cfg.AptCommand, Status: style.StatusInfo},
			})
			return nil
		},
	}
}
