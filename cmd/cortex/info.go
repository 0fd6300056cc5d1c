package cortex

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cortexlinux/cortex/pkg/display"
	"github.com/cortexlinux/cortex/pkg/hardware"
	"github.com/cortexlinux/cortex/pkg/style"
)

func newInfoCmd(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: MsgInfoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.loadConfig()
			if err != nil {
				return err
			}
			d := cctx.newDisplay(cfg)

			spinner := d.Spinner("Reading system information...")
			info := hardware.ReadSystemInfo(cmd.Context(), hardware.NewNVIDIAProbe())
			spinner.Stop()

			d.StatusBox("SYSTEM", buildInfoItems(info))
			return nil
		},
	}
}

// buildInfoItems converts host facts into status box rows, skipping
// anything detection could not fill in.
func buildInfoItems(info hardware.SystemInfo) []display.StatusItem {
	items := []display.StatusItem{}

	if info.Hostname != "" {
		items = append(items, display.StatusItem{Label: "Hostname", Value: info.Hostname, Status: style.StatusInfo})
	}
	if info.Platform != "" {
		os := info.Platform
		if info.Version != "" {
			os += " " + info.Version
		}
		items = append(items, display.StatusItem{Label: "OS", Value: os, Status: style.StatusInfo})
	}
	if info.Kernel != "" {
		items = append(items, display.StatusItem{Label: "Kernel", Value: info.Kernel, Status: style.StatusInfo})
	}
	if info.Uptime > 0 {
		items = append(items, display.StatusItem{Label: "Uptime", Value: display.Duration(info.Uptime), Status: style.StatusInfo})
	}
	if info.CPUModel != "" {
		items = append(items, display.StatusItem{Label: "CPU", Value: info.CPUModel, Status: style.StatusInfo})
	}
	if info.CPUCores > 0 {
		items = append(items, display.StatusItem{Label: "Cores", Value: strconv.Itoa(info.CPUCores), Status: style.StatusInfo})
	}
	if info.MemoryTotal > 0 {
		memory := fmt.Sprintf("%s / %s", display.Bytes(info.MemoryUsed), display.Bytes(info.MemoryTotal))
		status := style.StatusSuccess
		if info.MemoryTotal > 0 && float64(info.MemoryUsed)/float64(info.MemoryTotal) > 0.9 {
			status = style.StatusWarning
		}
		items = append(items, display.StatusItem{Label: "Memory", Value: memory, Status: status})
	}

	switch info.GPU {
	case hardware.Present:
		value := "detected"
		if info.GPUName != "" {
			value = info.GPUName
		}
		items = append(items, display.StatusItem{Label: "GPU", Value: value, Status: style.StatusSuccess})
	case hardware.Absent:
		items = append(items, display.StatusItem{Label: "GPU", Value: "none", Status: style.StatusInfo})
	default:
		items = append(items, display.StatusItem{Label: "GPU", Value: "unknown", Status: style.StatusWarning})
	}

	return items
}
