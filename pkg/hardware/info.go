package hardware

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/cortexlinux/cortex/pkg/logging"
)

// SystemInfo contains host facts for the info command. Fields that
// could not be detected are left at their zero value.
type SystemInfo struct {
	Hostname    string
	OS          string // "linux", "darwin"
	Platform    string // distro ID, e.g. "ubuntu"
	Version     string // distro version, e.g. "24.04"
	Kernel      string
	Uptime      time.Duration
	CPUModel    string
	CPUCores    int
	MemoryTotal uint64
	MemoryUsed  uint64
	GPU         Capability
	GPUName     string
}

// ReadSystemInfo gathers host facts using gopsutil and the given GPU
// probe. Individual detection failures are logged and skipped; the
// call itself never fails.
func ReadSystemInfo(ctx context.Context, probe Probe) SystemInfo {
	logger := logging.GetLogger("hardware.info")
	info := SystemInfo{}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		info.Hostname = hi.Hostname
		info.OS = hi.OS
		info.Platform = hi.Platform
		info.Version = hi.PlatformVersion
		info.Kernel = hi.KernelVersion
		info.Uptime = time.Duration(hi.Uptime) * time.Second
	} else {
		logger.Debug().Err(err).Msg("host info detection failed")
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	} else if err != nil {
		logger.Debug().Err(err).Msg("cpu info detection failed")
	}

	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CPUCores = cores
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemoryTotal = vm.Total
		info.MemoryUsed = vm.Used
	} else {
		logger.Debug().Err(err).Msg("memory detection failed")
	}

	if probe != nil {
		info.GPU = probe.DetectGPU(ctx)
		if nv, ok := probe.(*NVIDIAProbe); ok && info.GPU == Present {
			info.GPUName = nv.GPUName(ctx)
		}
	}

	return info
}
