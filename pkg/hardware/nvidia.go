package hardware

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/cortexlinux/cortex/pkg/logging"
)

// NVIDIAProbe detects NVIDIA GPUs. It tries, in order:
//
//  1. the kernel driver directory under /proc
//  2. device nodes under /dev
//  3. `nvidia-smi -q -x`, parsing the XML report
//
// The first two are cheap filesystem checks that prove the driver is
// loaded; nvidia-smi is the fallback for systems where procfs is
// restricted (containers, some cloud images).
type NVIDIAProbe struct {
	// Root is prepended to the probed filesystem paths. Empty means "/".
	// Tests point it at a fixture directory.
	Root string

	// SmiOutput overrides the nvidia-smi invocation when non-nil.
	// Tests use it to feed canned XML.
	SmiOutput func(ctx context.Context) ([]byte, error)
}

// NewNVIDIAProbe creates a probe against the real filesystem.
func NewNVIDIAProbe() *NVIDIAProbe {
	return &NVIDIAProbe{}
}

// DetectGPU reports NVIDIA GPU presence. Failures degrade to Unknown,
// never to an error.
func (p *NVIDIAProbe) DetectGPU(ctx context.Context) Capability {
	logger := logging.GetLogger("hardware.nvidia")

	if cap := p.probeDriverFiles(); cap != Unknown {
		logger.Debug().Str("capability", cap.String()).Msg("GPU detected via driver files")
		return cap
	}

	cap := p.probeSmi(ctx)
	logger.Debug().Str("capability", cap.String()).Msg("GPU detection via nvidia-smi")
	return cap
}

// probeDriverFiles checks for the loaded kernel driver and device nodes.
// It can only prove presence; a missing file proves nothing because the
// paths may be hidden from the process.
func (p *NVIDIAProbe) probeDriverFiles() Capability {
	candidates := []string{
		"proc/driver/nvidia/gpus",
		"dev/nvidia0",
		"dev/nvidiactl",
	}

	for _, rel := range candidates {
		path := filepath.Join("/", p.Root, rel)
		if info, err := os.Stat(path); err == nil {
			// The gpus directory exists even with zero GPUs attached;
			// require at least one entry.
			if info.IsDir() {
				entries, err := os.ReadDir(path)
				if err != nil || len(entries) == 0 {
					continue
				}
			}
			return Present
		}
	}

	return Unknown
}

// probeSmi runs nvidia-smi and parses its XML report.
func (p *NVIDIAProbe) probeSmi(ctx context.Context) Capability {
	out, err := p.smiOutput(ctx)
	if err != nil {
		// nvidia-smi missing or erroring is the normal case on
		// machines without the driver installed.
		return Unknown
	}
	return parseSmiReport(out)
}

func (p *NVIDIAProbe) smiOutput(ctx context.Context) ([]byte, error) {
	if p.SmiOutput != nil {
		return p.SmiOutput(ctx)
	}
	return exec.CommandContext(ctx, "nvidia-smi", "-q", "-x").Output()
}

// parseSmiReport reads the attached GPU count out of an
// `nvidia-smi -q -x` report.
func parseSmiReport(report []byte) Capability {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(report); err != nil {
		return Unknown
	}

	root := doc.SelectElement("nvidia_smi_log")
	if root == nil {
		return Unknown
	}

	attached := root.SelectElement("attached_gpus")
	if attached == nil {
		return Unknown
	}

	count, err := strconv.Atoi(strings.TrimSpace(attached.Text()))
	if err != nil {
		return Unknown
	}

	if count > 0 {
		return Present
	}
	return Absent
}

// GPUName returns the product name of the first attached GPU from an
// nvidia-smi report, or empty if unavailable. Used by the info command.
func (p *NVIDIAProbe) GPUName(ctx context.Context) string {
	out, err := p.smiOutput(ctx)
	if err != nil {
		return ""
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		return ""
	}

	if gpu := doc.FindElement("//nvidia_smi_log/gpu/product_name"); gpu != nil {
		return strings.TrimSpace(gpu.Text())
	}
	return ""
}
