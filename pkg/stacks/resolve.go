package stacks

import (
	"context"

	"github.com/cortexlinux/cortex/pkg/hardware"
	"github.com/cortexlinux/cortex/pkg/logging"
)

// ResolveVariant maps a requested stack id to the variant suited to
// the machine. Only the ML stack has variants: asking for "ml" on a
// machine without a GPU resolves to "ml-cpu". Every other id passes
// through unchanged, and the catalog is never consulted.
//
// The probe is best-effort: an Unknown answer collapses to "no GPU"
// here, so a broken driver setup gets the portable variant rather
// than a failed install.
func ResolveVariant(ctx context.Context, baseID string, probe hardware.Probe) string {
	if baseID != MLStackID {
		return baseID
	}

	gpu := hardware.Unknown
	if probe != nil {
		gpu = probe.DetectGPU(ctx)
	}

	logger := logging.GetLogger("stacks.resolve")
	if gpu.Bool() {
		logger.Debug().Str("stack", baseID).Msg("GPU present, keeping accelerated stack")
		return MLStackID
	}

	logger.Debug().Str("stack", baseID).Str("gpu", gpu.String()).Msg("No GPU, selecting CPU variant")
	return MLCPUStackID
}
