// Package hardware provides best-effort hardware capability detection
// for stack resolution and the info command.
//
// Detection is authoritative-but-fallible: every probe failure maps to
// Unknown rather than an error, and callers decide how to collapse
// Unknown. The stack resolver treats Unknown as "no GPU" so that a
// broken driver setup always falls back to the portable variant.
package hardware

import "context"

// Capability is the tri-state result of a hardware capability query.
type Capability int

const (
	// Unknown means the probe could not determine the answer.
	Unknown Capability = iota
	// Absent means the capability was probed and is not available.
	Absent
	// Present means the capability was probed and is available.
	Present
)

// String returns a human-readable label for the capability.
func (c Capability) String() string {
	switch c {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// Bool collapses the tri-state to a boolean. Unknown collapses to
// false, favoring the portable answer.
func (c Capability) Bool() bool {
	return c == Present
}

// Probe is the interface for GPU capability detection.
type Probe interface {
	// DetectGPU reports whether a CUDA-capable accelerator is present.
	// It never returns an error; failures are reported as Unknown.
	DetectGPU(ctx context.Context) Capability
}

// StaticProbe is a Probe with a fixed answer, for tests and for the
// --no-gpu escape hatch.
type StaticProbe struct {
	GPU Capability
}

// DetectGPU returns the configured capability.
func (p *StaticProbe) DetectGPU(ctx context.Context) Capability {
	return p.GPU
}
