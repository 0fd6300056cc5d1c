package style

import (
	"strings"

	"github.com/pterm/pterm"
)

// Status types for messages and steps
type Status string

const (
	StatusSuccess Status = "success" // Operation finished cleanly
	StatusError   Status = "error"   // Operation failed
	StatusWarning Status = "warning" // Something needs attention
	StatusInfo    Status = "info"    // Neutral informational message
)

// StepState is the lifecycle state of one step in a multi-step operation
type StepState string

const (
	StepPending   StepState = "pending"
	StepRunning   StepState = "running"
	StepCompleted StepState = "completed"
	StepFailed    StepState = "failed"
	StepSkipped   StepState = "skipped"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusInfo:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusIcon returns the indicator glyph for a status, already styled
func StatusIcon(status Status) string {
	switch status {
	case StatusSuccess:
		return SuccessIndicator
	case StatusError:
		return ErrorIndicator
	case StatusWarning:
		return WarningIndicator
	default:
		return InfoIndicator
	}
}

// StepStyle returns the pterm style for a step state
func StepStyle(state StepState) *pterm.Style {
	switch state {
	case StepRunning:
		return pterm.NewStyle(pterm.FgCyan)
	case StepCompleted:
		return pterm.NewStyle(pterm.FgGreen)
	case StepFailed:
		return pterm.NewStyle(pterm.FgRed)
	default:
		// pending and skipped render muted
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StepIcon returns the indicator glyph for a step state, already styled
func StepIcon(state StepState) string {
	switch state {
	case StepRunning:
		return RunningIndicator
	case StepCompleted:
		return SuccessIndicator
	case StepFailed:
		return ErrorIndicator
	case StepSkipped:
		return SkippedIndicator
	default:
		return PendingIndicator
	}
}

// ActionStyle returns the pterm style for a package action verb.
// Installs render green, removals red, upgrades yellow; anything
// else passes through unstyled via the default style.
func ActionStyle(action string) *pterm.Style {
	a := strings.ToLower(action)
	switch {
	case strings.Contains(a, "remove"), strings.Contains(a, "uninstall"):
		return pterm.NewStyle(pterm.FgRed)
	case strings.Contains(a, "install"):
		return pterm.NewStyle(pterm.FgGreen)
	case strings.Contains(a, "update"), strings.Contains(a, "upgrade"):
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}
