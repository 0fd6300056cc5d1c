package style

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestStepIcon(t *testing.T) {
	tests := []struct {
		name  string
		state StepState
		want  string
	}{
		{"pending", StepPending, PendingIndicator},
		{"running", StepRunning, RunningIndicator},
		{"completed", StepCompleted, SuccessIndicator},
		{"failed", StepFailed, ErrorIndicator},
		{"skipped", StepSkipped, SkippedIndicator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepIcon(tt.state))
		})
	}
}

func TestActionStyle(t *testing.T) {
	tests := []struct {
		action string
		want   pterm.Color
	}{
		{"Install", pterm.FgGreen},
		{"install (pinned)", pterm.FgGreen},
		{"Remove", pterm.FgRed},
		{"Uninstall", pterm.FgRed},
		{"Upgrade", pterm.FgYellow},
		{"Update", pterm.FgYellow},
		{"Hold", pterm.FgDefault},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got := ActionStyle(tt.action)
			assert.Contains(t, []pterm.Color(*got), tt.want)
		})
	}
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, SuccessIndicator, StatusIcon(StatusSuccess))
	assert.Equal(t, ErrorIndicator, StatusIcon(StatusError))
	assert.Equal(t, WarningIndicator, StatusIcon(StatusWarning))
	assert.Equal(t, InfoIndicator, StatusIcon(StatusInfo))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  text", Indent("text", 1))
	assert.Equal(t, "    text", Indent("text", 2))
}
