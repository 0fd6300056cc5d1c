package cortex

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput runs f with os.Stdout redirected to a pipe and returns
// everything written to it. The display layer writes to os.Stdout
// directly, so cobra's SetOut is not enough here.
func captureOutput(f func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	oldStdout := os.Stdout
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		outputChan <- buf.String()
	}()

	f()

	os.Stdout = oldStdout
	_ = w.Close()

	return <-outputChan, nil
}

// runCommand executes the root command with args and captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs(args)
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err, "failed to capture output")
	return output, cmdErr
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "cortex version dev")
	assert.Contains(t, out, "commit: none")
}

func TestRootHelpListsCommands(t *testing.T) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "stack")
	assert.Contains(t, out, "info")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "topics")
}

func TestUnknownCommandFails(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"frobnicate"})

	assert.Error(t, cmd.Execute())
}

func TestTopicsList(t *testing.T) {
	output, err := runCommand(t, "topics", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "Available topics:")
	assert.Contains(t, output, "stacks")
	assert.Contains(t, output, "config")
}

func TestTopicsRendersContent(t *testing.T) {
	output, err := runCommand(t, "topics", "stacks", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "Package Stacks")
	assert.Contains(t, output, "ml-cpu")
}

func TestTopicsUnknownTopic(t *testing.T) {
	_, err := runCommand(t, "topics", "no-such-topic", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topic")
}

func TestConfigShow(t *testing.T) {
	output, err := runCommand(t, "config", "show", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "CONFIGURATION")
	assert.Contains(t, output, "apt-get")
	assert.Contains(t, output, "(embedded)")
}
