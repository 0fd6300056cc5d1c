package cortex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexlinux/cortex/pkg/errors"
)

func TestStackList(t *testing.T) {
	output, err := runCommand(t, "stack", "--list", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "Available Stacks")
	assert.Contains(t, output, "ml")
	assert.Contains(t, output, "ml-cpu")
	assert.Contains(t, output, "webdev")
	assert.Contains(t, output, "nvidia-gpu")
}

func TestStackListCustomCatalog(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "stacks.json")
	require.NoError(t, os.WriteFile(catalog, []byte(`{"stacks": [
		{"id": "tiny", "name": "Tiny Stack", "packages": ["curl"]}
	]}`), 0644))
	t.Setenv("CORTEX_CATALOG_PATH", catalog)

	output, err := runCommand(t, "stack", "--list", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "tiny")
	assert.NotContains(t, output, "webdev")
}

func TestStackNoArgument(t *testing.T) {
	_, err := runCommand(t, "stack", "--no-color")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "--list")
}

func TestStackDescribe(t *testing.T) {
	output, err := runCommand(t, "stack", "webdev", "--describe", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "Stack: Web Development")
	assert.Contains(t, output, "Packages included:")
	assert.Contains(t, output, "nginx")
}

func TestStackDescribeUnknown(t *testing.T) {
	output, err := runCommand(t, "stack", "nope", "--describe", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, output, "Stack 'nope' not found")
}

func TestStackDryRunShowsPlanWithoutInstalling(t *testing.T) {
	output, err := runCommand(t, "stack", "webdev", "--dry-run", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "Installation Plan: Web Development")
	assert.Contains(t, output, "Dry run - no changes were made")
	assert.NotContains(t, output, "[completed]")
}

func TestStackMLFallsBackWithoutGPU(t *testing.T) {
	output, err := runCommand(t, "stack", "ml", "--no-gpu", "--dry-run", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "CPU-only variant 'ml-cpu'")
	assert.Contains(t, output, "Installation Plan: Machine Learning (CPU)")
}

func TestStackNonMLIgnoresGPUFlag(t *testing.T) {
	output, err := runCommand(t, "stack", "webdev", "--no-gpu", "--dry-run", "--no-color")
	require.NoError(t, err)

	assert.NotContains(t, output, "CPU-only variant")
	assert.Contains(t, output, "Installation Plan: Web Development")
}

func TestStackExport(t *testing.T) {
	output, err := runCommand(t, "stack", "webdev", "--export", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "id: webdev")
	assert.Contains(t, output, "packages:")
	assert.Contains(t, output, "- nginx")
}

func TestStackUnknown(t *testing.T) {
	_, err := runCommand(t, "stack", "nope", "--dry-run", "--no-color")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStackNotFound))
}

func TestStackCorruptCatalog(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "stacks.json")
	require.NoError(t, os.WriteFile(catalog, []byte("{not json"), 0644))
	t.Setenv("CORTEX_CATALOG_PATH", catalog)

	_, err := runCommand(t, "stack", "--list", "--no-color")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogCorrupt))
}
