package stacks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexlinux/cortex/pkg/errors"
)

const testCatalog = `{
	"stacks": [
		{
			"id": "ml",
			"name": "ML Stack",
			"description": "GPU machine learning",
			"packages": ["python3-torch", "python3-numpy"],
			"tags": ["ai", "gpu"],
			"hardware": "nvidia-gpu"
		},
		{
			"id": "ml-cpu",
			"name": "ML Stack (CPU)",
			"description": "CPU machine learning",
			"packages": ["python3-numpy"]
		},
		{
			"id": "webdev",
			"name": "Web Development",
			"description": "Web server and tooling",
			"packages": ["nginx", "nodejs"]
		},
		{
			"id": "empty",
			"name": "Empty Stack",
			"description": "A stack with no packages",
			"packages": []
		}
	]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stacks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		catalog, err := Load(writeCatalog(t, testCatalog))
		require.NoError(t, err)
		assert.Equal(t, 4, catalog.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogNotFound))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Load(writeCatalog(t, "{not json"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogCorrupt))
	})
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing id", `{"stacks":[{"name":"X","description":"d","packages":[]}]}`},
		{"blank id", `{"stacks":[{"id":"  ","name":"X","description":"d","packages":[]}]}`},
		{"missing name", `{"stacks":[{"id":"x","description":"d","packages":[]}]}`},
		{"duplicate id", `{"stacks":[
			{"id":"x","name":"X","description":"d","packages":[]},
			{"id":"x","name":"X2","description":"d","packages":[]}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogCorrupt))
		})
	}
}

func TestList(t *testing.T) {
	catalog, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 4)

	// Document order is preserved
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"ml", "ml-cpu", "webdev", "empty"}, ids)

	// The returned slice is a copy; mutating it does not touch the catalog
	list[0].ID = "mutated"
	again, err := catalog.Find("ml")
	require.NoError(t, err)
	assert.Equal(t, "ml", again.ID)
}

func TestList_EmptyCatalog(t *testing.T) {
	catalog, err := Parse([]byte(`{"stacks":[]}`))
	require.NoError(t, err)
	assert.Empty(t, catalog.List())
}

func TestFind(t *testing.T) {
	catalog, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	t.Run("exact match", func(t *testing.T) {
		s, err := catalog.Find("webdev")
		require.NoError(t, err)
		assert.Equal(t, "Web Development", s.Name)
		assert.Equal(t, []string{"nginx", "nodejs"}, s.Packages)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := catalog.Find("nonexistent")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStackNotFound))
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := catalog.Find("")
		assert.True(t, errors.IsErrorCode(err, errors.ErrStackNotFound))
	})

	t.Run("no case folding", func(t *testing.T) {
		_, err := catalog.Find("WEBDEV")
		assert.True(t, errors.IsErrorCode(err, errors.ErrStackNotFound))
	})
}

func TestPackagesFor(t *testing.T) {
	catalog, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"python3-numpy"}, catalog.PackagesFor("ml-cpu"))
	assert.Empty(t, catalog.PackagesFor("empty"))

	// Misses never error, they yield an empty plan
	assert.NotNil(t, catalog.PackagesFor("nonexistent"))
	assert.Empty(t, catalog.PackagesFor("nonexistent"))
}

func TestDescribe(t *testing.T) {
	catalog, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	t.Run("numbered package list", func(t *testing.T) {
		out := catalog.Describe("webdev")
		assert.Contains(t, out, "Web Development")
		assert.Contains(t, out, "1. nginx")
		assert.Contains(t, out, "2. nodejs")
		assert.Less(t, strings.Index(out, "1. nginx"), strings.Index(out, "2. nodejs"))
	})

	t.Run("tags and hardware", func(t *testing.T) {
		out := catalog.Describe("ml")
		assert.Contains(t, out, "Tags:  ai, gpu")
		assert.Contains(t, out, "Hardware: nvidia-gpu")
	})

	t.Run("hardware defaults to any", func(t *testing.T) {
		out := catalog.Describe("webdev")
		assert.Contains(t, out, "Hardware: any")
	})

	t.Run("not found", func(t *testing.T) {
		assert.Equal(t, "Stack 'nope' not found", catalog.Describe("nope"))
	})
}

func TestDefault(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)
	require.Greater(t, catalog.Len(), 0)

	// The embedded catalog must carry both ML variants
	_, err = catalog.Find(MLStackID)
	assert.NoError(t, err)
	_, err = catalog.Find(MLCPUStackID)
	assert.NoError(t, err)
}

func TestLoader_CachesResult(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	loader := NewLoader(path)

	first, err := loader.Load()
	require.NoError(t, err)

	// Overwrite the file; the loader must keep serving the first result
	require.NoError(t, os.WriteFile(path, []byte(`{"stacks":[]}`), 0644))

	second, err := loader.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 4, second.Len())
}

func TestLoader_EmptyPathUsesDefault(t *testing.T) {
	loader := NewLoader("")
	catalog, err := loader.Load()
	require.NoError(t, err)
	assert.Greater(t, catalog.Len(), 0)
}

func TestStack_HardwareRequirement(t *testing.T) {
	assert.Equal(t, "any", Stack{}.HardwareRequirement())
	assert.Equal(t, "nvidia-gpu", Stack{Hardware: "nvidia-gpu"}.HardwareRequirement())
}

func TestStack_HasTag(t *testing.T) {
	s := Stack{Tags: []string{"ai", "gpu"}}
	assert.True(t, s.HasTag("gpu"))
	assert.False(t, s.HasTag("web"))
	assert.False(t, Stack{}.HasTag("anything"))
}
