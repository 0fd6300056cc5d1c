package stacks

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/cortexlinux/cortex/pkg/errors"
	"github.com/cortexlinux/cortex/pkg/logging"
)

//go:embed stacks.json
var defaultCatalog []byte

// catalogDocument is the on-disk shape of the catalog file.
type catalogDocument struct {
	Stacks []Stack `json:"stacks"`
}

// Catalog is an immutable, validated collection of stacks in document
// order. Construct one with Load, Parse or Default; the zero value is
// an empty catalog.
type Catalog struct {
	stacks []Stack
}

// Load reads and validates a catalog from the JSON document at path.
// A missing file yields ErrCatalogNotFound; anything unparseable or
// structurally invalid yields ErrCatalogCorrupt. No partial catalog is
// ever returned.
func Load(path string) (*Catalog, error) {
	logger := logging.GetLogger("stacks.catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrCatalogNotFound,
				"stacks catalog not found at %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrCatalogNotFound,
			"stacks catalog not readable at %s", path)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogCorrupt,
			"invalid stacks catalog at %s", path)
	}

	logger.Debug().Str("path", path).Int("stacks", catalog.Len()).Msg("Catalog loaded")
	return catalog, nil
}

// Parse validates a catalog from raw JSON.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogCorrupt, "catalog is not valid JSON")
	}

	if err := validate(doc.Stacks); err != nil {
		return nil, err
	}

	return &Catalog{stacks: doc.Stacks}, nil
}

// Default returns the catalog embedded in the binary. The embedded
// document is validated at build time by the test suite, so a failure
// here means a broken build.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// validate rejects malformed entries at load time so lookups never
// encounter them.
func validate(entries []Stack) error {
	seen := make(map[string]struct{}, len(entries))
	for i, s := range entries {
		if strings.TrimSpace(s.ID) == "" {
			return errors.Newf(errors.ErrCatalogCorrupt,
				"stack at index %d has no id", i).WithDetail("index", i)
		}
		if strings.TrimSpace(s.Name) == "" {
			return errors.Newf(errors.ErrCatalogCorrupt,
				"stack %q has no name", s.ID).WithDetail("id", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return errors.Newf(errors.ErrCatalogCorrupt,
				"duplicate stack id %q", s.ID).WithDetail("id", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// Len returns the number of stacks in the catalog.
func (c *Catalog) Len() int {
	return len(c.stacks)
}

// List returns all stacks in document order. The returned slice is a
// copy; the catalog itself never changes after load.
func (c *Catalog) List() []Stack {
	out := make([]Stack, len(c.stacks))
	copy(out, c.stacks)
	return out
}

// Find returns the stack whose id matches exactly. Lookup is a linear
// scan; catalogs are small enough that an index buys nothing. Misses
// are ordinary user input, reported as ErrStackNotFound.
func (c *Catalog) Find(stackID string) (Stack, error) {
	for _, s := range c.stacks {
		if s.ID == stackID {
			return s, nil
		}
	}
	return Stack{}, errors.Newf(errors.ErrStackNotFound, "stack %q not found", stackID)
}

// PackagesFor returns the package list for a stack, or an empty slice
// when the stack does not exist. Callers that need to distinguish a
// missing stack from an empty one use Find.
func (c *Catalog) PackagesFor(stackID string) []string {
	s, err := c.Find(stackID)
	if err != nil {
		return []string{}
	}
	if s.Packages == nil {
		return []string{}
	}
	return s.Packages
}

// Describe produces a human-readable multi-line summary of a stack,
// or a plain not-found message for unknown ids.
func (c *Catalog) Describe(stackID string) string {
	s, err := c.Find(stackID)
	if err != nil {
		return fmt.Sprintf("Stack '%s' not found", stackID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stack: %s\n", s.Name)
	fmt.Fprintf(&b, "Description: %s\n\n", s.Description)
	b.WriteString("Packages included:\n")
	for i, pkg := range s.Packages {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, pkg)
	}

	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, "\nTags:  %s\n", strings.Join(s.Tags, ", "))
	}

	fmt.Fprintf(&b, "Hardware: %s\n", s.HardwareRequirement())

	return b.String()
}

// Loader loads a catalog exactly once and hands the same immutable
// Catalog to every caller afterwards. Safe for concurrent use:
// initialize-once-then-freeze.
type Loader struct {
	path    string
	once    sync.Once
	catalog *Catalog
	err     error
}

// NewLoader creates a loader for the catalog at path. An empty path
// means the embedded default catalog.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the catalog, reading it on first call only. Subsequent
// calls return the identical result, including any error.
func (l *Loader) Load() (*Catalog, error) {
	l.once.Do(func() {
		if l.path == "" {
			l.catalog, l.err = Default()
			return
		}
		l.catalog, l.err = Load(l.path)
	})
	return l.catalog, l.err
}
