// Package config loads Cortex configuration by layering built-in
// defaults, the user's config file and CORTEX_ environment variables,
// in that order of precedence (later layers win).
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	cerrors "github.com/cortexlinux/cortex/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved Cortex settings.
type Config struct {
	// CatalogPath points at the stacks catalog JSON document. Empty
	// selects the catalog embedded in the binary.
	CatalogPath string `koanf:"catalog_path"`

	// Color is "auto", "always" or "never".
	Color string `koanf:"color"`

	// AssumeYes skips confirmation prompts.
	AssumeYes bool `koanf:"assume_yes"`

	// AptCommand is the package manager binary used for installs.
	AptCommand string `koanf:"apt_command"`
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves configuration from defaults, the file at path (or the
// default location when path is empty) and CORTEX_ env vars.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Hardcoded floor, so a broken embed still yields a usable config
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"color":       "auto",
		"apt_command": "apt-get",
	}, "."), nil); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to load base config")
	}

	// 2. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 3. User config file, if present
	configPath := path
	if configPath == "" {
		configPath = DefaultPath()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, cerrors.Wrapf(err, cerrors.ErrConfigParse,
				"failed to parse config at %s", configPath)
		}
	} else if path != "" {
		// An explicitly requested file must exist
		return nil, cerrors.Newf(cerrors.ErrConfigLoad, "config file not found at %s", path)
	}

	// 4. Environment overrides: CORTEX_CATALOG_PATH, CORTEX_COLOR, ...
	if err := k.Load(env.Provider("CORTEX_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CORTEX_"))
	}), nil); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to load env overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return cerrors.Newf(cerrors.ErrConfigParse,
			"invalid color mode %q (want auto, always or never)", c.Color)
	}
	if strings.TrimSpace(c.AptCommand) == "" {
		return cerrors.New(cerrors.ErrConfigParse, "apt_command must not be empty")
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "cortex", "config.toml")
}

// WriteStarter writes a commented starter config to path, refusing to
// overwrite an existing file.
func WriteStarter(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return cerrors.Newf(cerrors.ErrInvalidInput, "config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to create config directory")
	}

	out, err := gotoml.Marshal(map[string]interface{}{
		"catalog_path": cfg.CatalogPath,
		"color":        cfg.Color,
		"assume_yes":   cfg.AssumeYes,
		"apt_command":  cfg.AptCommand,
	})
	if err != nil {
		return cerrors.Wrap(err, cerrors.ErrInternal, "failed to encode config")
	}

	header := "# Cortex configuration.\n# Generated defaults; see cortex topics config.\n\n"
	if err := os.WriteFile(path, append([]byte(header), out...), 0644); err != nil {
		return cerrors.Wrapf(err, cerrors.ErrConfigLoad, "failed to write config to %s", path)
	}
	return nil
}
