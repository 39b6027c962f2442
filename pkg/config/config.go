// Package config loads the layered application configuration: embedded
// defaults, then the user config file from the XDG config dir, then
// CRATEGROUPS_* environment variables. This configures the tool itself;
// group definitions live in the workspace manifest and are handled by the
// workspace package.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/crategroups/crategroups/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the application configuration
type Config struct {
	Tool ToolConfig `koanf:"tool"`
	List ListConfig `koanf:"list"`
}

// ToolConfig configures the wrapped build tool
type ToolConfig struct {
	// Command is the binary name or path used for metadata loading and
	// group commands
	Command string `koanf:"command"`
}

// ListConfig configures the list command output
type ListConfig struct {
	ShowPaths bool `koanf:"show_paths"`
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load returns the merged configuration
func Load() (*Config, error) {
	return loadFrom(userConfigPath())
}

// loadFrom keeps the file path injectable for tests
func loadFrom(userConfig string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config file, when present
	if userConfig != "" {
		if _, err := os.Stat(userConfig); err == nil {
			if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
				return nil, apperrors.Wrap(err, apperrors.ErrConfigParse, "failed to parse user config").
					WithDetail("path", userConfig)
			}
		}
	}

	// 3. Environment overrides: CRATEGROUPS_TOOL_COMMAND=cross etc.
	err := k.Load(env.Provider("CRATEGROUPS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CRATEGROUPS_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// userConfigPath returns the user config file location in the XDG config dir
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "crategroups", "config.toml")
}
