package config

import (
	"strings"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/arthur-debert/cascade/pkg/types"
)

// SupportedExtensions lists the data file formats the reader can parse
var SupportedExtensions = []string{"json", "yaml", "yml", "toml"}

// Config is the process-wide configuration consumed by the data cascade.
// It is treated as immutable once loaded.
type Config struct {
	Dir                Dir      `koanf:"dir"`
	DataTemplateEngine string   `koanf:"data_template_engine"`
	Keys               Keys     `koanf:"keys"`
	PackageFile        string   `koanf:"package_file"`
	DataExtensions     []string `koanf:"data_extensions"`

	// ConfigData is merged over file-discovered global data
	ConfigData map[string]interface{} `koanf:"data"`

	// ConfigDataFunc, when set, supplies configuration data instead of ConfigData
	ConfigDataFunc func() (map[string]interface{}, error) `koanf:"-"`
}

// Dir holds directory names
type Dir struct {
	// Input is the input root content paths are resolved against
	Input string `koanf:"input"`
	// Data is the global data directory name, relative to Input
	Data string `koanf:"data"`
}

// Keys holds top-level key names reserved in the merged data
type Keys struct {
	// Package is the key the imported manifest is exposed under
	Package string `koanf:"package"`
}

// Validate checks the configuration for values the cascade cannot work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Keys.Package) == "" {
		return errors.New(errors.ErrConfigValid, "keys.package cannot be empty")
	}
	if strings.TrimSpace(c.Dir.Input) == "" {
		return errors.New(errors.ErrConfigValid, "dir.input cannot be empty")
	}
	for _, ext := range paths.NormalizeExtensions(c.DataExtensions) {
		if !isSupported(ext) {
			return errors.Newf(errors.ErrConfigValid, "unsupported data extension %q", ext).
				WithDetail("supported", SupportedExtensions)
		}
	}
	return nil
}

// Extensions returns the normalized data extensions
func (c *Config) Extensions() []string {
	return paths.NormalizeExtensions(c.DataExtensions)
}

// ResolveConfigData returns the configuration-supplied data. ConfigDataFunc
// takes precedence over ConfigData; neither yields an empty mapping.
func (c *Config) ResolveConfigData() (types.DataMap, error) {
	if c.ConfigDataFunc != nil {
		data, err := c.ConfigDataFunc()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "configuration data function failed")
		}
		if data == nil {
			return types.DataMap{}, nil
		}
		return data, nil
	}
	if c.ConfigData != nil {
		return c.ConfigData, nil
	}
	return types.DataMap{}, nil
}

func isSupported(ext string) bool {
	for _, s := range SupportedExtensions {
		if s == ext {
			return true
		}
	}
	return false
}
