// Package config loads search defaults for the sift CLI from .sift.kdl or
// .sift.toml files. The library itself takes options programmatically; file
// config exists so CLI users don't repeat flags.
package config

import (
	"os"
	"path/filepath"
)

// Config mirrors the search options plus the result limit. Values are merged
// as: defaults, then config file, then CLI flags.
type Config struct {
	CaseSensitive   bool
	Flexibility     int
	IgnoreStopWords bool
	Stemming        bool
	Limit           int
	Exclusions      []string
}

// Default returns the documented defaults.
func Default() Config {
	return Config{Flexibility: 2, Limit: 1}
}

// Load reads the config file at path, dispatching on the file extension
// (.toml for TOML, anything else is parsed as KDL). A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	if filepath.Ext(path) == ".toml" {
		return LoadTOML(path)
	}
	return LoadKDL(path)
}

// clamp normalizes out-of-range values rather than erroring: flexibility is
// floored at zero and limit at one.
func (c Config) clamp() Config {
	if c.Flexibility < 0 {
		c.Flexibility = 0
	}
	if c.Limit < 1 {
		c.Limit = 1
	}
	return c
}
