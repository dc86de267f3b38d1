package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileValues uses pointer fields so absent keys fall through to defaults.
type fileValues struct {
	CaseSensitive   *bool    `toml:"case_sensitive"`
	Flexibility     *int     `toml:"flexibility"`
	IgnoreStopWords *bool    `toml:"ignore_stop_words"`
	Stemming        *bool    `toml:"stemming"`
	Limit           *int     `toml:"limit"`
	Exclusions      []string `toml:"exclusions"`
}

// LoadTOML loads configuration from a .sift.toml file.
func LoadTOML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	var vals fileValues
	if err := toml.Unmarshal(data, &vals); err != nil {
		return Default(), fmt.Errorf("failed to parse TOML config: %w", err)
	}

	cfg := Default()
	if vals.CaseSensitive != nil {
		cfg.CaseSensitive = *vals.CaseSensitive
	}
	if vals.Flexibility != nil {
		cfg.Flexibility = *vals.Flexibility
	}
	if vals.IgnoreStopWords != nil {
		cfg.IgnoreStopWords = *vals.IgnoreStopWords
	}
	if vals.Stemming != nil {
		cfg.Stemming = *vals.Stemming
	}
	if vals.Limit != nil {
		cfg.Limit = *vals.Limit
	}
	if len(vals.Exclusions) > 0 {
		cfg.Exclusions = vals.Exclusions
	}
	return cfg.clamp(), nil
}
