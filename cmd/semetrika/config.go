package main

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vaclavhorky/semetrika"
)

// configPath is looked up in the working directory; a missing file simply
// yields the built-in defaults.
const configPath = ".semetrika.yaml"

// config carries the defaults a user can pin in .semetrika.yaml.
// Command-line flags override whatever is set here.
type config struct {
	// Dictionary is the length-store path.
	Dictionary string `yaml:"dictionary"`
	// Corpus is the directory of corpus files for learning.
	Corpus string `yaml:"corpus"`
	// MinCount and MaxContradictions are the learning thresholds.
	MinCount          int `yaml:"min_count"`
	MaxContradictions int `yaml:"max_contradictions"`
}

func loadConfig() (config, error) {
	cfg := config{
		Dictionary:        semetrika.DefaultStorePath,
		MinCount:          semetrika.DefaultMinCount,
		MaxContradictions: semetrika.DefaultMaxContradictions,
	}
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Dictionary == "" {
		cfg.Dictionary = semetrika.DefaultStorePath
	}
	if cfg.MinCount == 0 {
		cfg.MinCount = semetrika.DefaultMinCount
	}
	if cfg.MaxContradictions == 0 {
		cfg.MaxContradictions = semetrika.DefaultMaxContradictions
	}
	return cfg, nil
}

// openDictionary loads the length store at path, degrading gracefully:
// a missing store is reported as a warning and scansion proceeds without
// length resolution.
func openDictionary(path string) *semetrika.LengthDictionary {
	ld, err := semetrika.LoadLengthDictionary(path)
	if err != nil {
		warnf("length dictionary not found, cannot add lengths (%v)", err)
		return nil
	}
	return ld
}
