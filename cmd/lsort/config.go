package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v2"

	"github.com/tychoish/dlist/ers"
)

// config holds the settings of the sort command. Any of them may be
// set in a TOML or YAML file, and flags given on the command line
// take precedence over the file.
type config struct {
	// Reverse sorts from high to low.
	Reverse bool `toml:"reverse" yaml:"reverse"`
	// Numeric orders lines by their value as numbers rather than
	// byte-wise.
	Numeric bool `toml:"numeric" yaml:"numeric"`
	// Metrics logs a summary of the work done by the sort.
	Metrics bool `toml:"metrics" yaml:"metrics"`
	// JSON writes the sorted lines as a JSON array.
	JSON bool `toml:"json" yaml:"json"`
	// LogLevel overrides the level of the logger, unless it is set
	// with the -log-level flag.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// loadConfig reads a config file. Files named *.yaml or *.yml are
// YAML, and everything else is TOML.
func loadConfig(path string) (*config, error) {
	var c config

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, ers.Wrapf(err, "loading config %q", path)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.SetStrict(true)
		if err := dec.Decode(&c); err != nil {
			return nil, ers.Wrapf(err, "loading config %q", path)
		}
	default:
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return nil, ers.Wrapf(err, "loading config %q", path)
		}
	}

	return &c, nil
}
