package config

import (
	"github.com/arthur-debert/sigslot/pkg/errors"
)

// Accepted values for Output.Color and Output.Format
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatTable = "table"
	FormatPlain = "plain"
)

// Config is the complete sigslot configuration
type Config struct {
	Log    Log    `koanf:"log" toml:"log" yaml:"log"`
	Output Output `koanf:"output" toml:"output" yaml:"output"`
	Demo   Demo   `koanf:"demo" toml:"demo" yaml:"demo"`
}

// Log controls the global logger
type Log struct {
	Verbosity int    `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
	File      string `koanf:"file" toml:"file" yaml:"file"`
}

// Output controls how scenario results are rendered
type Output struct {
	Color  string `koanf:"color" toml:"color" yaml:"color"`
	Format string `koanf:"format" toml:"format" yaml:"format"`
}

// Demo holds the defaults of the run command
type Demo struct {
	// Args is passed to every scenario
	Args []int `koanf:"args" toml:"args" yaml:"args"`
	// Scenarios limits the run command to these names; empty runs all
	Scenarios []string `koanf:"scenarios" toml:"scenarios" yaml:"scenarios"`
}

// Validate checks the values a file or the environment could have broken
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must not be negative, got %d", c.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color must be auto, always or never, got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}

	switch c.Output.Format {
	case FormatTable, FormatPlain:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.format must be table or plain, got %q", c.Output.Format).
			WithDetail("key", "output.format")
	}

	return nil
}
