// Package config holds the settings of a labeling run: image size and
// density, generator seed, presentation and logging. Settings come from
// Default, optionally overlaid by a TOML file, then by command-line flags.
package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Bounds and defaults accepted for a run.
const (
	MinDimension     = 5
	MaxDimension     = 20
	DefaultDimension = 15
	DefaultDensity   = 0.33
	DefaultLogLevel  = "info"
)

// ErrUnknownKey is returned by Load when the file sets a key Config does not define.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the full set of run settings.
type Config struct {
	// Dimension is the interior side length, in [MinDimension, MaxDimension].
	Dimension int `toml:"dimension"`
	// Density is the foreground probability, in [0,1).
	Density float64 `toml:"density"`
	// Seed fixes the image generator; 0 means seed from the clock.
	Seed int64 `toml:"seed"`
	// Color enables coloured grid output on terminals.
	Color bool `toml:"color"`
	// Verify runs invariant checks and the DFS/BFS comparison after labeling.
	Verify bool `toml:"verify"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Dimension: DefaultDimension,
		Density:   DefaultDensity,
		Color:     true,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a TOML file over Default. Keys absent from the file keep their
// default value; unknown keys are rejected with ErrUnknownKey.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}

	return cfg, nil
}

// Parse decodes TOML data over Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Wrap(ErrUnknownKey, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// DimensionInRange reports whether d is an accepted dimension.
func DimensionInRange(d int) bool {
	return d >= MinDimension && d <= MaxDimension
}

// DensityInRange reports whether p is an accepted density.
func DensityInRange(p float64) bool {
	return p >= 0 && p < 1
}

// Normalize replaces out-of-range values with their defaults and returns the
// names of the fields it reset.
func (c *Config) Normalize() []string {
	var reset []string
	if !DimensionInRange(c.Dimension) {
		c.Dimension = DefaultDimension
		reset = append(reset, "dimension")
	}
	if !DensityInRange(c.Density) {
		c.Density = DefaultDensity
		reset = append(reset, "density")
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
		reset = append(reset, "log_level")
	}

	return reset
}
