// Package config loads the server settings from an optional TOML file and
// the environment.
//
// Settings are resolved in this order, later sources winning:
//
//  1. Defaults (see Default)
//  2. The TOML file named by --config or SDF_MCP_CONFIG
//  3. SDF_MCP_LOG_LEVEL for the log level
//
// A minimal file:
//
//	log_level = "debug"
//	threshold = 100
//	precision = "f16"
//
//	[palette]
//	inside  = "#1F3A93"
//	edge    = "#FFFFFF"
//	outside = "#C0392B"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
)

// Environment variables consulted by Load and the command line.
const (
	EnvConfig   = "SDF_MCP_CONFIG"
	EnvLogLevel = "SDF_MCP_LOG_LEVEL"
)

// Precision names accepted in the file and in tool arguments.
const (
	PrecisionF32 = "f32"
	PrecisionF16 = "f16"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the server settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error or fatal.
	LogLevel string `toml:"log_level"`

	// Threshold is the default luminance cutoff (0-255). Pixels strictly
	// brighter than it are inside the shape.
	Threshold int `toml:"threshold"`

	// Precision is the default distance storage, "f32" or "f16".
	Precision string `toml:"precision"`

	// Palette colors the colorized rendering of a field.
	Palette Palette `toml:"palette"`
}

// Palette holds the hex colors used by colorized renderings. Inside is used
// for the deepest interior, Outside for the farthest exterior and Edge for
// the boundary itself.
type Palette struct {
	Inside  string `toml:"inside"`
	Edge    string `toml:"edge"`
	Outside string `toml:"outside"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Threshold: 127,
		Precision: PrecisionF32,
		Palette: Palette{
			Inside:  "#1F3A93",
			Edge:    "#FFFFFF",
			Outside: "#C0392B",
		},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path skips the file. Keys the file sets that Config does not know
// are rejected, so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("%w: threshold %d outside 0-255", ErrInvalid, c.Threshold)
	}
	switch c.Precision {
	case PrecisionF32, PrecisionF16:
	default:
		return fmt.Errorf("%w: precision %q, want %q or %q", ErrInvalid, c.Precision, PrecisionF32, PrecisionF16)
	}
	for name, hex := range map[string]string{
		"inside":  c.Palette.Inside,
		"edge":    c.Palette.Edge,
		"outside": c.Palette.Outside,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: palette.%s %q is not a #RRGGBB color", ErrInvalid, name, hex)
		}
	}
	return nil
}

// Level returns the parsed log level. Call it only on a validated Config;
// an unparseable level falls back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
