// Package config loads graycalc settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the default config path.
const EnvPath = "GRAYCALC_CONFIG"

const (
	dirName  = ".graycalc"
	fileName = "config.toml"
)

// Config is the full set of file-backed settings.
type Config struct {
	Server ServerConfig `toml:"server"`
	Output OutputConfig `toml:"output"`
}

// ServerConfig configures `graycalc serve`.
type ServerConfig struct {
	// Listen is the address to listen on (e.g., ":5000").
	Listen string `toml:"listen"`

	Debug    bool `toml:"debug"`
	JSONLogs bool `toml:"json_logs"`

	// AssetsDir serves the page from disk and reloads it on change.
	// Empty serves the assets compiled into the binary.
	AssetsDir string `toml:"assets_dir"`
}

// OutputConfig configures how the CLI prints results.
type OutputConfig struct {
	// Format is one of text, markdown, json or yaml.
	Format string `toml:"format"`

	// Color is one of auto, always or never.
	Color string `toml:"color"`
}

var (
	formats = []string{"text", "markdown", "json", "yaml"}
	colors  = []string{"auto", "always", "never"}
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Server: ServerConfig{Listen: ":5000"},
		Output: OutputConfig{Format: "text", Color: "auto"},
	}
}

// DefaultPath returns ~/.graycalc/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Resolve picks the config path: an explicit path first, then $GRAYCALC_CONFIG,
// then the default location. explicit reports whether the file must exist.
func Resolve(path string) (resolved string, explicit bool, err error) {
	if path != "" {
		return path, true, nil
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true, nil
	}
	resolved, err = DefaultPath()
	return resolved, false, err
}

// Load reads the config at path over the defaults. A missing file is only an
// error when the path was chosen explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, explicit, err := Resolve(path)
	if err != nil {
		return cfg, err
	}

	md, err := toml.DecodeFile(resolved, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return cfg, fmt.Errorf("could not read config %s: %w", resolved, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown keys in %s: %s", resolved, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Validate checks the server table on its own, for callers that overlay
// command-line flags after Load.
func (s ServerConfig) Validate() error {
	if s.Listen == "" {
		return errors.New("server.listen must not be empty")
	}
	return nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("output.format %q must be one of %s", c.Output.Format, strings.Join(formats, ", "))
	}
	if !slices.Contains(colors, c.Output.Color) {
		return fmt.Errorf("output.color %q must be one of %s", c.Output.Color, strings.Join(colors, ", "))
	}
	return nil
}
