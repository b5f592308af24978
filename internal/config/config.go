// SPDX-License-Identifier: MIT

// Package config holds the sparsecli configuration, read from a YAML file.
//
// Example:
//
//	log:
//	  level: debug
//	  formatter: json
//	display:
//	  color: auto
//	workspace:
//	  dir: ./data
//	  parallelism: 4
//	  preload:
//	    - name: A
//	      path: a.txt
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config is the root of the configuration file.
type Config struct {
	// Log configures the process logger.
	Log Log `yaml:"log"`

	// Display configures grid rendering.
	Display Display `yaml:"display"`

	// Workspace configures where matrices are loaded from.
	Workspace Workspace `yaml:"workspace"`
}

// Log selects the logrus level and formatter.
type Log struct {
	Level     Loglevel  `yaml:"level"`
	Formatter Formatter `yaml:"formatter"`
}

// Display configures terminal output.
type Display struct {
	Color ColorMode `yaml:"color"`
}

// Workspace lists the matrices to load at startup.
type Workspace struct {
	// Dir is the base for relative paths (file arguments and preload entries).
	Dir string `yaml:"dir"`

	// Parallelism bounds concurrent file loads; 0 means one per CPU.
	Parallelism int `yaml:"parallelism"`

	// AllowNaNInf disables the finite-value policy on loaded matrices.
	AllowNaNInf bool `yaml:"allownaninf"`

	// Preload entries are loaded and stored by name before the shell starts.
	Preload []Preload `yaml:"preload"`
}

// Preload names one matrix file.
type Preload struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Loglevel is the level at which operations are logged.
// This can be error, warn, info, or debug.
type Loglevel string

// UnmarshalYAML lowercases and validates the level.
func (l *Loglevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseLoglevel(s)
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// ParseLoglevel validates a level name (case-insensitive).
func ParseLoglevel(s string) (Loglevel, error) {
	s = strings.ToLower(s)
	switch s {
	case "error", "warn", "info", "debug":
		return Loglevel(s), nil
	default:
		return "", fmt.Errorf("invalid loglevel %q: must be one of [error, warn, info, debug]", s)
	}
}

// Formatter selects the log output format: text or json.
type Formatter string

// UnmarshalYAML validates the formatter name.
func (f *Formatter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	s = strings.ToLower(s)
	switch s {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log formatter %q: must be one of [text, json]", s)
	}
	*f = Formatter(s)

	return nil
}

// ColorMode controls colourised grid output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalYAML validates the colour mode.
func (c *ColorMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseColorMode validates a colour mode name (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be one of [auto, always, never]", s)
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:     Log{Level: "info", Formatter: "text"},
		Display: Display{Color: ColorAuto},
	}
}

// Parse reads YAML from rd on top of Default. Unknown keys are rejected.
func Parse(rd io.Reader) (*Config, error) {
	in, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}

	c := Default()
	if err := yaml.UnmarshalStrict(in, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load parses the file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks cross-field constraints that YAML types cannot express.
func (c *Config) Validate() error {
	if c.Workspace.Parallelism < 0 {
		return fmt.Errorf("config: workspace.parallelism must be >= 0, got %d", c.Workspace.Parallelism)
	}
	seen := make(map[string]struct{}, len(c.Workspace.Preload))
	for i, p := range c.Workspace.Preload {
		if p.Name == "" || p.Path == "" {
			return fmt.Errorf("config: workspace.preload[%d]: name and path are required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("config: workspace.preload[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return nil
}

// ResolvePath joins relative paths onto Workspace.Dir.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Workspace.Dir == "" {
		return p
	}

	return filepath.Join(c.Workspace.Dir, p)
}
