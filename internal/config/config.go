// Package config handles loading generator configuration from files.
//
// Configuration can be specified in a JSON file named shaderstructs.json or
// .shaderstructsrc, or in a YAML file named shaderstructs.yaml or
// shaderstructs.yml. The config file is searched for in the current directory
// and parent directories. Relative paths in a config file are relative to the
// directory holding it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/HugoDaniel/shaderstructs/pkg/api"
)

// Config represents the configuration file structure.
// All fields are optional and will use default values if not specified.
type Config struct {
	// Root is the directory searched for shaders.
	Root *string `json:"root,omitempty" yaml:"root,omitempty"`

	// Output is the generated file path.
	Output *string `json:"output,omitempty" yaml:"output,omitempty"`

	// Extensions are the shader binary extensions, e.g. [".spv"].
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// Tool is the reflection tool binary.
	Tool *string `json:"tool,omitempty" yaml:"tool,omitempty"`

	// Timeout bounds each tool invocation, as a duration such as "30s".
	Timeout *string `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// WGSL also reflects .wgsl sources in process.
	WGSL *bool `json:"wgsl,omitempty" yaml:"wgsl,omitempty"`

	// Target is the output language, "cpp" or "go".
	Target *string `json:"target,omitempty" yaml:"target,omitempty"`

	// Namespace wraps C++ output.
	Namespace *string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Package is the Go package name.
	Package *string `json:"package,omitempty" yaml:"package,omitempty"`

	// Collision is the name collision policy.
	Collision *string `json:"collision,omitempty" yaml:"collision,omitempty"`

	// Vertex emits vertex input structs.
	Vertex *bool `json:"vertex,omitempty" yaml:"vertex,omitempty"`

	// Pad inserts explicit padding members.
	Pad *bool `json:"pad,omitempty" yaml:"pad,omitempty"`

	// ReflectionFiles writes <binary>.json next to each shader (default true).
	ReflectionFiles *bool `json:"reflectionFiles,omitempty" yaml:"reflectionFiles,omitempty"`

	// IgnorePrefixes lists type name prefixes that are never emitted.
	IgnorePrefixes []string `json:"ignorePrefixes,omitempty" yaml:"ignorePrefixes,omitempty"`

	// Strict exits with an error status when any error diagnostic is reported.
	Strict *bool `json:"strict,omitempty" yaml:"strict,omitempty"`

	dir string
}

// ConfigFileNames are the names searched for config files, in order of preference.
var ConfigFileNames = []string{
	"shaderstructs.json",
	".shaderstructsrc",
	"shaderstructs.yaml",
	"shaderstructs.yml",
}

// Load searches for a config file starting from the given directory
// and walking up to parent directories. Returns nil if no config file is found.
func Load(startDir string) (*Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", err
	}
	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := LoadFile(path)
				return cfg, path, err
			}
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, no config found
			return nil, "", nil
		}
		dir = parent
	}
}

// LoadFile loads configuration from a specific file path. Files ending in
// .yaml or .yml are YAML; anything else is JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// resolve makes a config-relative path usable from the working directory.
func (c *Config) resolve(p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// OutputPath returns the configured output path, or "" if none is set.
func (c *Config) OutputPath() string {
	if c == nil || c.Output == nil {
		return ""
	}
	return c.resolve(*c.Output)
}

// IsStrict reports whether the config asks for strict mode.
func (c *Config) IsStrict() bool {
	return c != nil && c.Strict != nil && *c.Strict
}

// ToOptions converts a Config to api.Options, using defaults for unset fields.
func (c *Config) ToOptions() (api.Options, error) {
	opts := api.DefaultOptions()
	if c == nil {
		return opts, nil
	}

	if c.Root != nil {
		opts.Root = c.resolve(*c.Root)
	}
	if len(c.Extensions) > 0 {
		opts.Extensions = c.Extensions
	}
	if c.Tool != nil {
		opts.Tool = *c.Tool
	}
	if c.Timeout != nil {
		d, err := time.ParseDuration(*c.Timeout)
		if err != nil {
			return opts, fmt.Errorf("invalid timeout %q: %w", *c.Timeout, err)
		}
		opts.Timeout = d
	}
	if c.WGSL != nil {
		opts.WGSL = *c.WGSL
	}
	if c.Target != nil {
		opts.Target = *c.Target
	}
	if c.Namespace != nil {
		opts.Namespace = *c.Namespace
	}
	if c.Package != nil {
		opts.Package = *c.Package
	}
	if c.Collision != nil {
		opts.Collision = *c.Collision
	}
	if c.Vertex != nil {
		opts.Vertex = *c.Vertex
	}
	if c.Pad != nil {
		opts.Pad = *c.Pad
	}
	if c.ReflectionFiles != nil {
		opts.WriteReflectionFiles = *c.ReflectionFiles
	}
	if c.IgnorePrefixes != nil {
		opts.IgnorePrefixes = c.IgnorePrefixes
	}

	return opts, nil
}

// MergeOptions holds the options given on the command line.
type MergeOptions struct {
	// CLI flags (nil means not specified on CLI)
	Root              *string
	Extensions        []string
	Tool              *string
	Timeout           *time.Duration
	WGSL              *bool
	Target            *string
	Namespace         *string
	Package           *string
	Collision         *string
	Vertex            *bool
	Pad               *bool
	NoReflectionFiles bool
}

// Merge merges CLI options with config file options.
// CLI options override config file options when specified.
func (c *Config) Merge(cli MergeOptions) (api.Options, error) {
	opts, err := c.ToOptions()
	if err != nil {
		return opts, err
	}

	// CLI overrides
	if cli.Root != nil {
		opts.Root = *cli.Root
	}
	if len(cli.Extensions) > 0 {
		opts.Extensions = cli.Extensions
	}
	if cli.Tool != nil {
		opts.Tool = *cli.Tool
	}
	if cli.Timeout != nil {
		opts.Timeout = *cli.Timeout
	}
	if cli.WGSL != nil {
		opts.WGSL = *cli.WGSL
	}
	if cli.Target != nil {
		opts.Target = *cli.Target
	}
	if cli.Namespace != nil {
		opts.Namespace = *cli.Namespace
	}
	if cli.Package != nil {
		opts.Package = *cli.Package
	}
	if cli.Collision != nil {
		opts.Collision = *cli.Collision
	}
	if cli.Vertex != nil {
		opts.Vertex = *cli.Vertex
	}
	if cli.Pad != nil {
		opts.Pad = *cli.Pad
	}
	if cli.NoReflectionFiles {
		opts.WriteReflectionFiles = false
	}

	return opts, nil
}
