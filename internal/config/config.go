// Package config loads the optional .pombom.yaml configuration file.
// Flags take precedence over the file, which takes precedence over
// defaults; the POMBOM_DIR environment variable overrides everything.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ConfigFile is the configuration filename looked up in the working directory.
const ConfigFile = ".pombom.yaml"

// Config is the main configuration structure for pombom.
type Config struct {
	// Dir is the base directory containing the parent pom.xml.
	Dir string `yaml:"dir,omitempty"`

	// Output is the filename written next to each original POM.
	Output string `yaml:"output,omitempty"`
}

// LoadConfigFn loads the configuration. It is a variable so tests can
// substitute failures.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envDir := os.Getenv("POMBOM_DIR"); envDir != "" {
		cleanDir := filepath.Clean(envDir)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanDir, "..") {
			return nil, fmt.Errorf("invalid POMBOM_DIR: path traversal not allowed, use absolute path instead")
		}
		return withDefaults(&Config{Dir: cleanDir}), nil
	}

	// Second priority: YAML file
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return withDefaults(&Config{}), nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return withDefaults(&cfg), nil
}

func withDefaults(cfg *Config) *Config {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Output == "" {
		cfg.Output = "pom_new.xml"
	}
	return cfg
}

// Validate rejects configurations that would clobber original POM files.
func (c *Config) Validate() error {
	if c.Output == "pom.xml" {
		return fmt.Errorf("output filename %q would overwrite original POM files", c.Output)
	}
	if strings.ContainsRune(c.Output, os.PathSeparator) {
		return fmt.Errorf("output filename %q must not contain path separators", c.Output)
	}
	return nil
}
