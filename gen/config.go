package gen

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config controls the generated output.
type Config struct {
	// Package is the package name of the generated files.
	Package string `yaml:"package"`

	// Target is the directory generated files are written to.
	Target string `yaml:"target"`

	// Header is written on top of every generated file. A sensible
	// code-generation marker is used when empty.
	Header string `yaml:"header,omitempty"`

	// Workers bounds the number of files generated in parallel.
	// Defaults to GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datamodel/gen: read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("datamodel/gen: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks the required options and fills the defaults.
func (c *Config) validate() error {
	if c == nil {
		return NewConfigError("config", nil, "missing configuration")
	}
	if c.Target == "" {
		return NewConfigError("target", nil, "missing target directory")
	}
	if c.Package == "" {
		return NewConfigError("package", nil, "missing package name")
	}
	if c.Header == "" {
		c.Header = "Code generated by datamodel, DO NOT EDIT."
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return nil
}
