package core

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds runtime options shared by every command
type Config struct {
	Delim       rune
	Encoding    string
	Quiet       bool
	LogLevel    string
	Format      string
	Ignore      []string
	IgnoreRe    []string
	KeepGoing   bool
	NoRecursive bool
	Concurrency int
}

// NewConfig returns a Config initialized with default values
func NewConfig() *Config {
	return &Config{
		Delim:       ',',
		Encoding:    "utf-8",
		Quiet:       false,
		LogLevel:    "warn",
		Format:      "plain",
		KeepGoing:   false,
		NoRecursive: false,
		Concurrency: 32,
	}
}

// fileConfig mirrors Config in a YAML file. Pointers tell unset keys apart
// from zero values.
type fileConfig struct {
	Ignore       []string `yaml:"ignore"`
	IgnoreRegexp []string `yaml:"ignore_regexp"`
	StopOnErrors *bool    `yaml:"stop_on_errors"`
	Recursive    *bool    `yaml:"recursive"`
	Concurrency  *int     `yaml:"concurrency"`
	Format       string   `yaml:"format"`
	Delim        string   `yaml:"delim"`
	Encoding     string   `yaml:"encoding"`
	LogLevel     string   `yaml:"log_level"`
	Quiet        *bool    `yaml:"quiet"`
}

// LoadFile applies the settings of a YAML config file on top of c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	c.Ignore = append(c.Ignore, fc.Ignore...)
	c.IgnoreRe = append(c.IgnoreRe, fc.IgnoreRegexp...)
	if fc.StopOnErrors != nil {
		c.KeepGoing = !*fc.StopOnErrors
	}
	if fc.Recursive != nil {
		c.NoRecursive = !*fc.Recursive
	}
	if fc.Concurrency != nil {
		c.Concurrency = *fc.Concurrency
	}
	if fc.Format != "" {
		c.Format = fc.Format
	}
	if fc.Delim != "" {
		d, err := ParseDelim(fc.Delim)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.Delim = d
	}
	if fc.Encoding != "" {
		c.Encoding = fc.Encoding
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Quiet != nil {
		c.Quiet = *fc.Quiet
	}
	return nil
}

// FromFlags updates the Config fields from a parsed FlagSet. A config file
// named by --config is loaded first; flags set on the command line win.
func (c *Config) FromFlags(fs *pflag.FlagSet) error {
	path, err := fs.GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return err
		}
	}

	if fs.Changed("delim") {
		d, err := fs.GetString("delim")
		if err != nil {
			return err
		}

		dr, err := ParseDelim(d)
		if err != nil {
			return err
		}
		c.Delim = dr
	}

	if fs.Changed("encoding") {
		enc, err := fs.GetString("encoding")
		if err != nil {
			return err
		}
		c.Encoding = enc
	}

	if fs.Changed("quiet") {
		q, err := fs.GetBool("quiet")
		if err != nil {
			return err
		}
		c.Quiet = q
	}

	if fs.Changed("log-level") {
		lvl, err := fs.GetString("log-level")
		if err != nil {
			return err
		}
		c.LogLevel = lvl
	}

	return nil
}

func ParseDelim(d string) (rune, error) {
	if d == "" || d == "," || d == "comma" {
		return ',', nil
	}
	if d == `\t` || d == "tab" {
		return '\t', nil
	}
	if d == "|" || d == "pipe" {
		return '|', nil
	}

	r := []rune(d)
	if len(r) != 1 {
		return 0, fmt.Errorf("--delim must be a single character or one of: tab, comma, pipe")
	}

	return r[0], nil
}
