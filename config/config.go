// Package config loads objbuf settings from YAML files.
package config

import (
	"io/ioutil"

	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/achilleasa/objbuf/asset/writer"
	"github.com/achilleasa/objbuf/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string            `yaml:"log_level"`
	Reader   wavefront.Options `yaml:"reader"`
	Export   writer.Options    `yaml:"export"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	return &Config{
		LogLevel: "notice",
		Reader:   wavefront.DefaultOptions(),
		Export: writer.Options{
			DoubleSided: true,
		},
	}
}

// Load a YAML config file. Settings missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: could not read %s", path)
	}
	return Parse(data)
}

// Parse YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: could not parse yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate the config values.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: invalid log_level")
	}
	if err := c.Reader.Validate(); err != nil {
		return errors.Wrap(err, "config: invalid reader settings")
	}
	return nil
}

// Apply the configured log level.
func (c *Config) ApplyLogLevel() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return
	}
	log.SetLevel(level)
}
