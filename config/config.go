// Package config loads the optional YAML file tuning the generated Rust code.
//
// Example:
//
//	crate: crate::fzn
//	derive: "#[derive(Clone, Debug)]"
//	model_param: "&mut Model"
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mlwelles/fznGen/generator"
)

var ErrInvalidConfig = errors.New("invalid config")

var rustPathRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)

// Config holds the settings read from the config file.
type Config struct {
	Crate      string `yaml:"crate"`       // module hosting the FlatZinc layer
	Derive     string `yaml:"derive"`      // attribute put on generated types
	ModelParam string `yaml:"model_param"` // type of the try_from_item model argument
	LogLevel   string `yaml:"log_level"`   // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() Config {
	opts := generator.DefaultOptions()
	return Config{
		Crate:      opts.Crate,
		Derive:     opts.Derive,
		ModelParam: opts.ModelParam,
		LogLevel:   "info",
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !rustPathRe.MatchString(c.Crate) {
		return fmt.Errorf("%w: crate %q is not a Rust module path", ErrInvalidConfig, c.Crate)
	}
	if !strings.HasPrefix(c.Derive, "#[") || !strings.HasSuffix(c.Derive, "]") {
		return fmt.Errorf("%w: derive %q is not an attribute", ErrInvalidConfig, c.Derive)
	}
	if strings.TrimSpace(c.ModelParam) == "" {
		return fmt.Errorf("%w: model_param must not be empty", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// GeneratorOptions returns the generator settings carried by c.
func (c Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Crate:      c.Crate,
		Derive:     c.Derive,
		ModelParam: c.ModelParam,
	}
}
