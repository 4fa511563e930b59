// SPDX-License-Identifier: MIT

// Package config resolves matcalc settings from an optional matcalc.yaml,
// a .env file and MATCALC_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up when no explicit path is given.
const FileName = "matcalc.yaml"

// Loader names accepted by Config.Loader.
const (
	LoaderBuffered = "buffered"
	LoaderMapped   = "mapped"
)

// Environment overrides.
const (
	EnvDataDir   = "MATCALC_DATA_DIR"
	EnvPrecision = "MATCALC_PRECISION"
	EnvFormat    = "MATCALC_FORMAT"
	EnvOutput    = "MATCALC_OUTPUT"
	EnvLoader    = "MATCALC_LOADER"
)

// dotenvDepth is how many parent directories LoadDotEnv inspects.
const dotenvDepth = 5

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config represents the resolved matcalc settings.
type Config struct {
	DataDir   string `yaml:"data_dir"`
	Inputs    Inputs `yaml:"inputs"`
	Precision int    `yaml:"precision"`
	Format    string `yaml:"format,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Loader    string `yaml:"loader"`
}

// Inputs names the four operand files, relative to DataDir.
type Inputs struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
	C string `yaml:"c"`
	D string `yaml:"d"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:   "data",
		Inputs:    Inputs{A: "A.txt", B: "B.txt", C: "C.txt", D: "D.txt"},
		Precision: 2,
		Loader:    LoaderBuffered,
	}
}

// LoadOptional reads the YAML file at path over the defaults. A missing file
// is not an error; keys absent from the file keep their default values.
func LoadOptional(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve reads the optional YAML file and applies environment overrides
// without validating, so callers can layer more overrides (flags) on top
// before calling Validate.
func Resolve(path string) (*Config, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is Resolve followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv walks up from dir looking for a .env file and loads the first
// one found. Variables already present in the environment win. It returns
// the path loaded, or "" when none was found.
func LoadDotEnv(dir string) (string, error) {
	for i := 0; i < dotenvDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("failed to load %s: %w", envPath, err)
			}
			return envPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision %d: %w", c.Precision, ErrInvalid)
	}
	switch c.Loader {
	case LoaderBuffered, LoaderMapped:
	default:
		return fmt.Errorf("loader %q: %w", c.Loader, ErrInvalid)
	}
	for name, f := range map[string]string{"a": c.Inputs.A, "b": c.Inputs.B, "c": c.Inputs.C, "d": c.Inputs.D} {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("inputs.%s is empty: %w", name, ErrInvalid)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvPrecision); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPrecision, v, ErrInvalid)
		}
		c.Precision = p
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := os.LookupEnv(EnvOutput); ok && v != "" {
		c.Output = v
	}
	if v, ok := os.LookupEnv(EnvLoader); ok && v != "" {
		c.Loader = v
	}

	return nil
}
