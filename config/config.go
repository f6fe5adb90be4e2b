// Package config holds the settings for compiling a Unihan data directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes where the input files are and how they are decoded.
// Relative file names are resolved against DataDir.
type Config struct {
	DataDir      string `yaml:"data_dir"      env:"UNIHAN_DATA_DIR"      env-default:"."`
	UnihanDir    string `yaml:"unihan_dir"    env:"UNIHAN_UNIHAN_DIR"    env-default:"unihan"`
	SchemaFile   string `yaml:"schema_file"   env:"UNIHAN_SCHEMA_FILE"   env-default:"fields.yaml"`
	RadicalsFile string `yaml:"radicals_file" env:"UNIHAN_RADICALS_FILE" env-default:"CJKRadicals.txt"`
	JyutpingFile string `yaml:"jyutping_file" env:"UNIHAN_JYUTPING_FILE" env-default:"jyutping.csv"`
	Workers      int    `yaml:"workers"       env:"UNIHAN_WORKERS"       env-default:"1"`
	Strict       bool   `yaml:"strict"        env:"UNIHAN_STRICT"`
	FixedArity   bool   `yaml:"fixed_arity"   env:"UNIHAN_FIXED_ARITY"`
	TraceLevel   string `yaml:"trace_level"   env:"UNIHAN_TRACE_LEVEL"   env-default:"Error"`
}

// Load reads the configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// With an empty path only the environment is read.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("unihan config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("unihan config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("unihan config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings which have no usable zero value.
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, is %d", c.Workers))
	}
	switch strings.ToLower(c.TraceLevel) {
	case "debug", "info", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown trace level %q", c.TraceLevel))
	}
	for _, setting := range [][2]string{
		{"unihan_dir", c.UnihanDir},
		{"schema_file", c.SchemaFile},
		{"radicals_file", c.RadicalsFile},
		{"jyutping_file", c.JyutpingFile},
	} {
		if setting[1] == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", setting[0]))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("unihan config: %w", err)
	}
	return nil
}

func (c *Config) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// UnihanPath returns the directory of the Unihan text files.
func (c *Config) UnihanPath() string { return c.path(c.UnihanDir) }

// SchemaPath returns the field definition document.
func (c *Config) SchemaPath() string { return c.path(c.SchemaFile) }

// RadicalsPath returns the CJK radical definition file.
func (c *Config) RadicalsPath() string { return c.path(c.RadicalsFile) }

// JyutpingPath returns the Cantonese romanization index.
func (c *Config) JyutpingPath() string { return c.path(c.JyutpingFile) }
