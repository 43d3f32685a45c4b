// Package config reads aoiro.yaml from the books root and overlays
// environment variables, optionally loaded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file at the books root.
const FileName = "aoiro.yaml"

// Environment overrides.
const (
	EnvFiscalYear          = "AOIRO_FISCAL_YEAR"
	EnvGitAutoCommit       = "AOIRO_GIT_AUTO_COMMIT"
	EnvBlueReturnDeduction = "AOIRO_BLUE_RETURN_DEDUCTION"
)

// Config represents the top-level aoiro.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Filing   FilingConfig   `yaml:"filing"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the sole proprietor.
type BusinessConfig struct {
	Name  string `yaml:"name"`  // 屋号
	Owner string `yaml:"owner"` // 氏名
}

// FiscalConfig selects the default fiscal year for reports. Empty means the
// current calendar year.
type FiscalConfig struct {
	Year string `yaml:"year,omitempty"`
}

// FilingConfig controls the annual return.
type FilingConfig struct {
	BlueReturnDeduction int64 `yaml:"blue_return_deduction"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an aoiro.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv loads the given .env files, skipping missing ones, then overrides
// fields from the AOIRO_* environment variables. Variables already set in the
// process environment win over .env values.
func (c *Config) ApplyEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvFiscalYear); ok {
		c.Fiscal.Year = v
	}
	if v, ok := os.LookupEnv(EnvGitAutoCommit); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvGitAutoCommit, err)
		}
		c.Git.AutoCommit = b
	}
	if v, ok := os.LookupEnv(EnvBlueReturnDeduction); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBlueReturnDeduction, err)
		}
		if n < 0 {
			return fmt.Errorf("invalid %s: negative deduction %d", EnvBlueReturnDeduction, n)
		}
		c.Filing.BlueReturnDeduction = n
	}
	return nil
}

// Default returns a Config with sensible defaults for new books.
func Default(businessName, owner string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:  businessName,
			Owner: owner,
		},
		Filing: FilingConfig{
			BlueReturnDeduction: 650000,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "aoiro",
			AuthorEmail: "aoiro@localhost",
		},
	}
}
