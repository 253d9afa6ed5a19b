package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"sortery/internal/domain"
)

// Config is the full invocation surface: the sorting options from the JSON
// config file plus the paths and run flags from the command line.
type Config struct {
	SourceDir string
	TargetDir string
	DryRun    bool
	Verbose   bool
	Plain     bool

	DateFormat   string   `json:"date_format"`
	DateType     string   `json:"date_type"`
	ExcludeType  []string `json:"exclude_type"`
	OnlyType     []string `json:"only_type"`
	PreserveName bool     `json:"preserve_name"`
}

// Default returns the sorting options used when no config file and no
// flags override them.
func Default() Config {
	return Config{
		DateFormat: "%Y-%m-%d",
		DateType:   string(domain.DateModified),
	}
}

// LoadFile merges the JSON config file at path over cfg. Only the sorting
// option fields participate; paths and run flags stay CLI-owned.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// ApplyEnv fills unset values from SORTERY_* environment variables.
func (c *Config) ApplyEnv() {
	if c.SourceDir == "" {
		c.SourceDir = envOrEmpty("SORTERY_SOURCE_DIR")
	}
	if c.TargetDir == "" {
		c.TargetDir = envOrEmpty("SORTERY_TARGET_DIR")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("SORTERY_VERBOSE")
	}
}

// Validate applies the fatal configuration checks that must hold before a
// run starts.
func (c *Config) Validate() error {
	if c.SourceDir == "" || c.TargetDir == "" {
		return errors.New("source and target are required")
	}
	if _, err := domain.ParseDateType(c.DateType); err != nil {
		return err
	}
	return nil
}

// SortConfig converts the validated configuration into the immutable value
// the sorter consumes, normalizing the extension lists into sets.
func (c *Config) SortConfig() domain.SortConfig {
	return domain.SortConfig{
		Source:       c.SourceDir,
		Target:       c.TargetDir,
		DateFormat:   c.DateFormat,
		DateType:     domain.DateType(c.DateType),
		PreserveName: c.PreserveName,
		ExcludeType:  domain.ExtSet(c.ExcludeType),
		OnlyType:     domain.ExtSet(c.OnlyType),
	}
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
