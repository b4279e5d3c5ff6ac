package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the search run configuration
type Config struct {
	// Selection settings
	Term    string   `mapstructure:"term"`    // substring term, takes priority over regex when non-empty
	Regex   string   `mapstructure:"regex"`   // selection regex applied to entry names
	Include []string `mapstructure:"include"` // gitignore-style include rules for entry names
	Exclude []string `mapstructure:"exclude"` // gitignore-style exclude rules for entry names

	// Extraction settings
	Extract   bool   `mapstructure:"extract"`    // extract matched entries
	All       bool   `mapstructure:"all"`        // extract whole archives instead of single entries
	Invert    bool   `mapstructure:"invert"`     // apply bit inversion to extracted output
	OutputDir string `mapstructure:"output_dir"` // extraction destination
	Password  string `mapstructure:"password"`   // archive password, empty means unprotected

	// Tool settings
	Tool   string `mapstructure:"tool"`   // external archive program
	Suffix string `mapstructure:"suffix"` // archive file suffix to discover

	// Discovery settings
	ExcludeDirs []string `mapstructure:"exclude_dirs"` // directories skipped during discovery

	// Report settings
	ReportFile string `mapstructure:"report_file"` // JSON run summary path, empty disables

	// Logging
	Verbose bool `mapstructure:"verbose"` // echo per-archive progress and raw tool output
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("term", "")
	v.SetDefault("regex", ".*")
	v.SetDefault("extract", false)
	v.SetDefault("all", false)
	v.SetDefault("invert", false)
	v.SetDefault("output_dir", ".")
	v.SetDefault("password", "")
	v.SetDefault("tool", "7z")
	v.SetDefault("suffix", ".7z")
	v.SetDefault("exclude_dirs", []string{".git", ".svn", ".hg"})
	v.SetDefault("report_file", "")
	v.SetDefault("verbose", false)

	// Read environment variables
	v.SetEnvPrefix("BOLT")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that cannot be defaulted away
func (c *Config) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("archive tool must not be empty")
	}
	if c.Suffix == "" {
		return fmt.Errorf("archive suffix must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

// ExtractAll reports whether whole-archive extraction mode is active
func (c *Config) ExtractAll() bool {
	return c.Extract && c.All
}
