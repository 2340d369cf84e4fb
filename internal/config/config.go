//-------------------------------------------------------------------------
//
// profiledw - clickstream warehouse builder
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for profiledw.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for profiledw.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Run holds configuration for the run subcommand.
	Run RunConfig `mapstructure:"run"`
}

// RunConfig holds configuration for one pipeline run.
type RunConfig struct {
	// InputDir is the directory holding the raw clickstream CSV files.
	InputDir string `mapstructure:"input_dir"`

	// SampleSize caps the number of sampled product ids.
	SampleSize int `mapstructure:"sample_size"`

	// SampleSeed seeds the product sampler.
	SampleSeed int64 `mapstructure:"sample_seed"`

	// SampleProbability is the per-product inclusion probability applied
	// before the sample size cap.
	SampleProbability float64 `mapstructure:"sample_probability"`

	// FakerSeed seeds the fake identity generator.
	FakerSeed uint64 `mapstructure:"faker_seed"`

	// DemographicSeed seeds the gender and age draws.
	DemographicSeed int64 `mapstructure:"demographic_seed"`

	// Locale selects the fake identity locale (e.g. zh_CN, en_US).
	Locale string `mapstructure:"locale"`

	// MaleProbability is the probability that a synthesized user is male.
	MaleProbability float64 `mapstructure:"male_probability"`

	// AgeMean and AgeStdDev parameterize the normal age branch.
	AgeMean   float64 `mapstructure:"age_mean"`
	AgeStdDev float64 `mapstructure:"age_stddev"`

	// AgeNormalFraction is the fraction of users drawn from the normal
	// branch; the remainder are uniform in [AgeMin, AgeMax].
	AgeNormalFraction float64 `mapstructure:"age_normal_fraction"`
	AgeMin            int     `mapstructure:"age_min"`
	AgeMax            int     `mapstructure:"age_max"`

	// KeepStaging leaves the staging table in place after a successful run.
	KeepStaging bool `mapstructure:"keep_staging"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Run: RunConfig{
			SampleSize:        1000,
			SampleSeed:        0,
			SampleProbability: 0.01,
			FakerSeed:         123,
			DemographicSeed:   123,
			Locale:            "zh_CN",
			MaleProbability:   0.2,
			AgeMean:           30,
			AgeStdDev:         4,
			AgeNormalFraction: 0.8,
			AgeMin:            20,
			AgeMax:            60,
			KeepStaging:       false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./profiledw.yaml
// 3. ~/.config/profiledw/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("profiledw")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "profiledw"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Run.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.Run.SampleSize < 1 {
		return fmt.Errorf("sample_size must be at least 1")
	}
	if c.Run.SampleProbability <= 0 || c.Run.SampleProbability > 1 {
		return fmt.Errorf("sample_probability must be in (0, 1]")
	}
	if c.Run.MaleProbability < 0 || c.Run.MaleProbability > 1 {
		return fmt.Errorf("male_probability must be in [0, 1]")
	}
	if c.Run.AgeStdDev < 0 {
		return fmt.Errorf("age_stddev must be non-negative")
	}
	if c.Run.AgeNormalFraction < 0 || c.Run.AgeNormalFraction > 1 {
		return fmt.Errorf("age_normal_fraction must be in [0, 1]")
	}
	if c.Run.AgeMax < c.Run.AgeMin {
		return fmt.Errorf("age_max must be >= age_min")
	}
	return nil
}
