// Package config loads the approxdate tool configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/mrsinham/approxdate/internal/approxdate"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for YAML serialization.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Clock  ClockConfig  `yaml:"clock"`
	Compat CompatConfig `yaml:"compat"`
	DICOM  DICOMConfig  `yaml:"dicom"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error off"`
	Pretty bool   `yaml:"pretty"`
}

// ClockConfig pins the reference date used for "now". Empty means the wall
// clock.
type ClockConfig struct {
	Now string `yaml:"now" validate:"omitempty,datetime=2006-01-02"`
}

// CompatConfig selects the legacy behaviours needed to read old records.
type CompatConfig struct {
	LegacyUnknownChecks bool `yaml:"legacy_unknown_checks"`
	LegacyOrderingKey   bool `yaml:"legacy_ordering_key"`
}

// DICOMConfig holds DICOM reading settings.
type DICOMConfig struct {
	BirthDateTag string `yaml:"birth_date_tag" validate:"required"`
	StudyDateTag string `yaml:"study_date_tag" validate:"required"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Pretty: true},
		DICOM: DICOMConfig{
			BirthDateTag: "PatientBirthDate",
			StudyDateTag: "StudyDate",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// NewClock returns a clock frozen at Clock.Now, or the wall clock.
func (c *Config) NewClock() (clock.Clock, error) {
	if c.Clock.Now == "" {
		return clock.New(), nil
	}
	t, err := time.Parse(time.DateOnly, c.Clock.Now)
	if err != nil {
		return nil, fmt.Errorf("clock.now: %w", err)
	}
	mock := clock.NewMock()
	mock.Set(t)
	return mock, nil
}

// DateOptions returns the approxdate variants selected by Compat.
func (c *Config) DateOptions() []approxdate.Option {
	var opts []approxdate.Option
	if c.Compat.LegacyUnknownChecks {
		opts = append(opts, approxdate.WithLegacyUnknownChecks())
	}
	if c.Compat.LegacyOrderingKey {
		opts = append(opts, approxdate.WithLegacyOrderingKey())
	}
	return opts
}
