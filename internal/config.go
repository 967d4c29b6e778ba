package internal

import (
	"errors"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Database DatabaseConfig    `yaml:"database"`
	Time     TimeConfig        `yaml:"time"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Time.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// DatabaseConfig holds the event database location. An empty path selects
// the platform default.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// TimeConfig selects the zone used to interpret and display times.
type TimeConfig struct {
	Timezone string `yaml:"timezone"`
}

// Validate validates the time configuration.
func (c *TimeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timezone, validation.By(func(any) error {
			_, err := c.Location()
			return err
		})),
	)
}

// Location returns the configured zone, or time.Local when none is set.
func (c *TimeConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.New("unknown time zone")
	}
	return loc, nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelWarn,
			LogFormat: LogFormatText,
		},
	}
}
