// Package config resolves chrono CLI settings from defaults, an optional CUE
// file, .env and CHRONO_* environment variables, and command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/chrono/internal/parse"
	"github.com/roach88/chrono/interval"
)

// Config holds resolved CLI settings.
type Config struct {
	// Format is the output format, "text" or "json".
	Format string `mapstructure:"format"`
	// Unit is the default result unit for commands that produce intervals.
	// Any alias the command line accepts ("d", "minute", "Hours") is valid.
	Unit string `mapstructure:"unit"`
	// Location is the IANA zone civil fields are computed in.
	Location string `mapstructure:"location"`
	// FirstWeekday is the day weeks start on, lowercase English name.
	FirstWeekday string `mapstructure:"first_weekday"`
	// Tolerance is the relative tolerance scenario steps are checked with
	// when they do not set their own.
	Tolerance float64 `mapstructure:"tolerance"`
	// Trace adds a trace id to JSON responses.
	Trace bool `mapstructure:"trace"`
	// Verbose enables debug logging on stderr.
	Verbose bool `mapstructure:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:       "text",
		Unit:         "seconds",
		Location:     "UTC",
		FirstWeekday: "monday",
		Tolerance:    1e-9,
	}
}

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "json"}

// Validate checks every field.
func (c *Config) Validate() error {
	if !isValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if _, err := c.Kind(); err != nil {
		return err
	}
	if _, err := c.LoadLocation(); err != nil {
		return err
	}
	if _, err := c.Weekday(); err != nil {
		return err
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("invalid tolerance %v: must be positive", c.Tolerance)
	}
	return nil
}

// Kind returns the configured default unit.
func (c *Config) Kind() (interval.Kind, error) {
	k, err := parse.Kind(c.Unit)
	if err != nil {
		return 0, fmt.Errorf("invalid unit: %w", err)
	}
	return k, nil
}

// LoadLocation resolves the configured time zone.
func (c *Config) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return loc, nil
}

// Weekday resolves the configured first day of the week.
func (c *Config) Weekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), c.FirstWeekday) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid first weekday %q", c.FirstWeekday)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
