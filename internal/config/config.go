// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/caarlos0/env/v11"
)

// DefaultEmergencyNumber is India's ambulance line.
const DefaultEmergencyNumber = "108"

// Config holds every SEHAT_* setting. Flags override it per invocation.
type Config struct {
	// Language is the initial current language, as typed by the user.
	Language string `env:"SEHAT_LANG" envDefault:"en"`

	// Observability
	LogCalls bool `env:"SEHAT_LOG_CALLS" envDefault:"false"`
	Metrics  bool `env:"SEHAT_METRICS" envDefault:"false"`

	// EmergencyNumber is shown in the emergency block of high-severity verdicts.
	EmergencyNumber string `env:"SEHAT_EMERGENCY_NUMBER" envDefault:"108"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := i18n.ParseLanguage(c.Language); err != nil {
		errs = append(errs, fmt.Errorf("SEHAT_LANG: %w", err))
	}
	if c.EmergencyNumber == "" {
		errs = append(errs, errors.New("SEHAT_EMERGENCY_NUMBER: must not be empty"))
	}
	for _, r := range c.EmergencyNumber {
		if (r < '0' || r > '9') && r != '+' && r != '-' && r != ' ' {
			errs = append(errs, fmt.Errorf("SEHAT_EMERGENCY_NUMBER: invalid character %q", r))
			break
		}
	}
	return errors.Join(errs...)
}

// Lang returns the configured language, or the default if it does not parse.
func (c *Config) Lang() domain.Language {
	l, err := i18n.ParseLanguage(c.Language)
	if err != nil {
		return domain.DefaultLanguage
	}
	return l
}
