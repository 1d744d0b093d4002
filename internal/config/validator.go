package config

import (
	"errors"
	"fmt"

	"github.com/indaco/getver/internal/manifest"
)

// Validate checks the configured defaults.
func (c *Config) Validate() error {
	var errs []error

	if c.Format != "" {
		if f := manifest.ParseFormat(c.Format); !f.IsValid() {
			errs = append(errs, fmt.Errorf("format: unsupported value %q", c.Format))
		}
	}

	if c.Field != "" {
		if err := manifest.ValidateField(c.Field); err != nil {
			errs = append(errs, fmt.Errorf("field: %w", err))
		}
	}

	return errors.Join(errs...)
}
