// Package config loads process configuration from the environment.
//
// Services declare their settings as structs tagged with `env` keys under the
// SYMBL_ prefix and call ParseEnv before wiring flags on top.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv populates target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
