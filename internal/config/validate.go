package config

import (
	"fmt"
	"strconv"

	"filescope/internal/models"
)

// Validate rejects configurations the commands cannot work with.
func Validate(cfg *Config) error {
	if cfg.Database.Path == "" {
		return fmt.Errorf("%w: database.path must not be empty", models.ErrValidation)
	}
	if cfg.Server.Port != "" {
		port, err := strconv.Atoi(cfg.Server.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("%w: server.port %q is not a valid port", models.ErrValidation, cfg.Server.Port)
		}
	}
	return nil
}
