package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filescope/internal/models"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Database.Path = "filescope.db"
	cfg.Server.Addr = "localhost"
	cfg.Server.Port = "8080"
	return cfg
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_EmptyDatabasePath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""
	assert.ErrorIs(t, Validate(cfg), models.ErrValidation)
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []string{"zero", "0", "-1", "70000"} {
		cfg := validConfig()
		cfg.Server.Port = port
		assert.ErrorIs(t, Validate(cfg), models.ErrValidation, "port %q", port)
	}
}

func TestValidate_EmptyPortAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = ""
	assert.NoError(t, Validate(cfg))
}
