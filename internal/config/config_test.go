package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_TokenTTL(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "unset defaults to an hour", value: "", expected: time.Hour},
		{name: "valid duration is honored", value: "30m", expected: 30 * time.Minute},
		{name: "unparseable value falls back to the default", value: "tomorrow", expected: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")
			t.Setenv("JWT_EXPIRES_IN", tt.value)

			cfg, err := Load()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.TokenTTL)
		})
	}
}
