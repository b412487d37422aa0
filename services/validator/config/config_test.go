package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("VALIDATOR_ID", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("RATE_WINDOW_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "qualgate-validator-1", cfg.ValidatorID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, 15*time.Minute, cfg.RateWindow)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VALIDATOR_ID", "validator-eu-2")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_WINDOW_MINUTES", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "validator-eu-2", cfg.ValidatorID)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "8080", ValidatorID: "v1", RateLimit: 5, RateWindow: time.Minute}
	assert.NoError(t, cfg.Validate())

	cfg.ValidatorID = ""
	assert.Error(t, cfg.Validate())

	cfg.ValidatorID = "v1"
	cfg.RateWindow = 0
	assert.Error(t, cfg.Validate())
}

func TestScoringPolicyIsFixed(t *testing.T) {
	cfg := &Config{ValidatorID: "v1", RateLimit: 1, RateWindow: time.Minute}
	policy := cfg.ScoringPolicy()

	assert.InDelta(t, 1.0, policy.WeightRelevance+policy.WeightCompleteness+policy.WeightClarity+policy.WeightSpam, 1e-9)
	assert.Equal(t, 50, policy.RejectBelow)
	assert.Equal(t, 75, policy.ReviewBelow)
}
