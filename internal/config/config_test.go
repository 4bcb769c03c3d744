package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sullivan_test")
	t.Setenv("STAGE", "local")
	t.Setenv("PORT", "")
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("INVOICE_FROM_EMAIL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.StripeConfigured())
	assert.False(t, cfg.EmailConfigured())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsUnknownStage(t *testing.T) {
	setRequired(t)
	t.Setenv("STAGE", "staging")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestProdRequiresSessionSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("STAGE", "prod")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestStripeConfigured(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.StripeConfigured())

	t.Setenv("STRIPE_SECRET_KEY", "not-a-key")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.StripeConfigured())
}

func TestAllowedOriginsParsing(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "https://sullivantrading.com, https://admin.sullivantrading.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://sullivantrading.com",
		"https://admin.sullivantrading.com",
	}, cfg.AllowedOrigins)
}
