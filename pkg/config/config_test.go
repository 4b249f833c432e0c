package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "NODE_ENV", "SESSION_SECRET", "STRIPE_PRICE_ID_MONTHLY", "STRIPE_PRICE_ID_YEARLY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, DefaultSessionSecret, cfg.SessionSecret)
	assert.Equal(t, "price_monthly_placeholder", cfg.StripePriceIDMonthly)
	assert.Equal(t, "price_yearly_placeholder", cfg.StripePriceIDYearly)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("GOOGLE_CLIENT_ID", "gid")
	t.Setenv("GOOGLE_CLIENT_SECRET", "gsec")
	t.Setenv("GITHUB_CLIENT_ID", "hid")
	t.Setenv("GITHUB_CLIENT_SECRET", "hsec")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_1")
	t.Setenv("STRIPE_PRICE_ID_MONTHLY", "price_m")
	t.Setenv("STRIPE_PRICE_ID_YEARLY", "price_y")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "gid", cfg.GoogleClientID)
	assert.Equal(t, "hid", cfg.GitHubClientID)
	assert.Equal(t, "sk_test_1", cfg.StripeSecretKey)
	assert.Equal(t, "price_m", cfg.StripePriceIDMonthly)
	assert.Equal(t, "price_y", cfg.StripePriceIDYearly)
}
