package config

import "os"

// DefaultSessionSecret is the insecure fallback used when SESSION_SECRET is
// unset. It keeps local development working but must never reach production;
// main logs a warning when it is in effect.
const DefaultSessionSecret = "default-secret-change-in-production"

// Config holds all application configuration loaded from environment variables.
// It is built once in main and passed by reference into constructors — nothing
// outside this package reads the environment.
type Config struct {
	// Server
	Port    string
	AppName string

	// Environment ("production" enables Secure cookies and disables GitHub login)
	Environment string

	// OAuth2 — Google
	GoogleClientID     string
	GoogleClientSecret string

	// OAuth2 — GitHub
	GitHubClientID     string
	GitHubClientSecret string

	// Session cookie
	SessionSecret string

	// Stripe
	StripeSecretKey      string
	StripePriceIDMonthly string
	StripePriceIDYearly  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "3000"),
		AppName: envOrDefault("APP_NAME", "Birthday Card"),

		Environment: envOrDefault("NODE_ENV", "development"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),

		SessionSecret: envOrDefault("SESSION_SECRET", DefaultSessionSecret),

		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceIDMonthly: envOrDefault("STRIPE_PRICE_ID_MONTHLY", "price_monthly_placeholder"),
		StripePriceIDYearly:  envOrDefault("STRIPE_PRICE_ID_YEARLY", "price_yearly_placeholder"),
	}
}

// IsProduction reports whether the app runs with production hardening:
// Secure session cookies, GitHub login disabled.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
