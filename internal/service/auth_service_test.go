package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haolin/birthday-card/internal/adapter/auth"
	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/port"
	"github.com/haolin/birthday-card/internal/session"
	"github.com/haolin/birthday-card/pkg/config"
)

func newTestAuthService(environment string) *AuthService {
	cfg := &config.Config{Environment: environment}
	google := auth.NewGoogleProvider(auth.GoogleConfig{ClientID: "gid", ClientSecret: "gsec"})
	github := auth.NewGitHubProvider(auth.GitHubConfig{ClientID: "hid", ClientSecret: "hsec"})
	return NewAuthService(google, github, session.New("test-secret", false), cfg)
}

func TestCallbackURL(t *testing.T) {
	assert.Equal(t,
		"https://birthday.example.com/auth/google/callback",
		CallbackURL("https://birthday.example.com", domain.ProviderGoogle),
	)
}

func TestAuthURLGoogle(t *testing.T) {
	svc := newTestAuthService("development")

	u, err := svc.AuthURL(domain.ProviderGoogle, "state-1", "http://localhost:3000")
	require.NoError(t, err)
	assert.Contains(t, u, "accounts.google.com")
	assert.Contains(t, u, "state-1")
}

func TestAuthURLGitHubDevelopment(t *testing.T) {
	svc := newTestAuthService("development")

	u, err := svc.AuthURL(domain.ProviderGitHub, "state-1", "http://localhost:3000")
	require.NoError(t, err)
	assert.Contains(t, u, "github.com")
}

// GitHub login is disabled in production even with valid credentials.
func TestAuthURLGitHubProduction(t *testing.T) {
	svc := newTestAuthService("production")

	_, err := svc.AuthURL(domain.ProviderGitHub, "state-1", "https://birthday.example.com")
	assert.ErrorIs(t, err, port.ErrProviderNotEnabled)
}

func TestAuthURLUnconfiguredProvider(t *testing.T) {
	cfg := &config.Config{Environment: "development"}
	svc := NewAuthService(
		auth.NewGoogleProvider(auth.GoogleConfig{}),
		auth.NewGitHubProvider(auth.GitHubConfig{}),
		session.New("test-secret", false),
		cfg,
	)

	_, err := svc.AuthURL(domain.ProviderGoogle, "s", "http://localhost:3000")
	assert.ErrorIs(t, err, port.ErrProviderNotEnabled)

	_, err = svc.AuthURL(domain.ProviderGitHub, "s", "http://localhost:3000")
	assert.ErrorIs(t, err, port.ErrProviderNotEnabled)
}

func TestCurrentUserFailsSoft(t *testing.T) {
	svc := newTestAuthService("development")

	assert.Nil(t, svc.CurrentUser(""))
	assert.Nil(t, svc.CurrentUser("tampered-cookie-value"))
}

func TestCurrentUserRoundTrip(t *testing.T) {
	store := session.New("test-secret", false)
	svc := NewAuthService(
		auth.NewGoogleProvider(auth.GoogleConfig{ClientID: "a", ClientSecret: "b"}),
		auth.NewGitHubProvider(auth.GitHubConfig{}),
		store,
		&config.Config{Environment: "development"},
	)

	want := &domain.User{ID: "g-1", Email: "mei@example.com", Name: "Mei", Provider: domain.ProviderGoogle}
	value, err := store.Save(want)
	require.NoError(t, err)

	assert.Equal(t, want, svc.CurrentUser(value))
}
