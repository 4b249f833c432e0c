// Package auth implements the identity provider adapters. There are exactly
// two providers — Google and GitHub — each with its own normalization of the
// provider's user-info response into a domain.User. Provider responses are
// decoded into explicit structs and fail closed on schema mismatch.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/haolin/birthday-card/internal/domain"
)

const defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleConfig configures the Google provider. Endpoint and UserInfoURL are
// overridable for tests; zero values select Google's real endpoints.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string

	Endpoint    oauth2.Endpoint
	UserInfoURL string
}

// GoogleProvider performs the OAuth2 authorization-code flow against Google.
type GoogleProvider struct {
	cfg GoogleConfig
}

// NewGoogleProvider creates a GoogleProvider, defaulting the endpoints.
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	if cfg.Endpoint.AuthURL == "" {
		cfg.Endpoint = google.Endpoint
	}
	if cfg.UserInfoURL == "" {
		cfg.UserInfoURL = defaultGoogleUserInfoURL
	}
	return &GoogleProvider{cfg: cfg}
}

// Configured reports whether client credentials are present.
func (g *GoogleProvider) Configured() bool {
	return g.cfg.ClientID != "" && g.cfg.ClientSecret != ""
}

// The callback URL is derived from the request origin, so the oauth2.Config
// is assembled per call rather than held on the provider.
func (g *GoogleProvider) oauthConfig(callbackURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		RedirectURL:  callbackURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     g.cfg.Endpoint,
	}
}

// AuthURL returns the Google consent screen URL.
func (g *GoogleProvider) AuthURL(state, callbackURL string) string {
	return g.oauthConfig(callbackURL).AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for a normalized user: the code is
// exchanged server-to-server for an access token, then the userinfo endpoint
// is queried with it.
func (g *GoogleProvider) Exchange(ctx context.Context, code, callbackURL string) (*domain.User, error) {
	conf := g.oauthConfig(callbackURL)

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google: exchange code: %w", err)
	}

	// conf.Client attaches the Bearer token to every request.
	resp, err := conf.Client(ctx, token).Get(g.cfg.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("google: fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google: userinfo fetch failed (%d)", resp.StatusCode)
	}

	var profile struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("google: decode userinfo: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("google: userinfo response missing id")
	}

	return &domain.User{
		ID:       profile.ID,
		Email:    profile.Email,
		Name:     profile.Name,
		Avatar:   profile.Picture,
		Provider: domain.ProviderGoogle,
	}, nil
}
