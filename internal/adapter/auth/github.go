package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/haolin/birthday-card/internal/domain"
)

const (
	defaultGitHubUserURL   = "https://api.github.com/user"
	defaultGitHubEmailsURL = "https://api.github.com/user/emails"
)

// GitHubConfig configures the GitHub provider. Endpoint, UserURL and
// EmailsURL are overridable for tests.
type GitHubConfig struct {
	ClientID     string
	ClientSecret string

	Endpoint  oauth2.Endpoint
	UserURL   string
	EmailsURL string
}

// GitHubProvider performs the OAuth2 authorization-code flow against GitHub.
type GitHubProvider struct {
	cfg GitHubConfig
}

// NewGitHubProvider creates a GitHubProvider, defaulting the endpoints.
func NewGitHubProvider(cfg GitHubConfig) *GitHubProvider {
	if cfg.Endpoint.AuthURL == "" {
		cfg.Endpoint = github.Endpoint
	}
	if cfg.UserURL == "" {
		cfg.UserURL = defaultGitHubUserURL
	}
	if cfg.EmailsURL == "" {
		cfg.EmailsURL = defaultGitHubEmailsURL
	}
	return &GitHubProvider{cfg: cfg}
}

// Configured reports whether client credentials are present.
func (g *GitHubProvider) Configured() bool {
	return g.cfg.ClientID != "" && g.cfg.ClientSecret != ""
}

func (g *GitHubProvider) oauthConfig(callbackURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		RedirectURL:  callbackURL,
		Scopes:       []string{"user:email"},
		Endpoint:     g.cfg.Endpoint,
	}
}

// AuthURL returns the GitHub consent screen URL.
func (g *GitHubProvider) AuthURL(state, callbackURL string) string {
	return g.oauthConfig(callbackURL).AuthCodeURL(state)
}

// Exchange trades an authorization code for a normalized user. GitHub hides
// the email on /user when the user marks it private, so the address is always
// taken from the separate /user/emails endpoint: the primary entry wins,
// otherwise the first entry, otherwise the email stays empty.
func (g *GitHubProvider) Exchange(ctx context.Context, code, callbackURL string) (*domain.User, error) {
	conf := g.oauthConfig(callbackURL)

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github: exchange code: %w", err)
	}

	client := conf.Client(ctx, token)

	profile, err := g.fetchProfile(ctx, client)
	if err != nil {
		return nil, err
	}

	email, err := g.fetchEmail(ctx, client)
	if err != nil {
		return nil, err
	}
	if email == "" {
		email = profile.Email
	}

	name := profile.Name
	if name == "" {
		name = profile.Login
	}

	return &domain.User{
		ID:       strconv.FormatInt(profile.ID, 10),
		Email:    email,
		Name:     name,
		Avatar:   profile.AvatarURL,
		Provider: domain.ProviderGitHub,
	}, nil
}

type githubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func (g *GitHubProvider) fetchProfile(ctx context.Context, client *http.Client) (*githubProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.UserURL, nil)
	if err != nil {
		return nil, fmt.Errorf("github: create user request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: fetch user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: user fetch failed (%d)", resp.StatusCode)
	}

	var profile githubProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("github: decode user: %w", err)
	}
	if profile.ID == 0 {
		return nil, fmt.Errorf("github: user response missing id")
	}
	return &profile, nil
}

func (g *GitHubProvider) fetchEmail(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.EmailsURL, nil)
	if err != nil {
		return "", fmt.Errorf("github: create emails request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("github: fetch emails: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github: emails fetch failed (%d)", resp.StatusCode)
	}

	var emails []struct {
		Email   string `json:"email"`
		Primary bool   `json:"primary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", fmt.Errorf("github: decode emails: %w", err)
	}

	for _, e := range emails {
		if e.Primary {
			return e.Email, nil
		}
	}
	if len(emails) > 0 {
		return emails[0].Email, nil
	}
	// No address at all: the user record keeps an empty email rather than
	// failing the login. See DESIGN.md.
	return "", nil
}
