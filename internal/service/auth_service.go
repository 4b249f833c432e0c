package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haolin/birthday-card/internal/adapter/auth"
	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/port"
	"github.com/haolin/birthday-card/internal/session"
	"github.com/haolin/birthday-card/pkg/config"
)

// AuthService composes the session codec and the two OAuth providers into the
// authentication facade the handlers talk to. The provider set is closed:
// Google is available whenever credentials exist, GitHub additionally requires
// a non-production environment — in production it behaves exactly like an
// unconfigured provider.
type AuthService struct {
	google       *auth.GoogleProvider
	github       *auth.GitHubProvider
	sessions     *session.Store
	isProduction bool
}

// NewAuthService creates the facade from the loaded configuration.
func NewAuthService(google *auth.GoogleProvider, github *auth.GitHubProvider, sessions *session.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		google:       google,
		github:       github,
		sessions:     sessions,
		isProduction: cfg.IsProduction(),
	}
}

// exchanger is what both providers expose; the switch below is the only
// place that dispatches on the provider variant.
type exchanger interface {
	AuthURL(state, callbackURL string) string
	Exchange(ctx context.Context, code, callbackURL string) (*domain.User, error)
}

func (s *AuthService) provider(p domain.Provider) (exchanger, error) {
	switch p {
	case domain.ProviderGoogle:
		if !s.google.Configured() {
			return nil, fmt.Errorf("google: %w", port.ErrProviderNotEnabled)
		}
		return s.google, nil
	case domain.ProviderGitHub:
		if s.isProduction || !s.github.Configured() {
			return nil, fmt.Errorf("github: %w", port.ErrProviderNotEnabled)
		}
		return s.github, nil
	default:
		return nil, fmt.Errorf("%s: %w", p, port.ErrProviderNotEnabled)
	}
}

// CallbackURL builds the provider redirect target from the request origin.
func CallbackURL(origin string, p domain.Provider) string {
	return fmt.Sprintf("%s/auth/%s/callback", origin, p)
}

// AuthURL returns the provider's consent screen URL for the initial redirect.
func (s *AuthService) AuthURL(p domain.Provider, state, origin string) (string, error) {
	prov, err := s.provider(p)
	if err != nil {
		return "", err
	}
	return prov.AuthURL(state, CallbackURL(origin, p)), nil
}

// HandleCallback completes the authorization-code exchange and encodes the
// normalized user into a session cookie value. The session is only written by
// the caller on success; any failure here leaves the existing session alone.
func (s *AuthService) HandleCallback(ctx context.Context, p domain.Provider, code, origin string) (string, *domain.User, error) {
	prov, err := s.provider(p)
	if err != nil {
		return "", nil, err
	}

	user, err := prov.Exchange(ctx, code, CallbackURL(origin, p))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", port.ErrAuthenticationFault, err)
	}

	cookieValue, err := s.sessions.Save(user)
	if err != nil {
		return "", nil, fmt.Errorf("%w: encode session: %w", port.ErrAuthenticationFault, err)
	}

	slog.Info("user authenticated", "provider", p, "user_id", user.ID)
	return cookieValue, user, nil
}

// CurrentUser decodes the session cookie value into the stored user.
// It never fails: anything undecodable means anonymous.
func (s *AuthService) CurrentUser(cookieValue string) *domain.User {
	return s.sessions.Get(cookieValue)
}
