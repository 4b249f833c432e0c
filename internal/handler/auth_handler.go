package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/xid"

	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/service"
	"github.com/haolin/birthday-card/internal/session"
)

const stateCookieName = "oauth_state"

// AuthHandler drives the OAuth login flow over HTTP: start, callback, logout.
// Any failure along the way becomes a redirect to the login page with an
// error marker; no provider or codec error ever reaches the browser raw.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Register sets up auth routes. Logout is registered before the :provider
// routes so the static path wins.
func (h *AuthHandler) Register(app *fiber.App) {
	app.Get("/auth/logout", h.LogoutRedirect)
	app.Post("/auth/logout", h.Logout)

	app.Get("/auth/:provider", h.Start)
	app.Post("/auth/:provider", h.Start)
	app.Get("/auth/:provider/callback", h.Callback)
}

func failureRedirect(c fiber.Ctx, provider string) error {
	return c.Redirect().To("/login?error=" + provider)
}

// Start redirects the browser to the provider's consent screen. A random
// state nonce is stored in a short-lived cookie and checked on callback.
func (h *AuthHandler) Start(c fiber.Ctx) error {
	providerName := c.Params("provider")
	provider, ok := domain.ParseProvider(providerName)
	if !ok {
		return failureRedirect(c, providerName)
	}

	state := xid.New().String()

	authURL, err := h.authService.AuthURL(provider, state, c.BaseURL())
	if err != nil {
		slog.Warn("auth start rejected", "provider", provider, "error", err)
		return failureRedirect(c, providerName)
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600, // long enough to approve, short enough to limit replay
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect().To(authURL)
}

// Callback completes the login: state check, code exchange, session cookie.
// On any failure the session is left untouched.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	providerName := c.Params("provider")
	provider, ok := domain.ParseProvider(providerName)
	if !ok {
		return failureRedirect(c, providerName)
	}

	// The state cookie is single-use.
	state := c.Cookies(stateCookieName)
	c.ClearCookie(stateCookieName)

	if state == "" || c.Query("state") != state {
		slog.Warn("auth callback state mismatch", "provider", provider)
		return failureRedirect(c, providerName)
	}

	if errParam := c.Query("error"); errParam != "" {
		slog.Info("auth callback denied by user", "provider", provider, "error", errParam)
		return failureRedirect(c, providerName)
	}

	code := c.Query("code")
	if code == "" {
		return failureRedirect(c, providerName)
	}

	cookieValue, user, err := h.authService.HandleCallback(c.Context(), provider, code, c.BaseURL())
	if err != nil {
		slog.Error("auth callback failed", "provider", provider, "error", err)
		return failureRedirect(c, providerName)
	}

	slog.Info("login complete", "provider", provider, "user_id", user.ID)
	c.Cookie(h.sessions.Cookie(cookieValue))
	return c.Redirect().To("/")
}

// Logout destroys the session cookie and sends the browser home. It is
// idempotent: logging out without a session still clears the cookie.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(h.sessions.DestroyCookie())
	return c.Redirect().To("/")
}

// LogoutRedirect handles GET /auth/logout, which only navigates home —
// the cookie is cleared exclusively on POST.
func (h *AuthHandler) LogoutRedirect(c fiber.Ctx) error {
	return c.Redirect().To("/")
}
