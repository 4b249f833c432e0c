package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/haolin/birthday-card/internal/i18n"
	"github.com/haolin/birthday-card/internal/service"
	"github.com/haolin/birthday-card/internal/session"
)

// PageHandler renders the server-side pages. Client-side preferences
// (language choice, display name, music URL) live in localStorage and are
// handled by the page scripts; the server only supplies the user and the
// string table. The language query param mirrors the stored preference so a
// reload keeps the chosen language.
type PageHandler struct {
	authService  *service.AuthService
	appName      string
	isProduction bool
}

// NewPageHandler creates a new page handler.
func NewPageHandler(authService *service.AuthService, appName string, isProduction bool) *PageHandler {
	return &PageHandler{
		authService:  authService,
		appName:      appName,
		isProduction: isProduction,
	}
}

// Register sets up page routes.
func (h *PageHandler) Register(app *fiber.App) {
	app.Get("/", h.Index)
	app.Get("/login", h.Login)
	app.Get("/pricing", h.Pricing)
	app.Get("/help", h.Help)

	app.Get("/api/health", h.Health)
}

func (h *PageHandler) viewData(c fiber.Ctx) fiber.Map {
	lang := i18n.Parse(c.Query("lang"))
	return fiber.Map{
		"AppName": h.appName,
		"Lang":    string(lang),
		"T":       i18n.Get(lang),
		"User":    h.authService.CurrentUser(c.Cookies(session.CookieName)),
	}
}

// Index renders the greeting page.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.viewData(c))
}

// Login renders the login page. An already-authenticated user is sent home;
// the GitHub button only appears outside production, mirroring the provider
// gate in the auth service.
func (h *PageHandler) Login(c fiber.Ctx) error {
	if h.authService.CurrentUser(c.Cookies(session.CookieName)) != nil {
		return c.Redirect().To("/")
	}
	data := h.viewData(c)
	data["Error"] = c.Query("error")
	data["ShowGitHub"] = !h.isProduction
	return c.Render("login", data)
}

// Pricing renders the pricing page; the success/canceled banners are driven
// by the query params Stripe redirects back with.
func (h *PageHandler) Pricing(c fiber.Ctx) error {
	data := h.viewData(c)
	data["Success"] = c.Query("success") == "true"
	data["Canceled"] = c.Query("canceled") == "true"
	return c.Render("pricing", data)
}

// Help renders the help page.
func (h *PageHandler) Help(c fiber.Ctx) error {
	return c.Render("help", h.viewData(c))
}

// Health is a liveness probe.
func (h *PageHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"app":    h.appName,
	})
}
