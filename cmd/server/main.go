package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/haolin/birthday-card/internal/adapter/auth"
	"github.com/haolin/birthday-card/internal/adapter/payment"
	"github.com/haolin/birthday-card/internal/handler"
	"github.com/haolin/birthday-card/internal/port"
	"github.com/haolin/birthday-card/internal/service"
	"github.com/haolin/birthday-card/internal/session"
	"github.com/haolin/birthday-card/pkg/config"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🎂 Starting birthday card",
		"port", cfg.Port,
		"env", cfg.Environment,
	)

	if cfg.SessionSecret == config.DefaultSessionSecret {
		if cfg.IsProduction() {
			slog.Error("SESSION_SECRET must be set in production")
			os.Exit(1)
		}
		slog.Warn("SESSION_SECRET not set — using insecure development default")
	}

	// ── Session codec ────────────────────────────────────────────────────
	sessions := session.New(cfg.SessionSecret, cfg.IsProduction())

	// ── Identity providers ───────────────────────────────────────────────
	googleAuth := auth.NewGoogleProvider(auth.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
	})
	githubAuth := auth.NewGitHubProvider(auth.GitHubConfig{
		ClientID:     cfg.GitHubClientID,
		ClientSecret: cfg.GitHubClientSecret,
	})

	// ── Payment provider ─────────────────────────────────────────────────
	var checkoutClient port.CheckoutClient
	if cfg.StripeSecretKey != "" {
		checkoutClient = payment.NewStripeClient(cfg.StripeSecretKey)
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set — checkout is disabled")
	}

	// ── Services ─────────────────────────────────────────────────────────
	authService := service.NewAuthService(googleAuth, githubAuth, sessions, cfg)
	checkoutService := service.NewCheckoutService(checkoutClient, cfg)

	// ── Fiber App ────────────────────────────────────────────────────────
	engine := html.New("./web/views", ".html")

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use("/static", static.New("./web/static"))

	// ── Routes ───────────────────────────────────────────────────────────
	handler.NewAuthHandler(authService, sessions).Register(app)
	handler.NewCheckoutHandler(checkoutService).Register(app)
	handler.NewPageHandler(authService, cfg.AppName, cfg.IsProduction()).Register(app)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
