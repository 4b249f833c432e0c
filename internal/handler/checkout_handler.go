package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/port"
	"github.com/haolin/birthday-card/internal/service"
)

// CheckoutHandler exposes the checkout hand-off endpoint. Configuration
// problems are logged server-side and reported to the client only as generic
// messages.
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Register sets up the checkout route. All methods are bound so non-POST
// requests can be answered with 405 instead of fiber's default 404.
func (h *CheckoutHandler) Register(app *fiber.App) {
	app.All("/api/create-checkout-session", h.Create)
}

// Create handles POST /api/create-checkout-session.
func (h *CheckoutHandler) Create(c fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Method not allowed",
		})
	}

	var body struct {
		PlanType string `json:"planType"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid plan type",
		})
	}

	sess, err := h.checkoutService.CreateSession(c.Context(), domain.PlanType(body.PlanType), c.BaseURL())
	if err != nil {
		return h.checkoutError(c, err)
	}

	return c.JSON(fiber.Map{"url": sess.URL})
}

func (h *CheckoutHandler) checkoutError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, port.ErrInvalidPlan):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid plan type",
		})

	case errors.Is(err, port.ErrMissingSecretKey):
		// The missing-secret detail stays in the server log.
		slog.Error("STRIPE_SECRET_KEY is not set")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stripe configuration error",
		})

	case errors.Is(err, port.ErrPriceNotConfigured):
		slog.Error("checkout price not configured", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Price ID not configured. Please set STRIPE_PRICE_ID_MONTHLY and STRIPE_PRICE_ID_YEARLY in environment variables.",
		})

	default:
		slog.Error("checkout session creation failed", "error", err)
		msg := err.Error()
		if msg == "" {
			msg = "Failed to create checkout session"
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msg,
		})
	}
}
