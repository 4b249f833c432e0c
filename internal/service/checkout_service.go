package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/port"
	"github.com/haolin/birthday-card/pkg/config"
)

// CheckoutService validates checkout requests and hands them off to the
// payment provider. It holds no payment state — Stripe owns all of it.
type CheckoutService struct {
	client   port.CheckoutClient // nil when STRIPE_SECRET_KEY is unset
	priceIDs map[domain.PlanType]string
}

// NewCheckoutService creates the service. client may be nil when the Stripe
// secret key is not configured; every call then fails with
// port.ErrMissingSecretKey before any provider contact.
func NewCheckoutService(client port.CheckoutClient, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		client: client,
		priceIDs: map[domain.PlanType]string{
			domain.PlanMonthly: cfg.StripePriceIDMonthly,
			domain.PlanYearly:  cfg.StripePriceIDYearly,
		},
	}
}

// CreateSession creates a hosted checkout session for the given plan.
// Validation and configuration checks all happen before the provider is
// called, so an invalid request never reaches Stripe.
func (s *CheckoutService) CreateSession(ctx context.Context, planType domain.PlanType, origin string) (*domain.CheckoutSession, error) {
	if !planType.Valid() {
		return nil, fmt.Errorf("%q: %w", planType, port.ErrInvalidPlan)
	}

	if s.client == nil {
		return nil, port.ErrMissingSecretKey
	}

	priceID := s.priceIDs[planType]
	if priceID == "" || strings.Contains(priceID, "placeholder") {
		return nil, fmt.Errorf("%s: %w", planType, port.ErrPriceNotConfigured)
	}

	sess, err := s.client.CreateSession(ctx, domain.CheckoutParams{
		PriceID:    priceID,
		PlanType:   planType,
		SuccessURL: origin + "/pricing?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  origin + "/pricing?canceled=true",
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return sess, nil
}
