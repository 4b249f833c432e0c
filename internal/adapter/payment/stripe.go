// Package payment implements port.CheckoutClient against Stripe's hosted
// Checkout API. All payment state lives on Stripe's side; this adapter only
// creates sessions and hands back their hosted URL.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/port"
)

// StripeClient creates hosted checkout sessions through the Stripe API.
type StripeClient struct {
	api *client.API
}

// NewStripeClient creates a StripeClient. The API key is held per instance
// rather than in the package-global stripe.Key so fake configurations can
// coexist in tests.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateSession asks Stripe for a subscription-mode checkout session with a
// single line item and the plan type carried in metadata.
func (s *StripeClient) CreateSession(ctx context.Context, p domain.CheckoutParams) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("planType", string(p.PlanType))

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	return &domain.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

var _ port.CheckoutClient = (*StripeClient)(nil)
