package port

import (
	"context"

	"github.com/haolin/birthday-card/internal/domain"
)

// CheckoutClient abstracts the payment provider's hosted checkout API.
// The only implementation talks to Stripe; tests substitute a fake so the
// service layer can be exercised without network calls.
type CheckoutClient interface {
	// CreateSession asks the provider for a subscription-mode hosted
	// checkout session with a single line item.
	CreateSession(ctx context.Context, params domain.CheckoutParams) (*domain.CheckoutSession, error)
}
