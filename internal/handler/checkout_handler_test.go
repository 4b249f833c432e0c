package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haolin/birthday-card/internal/domain"
	"github.com/haolin/birthday-card/internal/port"
	"github.com/haolin/birthday-card/internal/service"
	"github.com/haolin/birthday-card/pkg/config"
)

type fakeCheckoutClient struct {
	calls int
	sess  *domain.CheckoutSession
	err   error
}

func (f *fakeCheckoutClient) CreateSession(_ context.Context, _ domain.CheckoutParams) (*domain.CheckoutSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}

func newCheckoutApp(client port.CheckoutClient) *fiber.App {
	cfg := &config.Config{
		StripePriceIDMonthly: "price_monthly_123",
		StripePriceIDYearly:  "price_yearly_456",
	}
	app := fiber.New()
	NewCheckoutHandler(service.NewCheckoutService(client, cfg)).Register(app)
	return app
}

func checkoutRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	client := &fakeCheckoutClient{
		sess: &domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"},
	}
	app := newCheckoutApp(client)

	resp, err := app.Test(checkoutRequest(`{"planType":"monthly"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_1", decodeBody(t, resp)["url"])
	assert.Equal(t, 1, client.calls)
}

func TestCreateCheckoutSessionInvalidPlan(t *testing.T) {
	client := &fakeCheckoutClient{}
	app := newCheckoutApp(client)

	resp, err := app.Test(checkoutRequest(`{"planType":"weekly"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid plan type", decodeBody(t, resp)["error"])
	assert.Zero(t, client.calls)
}

func TestCreateCheckoutSessionMethodNotAllowed(t *testing.T) {
	app := newCheckoutApp(&fakeCheckoutClient{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/create-checkout-session", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, "Method not allowed", decodeBody(t, resp)["error"])
		})
	}
}

func TestCreateCheckoutSessionMissingSecretKey(t *testing.T) {
	app := newCheckoutApp(nil)

	resp, err := app.Test(checkoutRequest(`{"planType":"monthly"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// Only the generic message reaches the client.
	assert.Equal(t, "Stripe configuration error", decodeBody(t, resp)["error"])
}

func TestCreateCheckoutSessionPlaceholderPrice(t *testing.T) {
	client := &fakeCheckoutClient{}
	cfg := &config.Config{
		StripePriceIDMonthly: "price_monthly_placeholder",
		StripePriceIDYearly:  "price_yearly_placeholder",
	}
	app := fiber.New()
	NewCheckoutHandler(service.NewCheckoutService(client, cfg)).Register(app)

	resp, err := app.Test(checkoutRequest(`{"planType":"yearly"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "Price ID not configured")
	assert.Zero(t, client.calls)
}

func TestCreateCheckoutSessionProviderFailure(t *testing.T) {
	client := &fakeCheckoutClient{err: errors.New("stripe: rate limited")}
	app := newCheckoutApp(client)

	resp, err := app.Test(checkoutRequest(`{"planType":"yearly"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "rate limited")
}
