package domain

// PlanType is a subscription billing interval. Only two plans are sold.
type PlanType string

const (
	PlanMonthly PlanType = "monthly"
	PlanYearly  PlanType = "yearly"
)

// Valid reports whether p is one of the two sellable plans.
func (p PlanType) Valid() bool {
	return p == PlanMonthly || p == PlanYearly
}

// CheckoutParams describes the hosted checkout session to create.
type CheckoutParams struct {
	PriceID    string
	PlanType   PlanType
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the provider-hosted session the browser is sent to.
// URL is returned to the client unchanged.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
