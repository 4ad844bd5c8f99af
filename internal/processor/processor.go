package processor

import "context"

// SupportAddress carries only the address sub-fields that are actually set;
// empty fields are never sent to the processor.
type SupportAddress struct {
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// AccountProfile describes the business profile sent on sub-account creation.
// Address is nil when the restaurant has no address data at all.
type AccountProfile struct {
	Name    string
	URL     string
	Email   string
	Country string
	Address *SupportAddress
}

// AccountRequirements is the processor's pending-requirements descriptor,
// passed through to status callers verbatim.
type AccountRequirements struct {
	CurrentlyDue   []string `json:"currently_due"`
	EventuallyDue  []string `json:"eventually_due"`
	PastDue        []string `json:"past_due"`
	DisabledReason string   `json:"disabled_reason,omitempty"`
}

// AccountSnapshot is the live state of a sub-account at retrieval time.
type AccountSnapshot struct {
	ID             string
	ChargesEnabled bool
	PayoutsEnabled bool
	Requirements   *AccountRequirements
}

type LineItem struct {
	Name        string
	Description string
	Currency    string
	UnitAmount  int64
	Quantity    int64
}

// CheckoutInput describes a hosted checkout session created on behalf of the
// sub-account identified by AccountID. Funds settle to that account.
type CheckoutInput struct {
	AccountID  string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// PaymentProcessor is the contract against the external payment service.
// Implementations surface business-rule rejections as utils.ErrProcessorRejected
// with the processor's own message wrapped in.
type PaymentProcessor interface {
	CreateExpressAccount(ctx context.Context, profile AccountProfile) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	RetrieveAccount(ctx context.Context, accountID string) (*AccountSnapshot, error)
	CreateCheckoutSession(ctx context.Context, input CheckoutInput) (string, error)
}
