package response_models

import "menupay/internal/processor"

const (
	AccountStatusNotStarted = "not_started"
	AccountStatusCreated    = "account_created"
)

type CreateAccountResponse struct {
	AccountID     string `json:"accountId"`
	OnboardingURL string `json:"onboardingUrl"`
}

type OnboardingLinkResponse struct {
	OnboardingURL string `json:"onboardingUrl"`
}

// AccountStatusResponse is a pass-through of the processor's live snapshot.
// The capability fields are pointers so a not_started status carries none of
// them instead of misleading false values.
type AccountStatusResponse struct {
	Status         string                         `json:"status"`
	AccountID      string                         `json:"accountId,omitempty"`
	ChargesEnabled *bool                          `json:"charges_enabled,omitempty"`
	PayoutsEnabled *bool                          `json:"payouts_enabled,omitempty"`
	Requirements   *processor.AccountRequirements `json:"requirements,omitempty"`
}
