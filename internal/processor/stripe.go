package processor

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"menupay/pkg/utils"
)

// Accepted payment methods and hosted-page locale are static configuration,
// never per-request input.
var paymentMethodTypes = []string{"card", "twint"}

const defaultLocale = "de"
const defaultCountry = "CH"

type StripeConfig struct {
	SecretKey string
}

type stripeProcessor struct {
	sc *client.API
}

func NewStripeProcessor(cfg StripeConfig) PaymentProcessor {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return &stripeProcessor{sc: sc}
}

func (p *stripeProcessor) CreateExpressAccount(ctx context.Context, profile AccountProfile) (string, error) {
	businessProfile := &stripe.AccountBusinessProfileParams{
		Name: stripe.String(profile.Name),
		URL:  stripe.String(profile.URL),
	}
	if profile.Address != nil {
		addr := &stripe.AddressParams{}
		if profile.Address.Line1 != "" {
			addr.Line1 = stripe.String(profile.Address.Line1)
		}
		if profile.Address.City != "" {
			addr.City = stripe.String(profile.Address.City)
		}
		if profile.Address.State != "" {
			addr.State = stripe.String(profile.Address.State)
		}
		if profile.Address.PostalCode != "" {
			addr.PostalCode = stripe.String(profile.Address.PostalCode)
		}
		if profile.Address.Country != "" {
			addr.Country = stripe.String(profile.Address.Country)
		}
		businessProfile.SupportAddress = addr
	}

	country := profile.Country
	if country == "" {
		country = defaultCountry
	}

	params := &stripe.AccountParams{
		Type:            stripe.String(string(stripe.AccountTypeExpress)),
		Country:         stripe.String(country),
		Email:           stripe.String(profile.Email),
		BusinessProfile: businessProfile,
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	// TWINT is only available for Swiss accounts.
	if country == defaultCountry {
		params.Capabilities.TWINTPayments = &stripe.AccountCapabilitiesTWINTPaymentsParams{
			Requested: stripe.Bool(true),
		}
	}
	params.Context = ctx

	acct, err := p.sc.Accounts.New(params)
	if err != nil {
		return "", wrapStripeErr(err)
	}
	return acct.ID, nil
}

func (p *stripeProcessor) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		Type:       stripe.String("account_onboarding"),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
	}
	params.Context = ctx

	link, err := p.sc.AccountLinks.New(params)
	if err != nil {
		return "", wrapStripeErr(err)
	}
	return link.URL, nil
}

func (p *stripeProcessor) RetrieveAccount(ctx context.Context, accountID string) (*AccountSnapshot, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := p.sc.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, wrapStripeErr(err)
	}

	snapshot := &AccountSnapshot{
		ID:             acct.ID,
		ChargesEnabled: acct.ChargesEnabled,
		PayoutsEnabled: acct.PayoutsEnabled,
	}
	if acct.Requirements != nil {
		snapshot.Requirements = &AccountRequirements{
			CurrentlyDue:   acct.Requirements.CurrentlyDue,
			EventuallyDue:  acct.Requirements.EventuallyDue,
			PastDue:        acct.Requirements.PastDue,
			DisabledReason: string(acct.Requirements.DisabledReason),
		}
	}
	return snapshot, nil
}

func (p *stripeProcessor) CreateCheckoutSession(ctx context.Context, input CheckoutInput) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		currency := item.Currency
		if currency == "" {
			currency = "chf"
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice(paymentMethodTypes),
		LineItems:          lineItems,
		Locale:             stripe.String(defaultLocale),
		SuccessURL:         stripe.String(input.SuccessURL),
		CancelURL:          stripe.String(input.CancelURL),
	}
	params.Context = ctx
	// Sessions are created on the connected account, not the platform account.
	params.SetStripeAccount(input.AccountID)
	for k, v := range input.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := p.sc.CheckoutSessions.New(params)
	if err != nil {
		return "", wrapStripeErr(err)
	}
	return sess.URL, nil
}

// wrapStripeErr keeps the processor's own failure message visible to the
// caller while letting errors.Is match the sentinel.
func wrapStripeErr(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return fmt.Errorf("%w: %s", utils.ErrProcessorRejected, stripeErr.Msg)
	}
	return fmt.Errorf("%w: %v", utils.ErrProcessorRejected, err)
}
