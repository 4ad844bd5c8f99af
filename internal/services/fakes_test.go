package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"menupay/internal/models/db_models"
	"menupay/internal/processor"
	"menupay/pkg/utils"
)

// In-memory stand-ins for the store and processor interfaces.

type fakeRestaurantRepo struct {
	byID map[uuid.UUID]*db_models.Restaurant
	err  error
}

func newFakeRestaurantRepo(restaurants ...*db_models.Restaurant) *fakeRestaurantRepo {
	repo := &fakeRestaurantRepo{byID: make(map[uuid.UUID]*db_models.Restaurant)}
	for _, r := range restaurants {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		repo.byID[r.ID] = r
	}
	return repo
}

func (f *fakeRestaurantRepo) Insert(_ context.Context, r *db_models.Restaurant) error {
	if f.err != nil {
		return f.err
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeRestaurantRepo) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*db_models.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.byID[id]
	if !ok || r.UserID != ownerID {
		return nil, nil
	}
	return r, nil
}

func (f *fakeRestaurantRepo) FindAllByOwner(_ context.Context, ownerID uuid.UUID) ([]db_models.Restaurant, error) {
	var out []db_models.Restaurant
	for _, r := range f.byID {
		if r.UserID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, r *db_models.Restaurant) error {
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r, ok := f.byID[id]
	if ok && r.UserID == ownerID {
		delete(f.byID, id)
	}
	return nil
}

func (f *fakeRestaurantRepo) UpdatePaymentFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	r, ok := f.byID[id]
	if !ok {
		return nil
	}
	if v, ok := fields["payment_account_id"]; ok {
		s := v.(string)
		r.PaymentAccountID = &s
	}
	if v, ok := fields["onboarding_link"]; ok {
		s := v.(string)
		r.OnboardingLink = &s
	}
	return nil
}

type fakeProductRepo struct {
	byID map[uuid.UUID]*db_models.Product
}

func newFakeProductRepo(products ...*db_models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{byID: make(map[uuid.UUID]*db_models.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.byID[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]db_models.Product, error) {
	var out []db_models.Product
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

type fakeMenuTokenRepo struct {
	tokens    []*db_models.MenuToken
	insertErr error
}

func (f *fakeMenuTokenRepo) Insert(_ context.Context, token *db_models.MenuToken) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.tokens {
		if existing.PublicToken == token.PublicToken {
			return utils.ErrTokenCollision
		}
	}
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeMenuTokenRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) (*db_models.MenuToken, error) {
	for _, t := range f.tokens {
		if t.RestaurantID == restaurantID {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuTokenRepo) FindByToken(_ context.Context, publicToken string) (*db_models.MenuToken, error) {
	for _, t := range f.tokens {
		if t.PublicToken == publicToken {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuTokenRepo) DeleteByRestaurantID(_ context.Context, restaurantID uuid.UUID) error {
	kept := f.tokens[:0]
	for _, t := range f.tokens {
		if t.RestaurantID != restaurantID {
			kept = append(kept, t)
		}
	}
	f.tokens = kept
	return nil
}

type fakeMenuItemRepo struct {
	items []*db_models.MenuItem
}

func (f *fakeMenuItemRepo) Insert(_ context.Context, item *db_models.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeMenuItemRepo) FindByIDAndRestaurant(_ context.Context, id, restaurantID uuid.UUID) (*db_models.MenuItem, error) {
	for _, item := range f.items {
		if item.ID == id && item.RestaurantID == restaurantID {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuItemRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]db_models.MenuItem, error) {
	var out []db_models.MenuItem
	for _, item := range f.items {
		if item.RestaurantID == restaurantID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeMenuItemRepo) ListAvailableByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]db_models.MenuItem, error) {
	var out []db_models.MenuItem
	for _, item := range f.items {
		if item.RestaurantID == restaurantID && item.Available {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeMenuItemRepo) Update(_ context.Context, item *db_models.MenuItem) error {
	for i, existing := range f.items {
		if existing.ID == item.ID {
			f.items[i] = item
		}
	}
	return nil
}

func (f *fakeMenuItemRepo) Delete(_ context.Context, id, restaurantID uuid.UUID) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if !(item.ID == id && item.RestaurantID == restaurantID) {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

// fakeProcessor records every call so tests can assert on what would have
// gone over the wire.
type fakeProcessor struct {
	nextAccountID string
	snapshot      *processor.AccountSnapshot

	createErr   error
	linkErr     error
	retrieveErr error
	checkoutErr error

	createCalls   int
	linkCalls     int
	retrieveCalls int

	lastProfile  *processor.AccountProfile
	lastCheckout *processor.CheckoutInput
}

func (f *fakeProcessor) CreateExpressAccount(_ context.Context, profile processor.AccountProfile) (string, error) {
	f.createCalls++
	f.lastProfile = &profile
	if f.createErr != nil {
		return "", f.createErr
	}
	if f.nextAccountID == "" {
		return "acct_test_1", nil
	}
	return f.nextAccountID, nil
}

func (f *fakeProcessor) CreateOnboardingLink(_ context.Context, accountID, refreshURL, returnURL string) (string, error) {
	f.linkCalls++
	if f.linkErr != nil {
		return "", f.linkErr
	}
	return fmt.Sprintf("https://connect.stripe.test/setup/%s/%d", accountID, f.linkCalls), nil
}

func (f *fakeProcessor) RetrieveAccount(_ context.Context, accountID string) (*processor.AccountSnapshot, error) {
	f.retrieveCalls++
	if f.retrieveErr != nil {
		return nil, f.retrieveErr
	}
	if f.snapshot != nil {
		return f.snapshot, nil
	}
	return &processor.AccountSnapshot{ID: accountID}, nil
}

func (f *fakeProcessor) CreateCheckoutSession(_ context.Context, input processor.CheckoutInput) (string, error) {
	f.lastCheckout = &input
	if f.checkoutErr != nil {
		return "", f.checkoutErr
	}
	return "https://checkout.stripe.test/c/pay/cs_test_1", nil
}

func strPtr(s string) *string {
	return &s
}
