package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menupay/internal/infra"
	"menupay/internal/models/db_models"
	"menupay/internal/models/response_models"
	"menupay/internal/processor"
	"menupay/pkg/utils"
)

func newPaymentService(repo *fakeRestaurantRepo, proc *fakeProcessor) PaymentAccountService {
	return NewPaymentAccountService(repo, proc, infra.Config{RedirectBaseURL: "http://localhost:3000"})
}

func TestCreateAccount_PersistsAccountAndLink(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &db_models.Restaurant{
		UserID:     ownerID,
		Name:       "Gasthaus Adler",
		Email:      "adler@example.com",
		Address:    "Bahnhofstrasse 1",
		City:       "Zurich",
		PostalCode: "8001",
		Country:    "CH",
	}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{nextAccountID: "acct_adler"}
	svc := newPaymentService(repo, proc)

	resp, err := svc.CreateAccount(context.Background(), restaurant.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, "acct_adler", resp.AccountID)
	assert.NotEmpty(t, resp.OnboardingURL)

	stored := repo.byID[restaurant.ID]
	require.NotNil(t, stored.PaymentAccountID)
	assert.Equal(t, "acct_adler", *stored.PaymentAccountID)
	require.NotNil(t, stored.OnboardingLink)
	assert.Equal(t, resp.OnboardingURL, *stored.OnboardingLink)

	require.NotNil(t, proc.lastProfile)
	assert.Equal(t, "Gasthaus Adler", proc.lastProfile.Name)
	assert.Equal(t, "CH", proc.lastProfile.Country)
	require.NotNil(t, proc.lastProfile.Address)
	assert.Equal(t, "Bahnhofstrasse 1", proc.lastProfile.Address.Line1)
}

func TestCreateAccount_EmptyAddressOmitted(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &db_models.Restaurant{
		UserID:  ownerID,
		Name:    "Cafe Zero",
		Country: "CH",
	}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{}
	svc := newPaymentService(repo, proc)

	_, err := svc.CreateAccount(context.Background(), restaurant.ID, ownerID)
	require.NoError(t, err)

	require.NotNil(t, proc.lastProfile)
	assert.Nil(t, proc.lastProfile.Address, "country alone should not produce a support address")
}

func TestCreateAccount_NotOwned(t *testing.T) {
	restaurant := &db_models.Restaurant{UserID: uuid.New(), Name: "Adler"}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{}
	svc := newPaymentService(repo, proc)

	_, err := svc.CreateAccount(context.Background(), restaurant.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrRestaurantNotFound)
	assert.Zero(t, proc.createCalls, "processor must not be called for foreign restaurants")
}

func TestCreateAccount_ProcessorRejectionPersistsNothing(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &db_models.Restaurant{UserID: ownerID, Name: "Adler"}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{
		createErr: errors.New("account rejected: invalid business profile"),
	}
	svc := newPaymentService(repo, proc)

	_, err := svc.CreateAccount(context.Background(), restaurant.ID, ownerID)
	require.Error(t, err)

	stored := repo.byID[restaurant.ID]
	assert.Nil(t, stored.PaymentAccountID)
	assert.Nil(t, stored.OnboardingLink)
}

func TestCreateAccount_SecondCallOverwritesAccountID(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &db_models.Restaurant{UserID: ownerID, Name: "Adler"}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{nextAccountID: "acct_first"}
	svc := newPaymentService(repo, proc)

	_, err := svc.CreateAccount(context.Background(), restaurant.ID, ownerID)
	require.NoError(t, err)

	proc.nextAccountID = "acct_second"
	_, err = svc.CreateAccount(context.Background(), restaurant.ID, ownerID)
	require.NoError(t, err)

	stored := repo.byID[restaurant.ID]
	require.NotNil(t, stored.PaymentAccountID)
	assert.Equal(t, "acct_second", *stored.PaymentAccountID)
}

func TestRefreshOnboarding(t *testing.T) {
	ownerID := uuid.New()

	t.Run("before account creation", func(t *testing.T) {
		restaurant := &db_models.Restaurant{UserID: ownerID}
		repo := newFakeRestaurantRepo(restaurant)
		svc := newPaymentService(repo, &fakeProcessor{})

		_, err := svc.RefreshOnboarding(context.Background(), restaurant.ID, ownerID)
		assert.ErrorIs(t, err, utils.ErrAccountNotCreated)
	})

	t.Run("reuses stored account id", func(t *testing.T) {
		restaurant := &db_models.Restaurant{
			UserID:           ownerID,
			PaymentAccountID: strPtr("acct_adler"),
		}
		repo := newFakeRestaurantRepo(restaurant)
		proc := &fakeProcessor{}
		svc := newPaymentService(repo, proc)

		resp, err := svc.RefreshOnboarding(context.Background(), restaurant.ID, ownerID)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.OnboardingURL)
		assert.Equal(t, 1, proc.linkCalls)
		assert.Zero(t, proc.createCalls)

		stored := repo.byID[restaurant.ID]
		require.NotNil(t, stored.OnboardingLink)
		assert.Equal(t, resp.OnboardingURL, *stored.OnboardingLink)
	})

	t.Run("not owned", func(t *testing.T) {
		restaurant := &db_models.Restaurant{
			UserID:           uuid.New(),
			PaymentAccountID: strPtr("acct_adler"),
		}
		repo := newFakeRestaurantRepo(restaurant)
		svc := newPaymentService(repo, &fakeProcessor{})

		_, err := svc.RefreshOnboarding(context.Background(), restaurant.ID, ownerID)
		assert.ErrorIs(t, err, utils.ErrRestaurantNotFound)
	})
}

func TestGetStatus_NotStarted(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &db_models.Restaurant{UserID: ownerID}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{}
	svc := newPaymentService(repo, proc)

	resp, err := svc.GetStatus(context.Background(), restaurant.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, response_models.AccountStatusNotStarted, resp.Status)
	assert.Nil(t, resp.ChargesEnabled)
	assert.Zero(t, proc.retrieveCalls)
}

func TestGetStatus_LiveSnapshotNotPersisted(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &db_models.Restaurant{
		UserID:           ownerID,
		PaymentAccountID: strPtr("acct_adler"),
	}
	repo := newFakeRestaurantRepo(restaurant)
	proc := &fakeProcessor{
		snapshot: &processor.AccountSnapshot{
			ID:             "acct_adler",
			ChargesEnabled: true,
			PayoutsEnabled: true,
			Requirements: &processor.AccountRequirements{
				CurrentlyDue: []string{"external_account"},
			},
		},
	}
	svc := newPaymentService(repo, proc)

	resp, err := svc.GetStatus(context.Background(), restaurant.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, response_models.AccountStatusCreated, resp.Status)
	assert.Equal(t, "acct_adler", resp.AccountID)
	require.NotNil(t, resp.ChargesEnabled)
	assert.True(t, *resp.ChargesEnabled)
	require.NotNil(t, resp.Requirements)
	assert.Equal(t, []string{"external_account"}, resp.Requirements.CurrentlyDue)

	// Status reads are passthrough. The stored flags stay stale.
	stored := repo.byID[restaurant.ID]
	assert.False(t, stored.ChargesEnabled)
	assert.False(t, stored.PayoutsEnabled)
}
