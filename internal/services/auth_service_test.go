package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menupay/internal/infra"
	"menupay/internal/models/db_models"
	"menupay/internal/models/request_models"
	"menupay/pkg/utils"
)

type fakeUserRepo struct {
	byID map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthSvc(users *fakeUserRepo) AuthService {
	return NewAuthService(users, infra.Config{JWTSecret: "test-secret"})
}

func TestSignUpAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthSvc(users)

	signUp, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signUp.Token)

	stored, err := users.FindByEmail(context.Background(), "mia@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "password must never be stored in the clear")

	login, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "mia@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, signUp.UserID, login.UserID)

	claims, err := utils.ValidateToken(login.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, login.UserID, claims.UserID)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc := newAuthSvc(newFakeUserRepo())

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Other Mia",
		Email:    "mia@example.com",
		Password: "different-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_BadCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthSvc(users)

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "mia@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthSvc(users)

	signUp, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	resp, err := svc.CurrentUser(context.Background(), uuid.MustParse(signUp.UserID))
	require.NoError(t, err)
	assert.Equal(t, "mia@example.com", resp.Email)
	assert.Equal(t, "Mia", resp.Name)

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
