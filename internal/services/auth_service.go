package services

import (
	"context"

	"github.com/google/uuid"

	"menupay/internal/infra"
	"menupay/internal/models/db_models"
	"menupay/internal/models/request_models"
	"menupay/internal/models/response_models"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

type AuthService interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo repositories.UserRepository, cfg infra.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
	}
}

func (s *authService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.LoginResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.LoginResponse{Token: token, UserID: user.ID.String()}, nil
}

func (s *authService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return &response_models.LoginResponse{Token: token, UserID: user.ID.String()}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return &response_models.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}
