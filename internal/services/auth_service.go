package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"github.com/stakedraw/stakedraw-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl handles account registration and login. The address on the account is
// the caller identity the lottery engine authorizes against; the configured owner
// address is granted the admin role at login.
type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	cfg          *config.Config
	ownerAddress string
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		cfg:          cfg,
		ownerAddress: cfg.Lottery.OwnerAddress,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, errors.New("an account with this email already exists")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	_, err = s.userRepo.FindByAddress(ctx, req.Address)
	if err == nil {
		return nil, errors.New("an account with this address already exists")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := "user"
	if req.Address == s.ownerAddress {
		role = "admin"
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		Address:  req.Address,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		slog.Error("Register: failed to create account", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("Account registered", "address", utils.MaskAddress(user.Address), "role", role)
	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues a JWT carrying the account address and role
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.Address, user.Role, s.cfg)
	if err != nil {
		slog.Error("Login: failed to generate token", "error", err, "address", utils.MaskAddress(user.Address))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:   token,
		Address: user.Address,
		Role:    user.Role,
	}, nil
}
