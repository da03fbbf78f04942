package service

import (
	"context"
	"fmt"
	"time"

	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	accountRepo ports.AccountRepository
	hashSvc     ports.HashService
	tokenSvc    ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	accountRepo ports.AccountRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		hashSvc:     hashSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register creates a new account bound to a custody identity.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Account, error) {
	existing, err := s.accountRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	if req.CustodyID == "" {
		return nil, apperror.Validation("custody_id is required")
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		DisplayName:  req.DisplayName,
		CustodyID:    req.CustodyID,
		IsOperator:   false,
		Status:       domain.AccountStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	return account, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if account == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, account.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !account.IsActive() {
		return "", time.Time{}, apperror.ErrAccountSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(account.ID, account.IsOperator)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
