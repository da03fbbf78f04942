package service

import (
	"context"
	"testing"
	"time"

	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc         *AuthServiceImpl
	accountRepo *mocks.MockAccountRepository
	hashSvc     *mocks.MockHashService
	tokenSvc    *mocks.MockTokenService
	ctrl        *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		hashSvc:     mocks.NewMockHashService(ctrl),
		tokenSvc:    mocks.NewMockTokenService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAuthService(d.accountRepo, d.hashSvc, d.tokenSvc)
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("s3cret-password").Return("argon2-hash", nil)
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.Register(ctx, ports.RegisterRequest{
		Username:    "alice",
		Password:    "s3cret-password",
		DisplayName: "Alice",
		CustodyID:   "cust-alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "argon2-hash", account.PasswordHash)
	assert.Equal(t, "cust-alice", account.CustodyID)
	assert.False(t, account.IsOperator)
	assert.Equal(t, domain.AccountStatusActive, account.Status)
}

func TestAuthService_Register_UsernameExists(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID: uuid.New(), Username: "alice",
	}, nil)

	_, err := d.svc.Register(ctx, ports.RegisterRequest{
		Username: "alice", Password: "pw", CustodyID: "cust-alice",
	})
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Register_MissingCustodyID(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "bob").Return(nil, nil)

	_, err := d.svc.Register(ctx, ports.RegisterRequest{
		Username: "bob", Password: "pw",
	})
	assertAppError(t, err, "VAL_001")
}

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	expiry := time.Now().Add(time.Hour)

	d.accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID: accountID, Username: "alice", PasswordHash: "argon2-hash",
		Status: domain.AccountStatusActive,
	}, nil)
	d.hashSvc.EXPECT().Verify("s3cret-password", "argon2-hash").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(accountID, false).Return("jwt-token", expiry, nil)

	token, exp, err := d.svc.Login(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, _, err := d.svc.Login(ctx, "ghost", "pw")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID: uuid.New(), PasswordHash: "argon2-hash", Status: domain.AccountStatusActive,
	}, nil)
	d.hashSvc.EXPECT().Verify("wrong", "argon2-hash").Return(false, nil)

	_, _, err := d.svc.Login(ctx, "alice", "wrong")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_Suspended(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID: uuid.New(), PasswordHash: "argon2-hash", Status: domain.AccountStatusSuspended,
	}, nil)
	d.hashSvc.EXPECT().Verify("s3cret-password", "argon2-hash").Return(true, nil)

	_, _, err := d.svc.Login(ctx, "alice", "s3cret-password")
	assertAppError(t, err, "AUTH_004")
}

func TestAuthService_Login_OperatorClaim(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	d.accountRepo.EXPECT().GetByUsername(ctx, "ops").Return(&domain.Account{
		ID: accountID, PasswordHash: "argon2-hash", IsOperator: true,
		Status: domain.AccountStatusActive,
	}, nil)
	d.hashSvc.EXPECT().Verify("pw", "argon2-hash").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(accountID, true).Return("jwt-token", time.Now().Add(time.Hour), nil)

	_, _, err := d.svc.Login(ctx, "ops", "pw")
	require.NoError(t, err)
}
