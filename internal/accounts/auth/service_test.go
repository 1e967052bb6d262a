// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/accounts/auth"
	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/sec"
)

// # Test Doubles

// fakeAccountRepository is an in-memory AccountRepository that mirrors the
// storage contract: unique mobile/email among live rows, soft delete keeps
// the row, and lookups skip deleted rows.
type fakeAccountRepository struct {
	nextID   int64
	accounts map[int64]*auth.Account
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{nextID: 1, accounts: make(map[int64]*auth.Account)}
}

func (repository *fakeAccountRepository) Create(_ context.Context, account *auth.Account) error {
	for _, existing := range repository.accounts {
		if existing.IsDeleted() {
			continue
		}
		if existing.Mobile == account.Mobile {
			return apperr.Conflict("Mobile number is already registered.")
		}
		if account.Email != "" && existing.Email == account.Email {
			return apperr.Conflict("Email is already registered.")
		}
	}

	account.ID = repository.nextID
	repository.nextID++
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	stored := *account
	repository.accounts[account.ID] = &stored
	return nil
}

func (repository *fakeAccountRepository) FindByMobile(_ context.Context, mobile string) (*auth.Account, error) {
	for _, account := range repository.accounts {
		if account.Mobile == mobile && !account.IsDeleted() {
			found := *account
			return &found, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (repository *fakeAccountRepository) FindByID(_ context.Context, id int64) (*auth.Account, error) {
	account, ok := repository.accounts[id]
	if !ok || account.IsDeleted() {
		return nil, apperr.NotFound("Account")
	}
	found := *account
	return &found, nil
}

func (repository *fakeAccountRepository) SoftDelete(_ context.Context, id int64) error {
	account, ok := repository.accounts[id]
	if !ok || account.IsDeleted() {
		return apperr.NotFound("Account")
	}
	now := time.Now()
	account.DeletedAt = &now
	return nil
}

// fakeRevocationStore records denylist writes in plain maps.
type fakeRevocationStore struct {
	revokedTokens   map[string]time.Duration
	revokedAccounts map[int64]time.Duration
}

func newFakeRevocationStore() *fakeRevocationStore {
	return &fakeRevocationStore{
		revokedTokens:   make(map[string]time.Duration),
		revokedAccounts: make(map[int64]time.Duration),
	}
}

func (store *fakeRevocationStore) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	store.revokedTokens[jti] = ttl
	return nil
}

func (store *fakeRevocationStore) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	_, revoked := store.revokedTokens[jti]
	return revoked, nil
}

func (store *fakeRevocationStore) RevokeAccount(_ context.Context, accountID int64, ttl time.Duration) error {
	store.revokedAccounts[accountID] = ttl
	return nil
}

func (store *fakeRevocationStore) IsAccountRevoked(_ context.Context, accountID int64) (bool, error) {
	_, revoked := store.revokedAccounts[accountID]
	return revoked, nil
}

// fakeTokenProvider issues predictable tokens with real claim structure.
type fakeTokenProvider struct {
	issued int
}

func (provider *fakeTokenProvider) Generate(
	accountID int64, mobile string, role sec.AccountRole, timeToLive time.Duration,
) (string, *sec.AuthClaims, error) {
	provider.issued++
	claims := &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        fmt.Sprintf("jti-%d", provider.issued),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeToLive)),
		},
		AccountID: accountID,
		Mobile:    mobile,
		Role:      string(role),
	}
	return fmt.Sprintf("token-%d", provider.issued), claims, nil
}

func newTestService() (*auth.Service, *fakeAccountRepository, *fakeRevocationStore) {
	repository := newFakeAccountRepository()
	revocations := newFakeRevocationStore()
	service := auth.NewService(repository, revocations, &fakeTokenProvider{})
	return service, repository, revocations
}

func signUpFixture() auth.SignUpInput {
	return auth.SignUpInput{
		Mobile:    "9876543210",
		Email:     "alice@example.com",
		Password:  "secret1",
		FirstName: "Alice",
		Role:      sec.RoleRider,
	}
}

// # Signup

/*
TestService_SignUp_HashesPassword verifies the stored credential is a bcrypt
digest, never the plaintext.
*/
func TestService_SignUp_HashesPassword(t *testing.T) {
	service, repository, _ := newTestService()

	account, err := service.SignUp(context.Background(), signUpFixture())
	require.NoError(t, err)
	require.NotZero(t, account.ID)

	stored := repository.accounts[account.ID]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret1", stored.PasswordHash))
}

/*
TestService_SignUp_DefaultsToRider verifies an empty role enrolls a rider.
*/
func TestService_SignUp_DefaultsToRider(t *testing.T) {
	service, _, _ := newTestService()

	input := signUpFixture()
	input.Role = ""

	account, err := service.SignUp(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleRider, account.Role)
}

/*
TestService_SignUp_DuplicateMobile verifies the second signup with the same
mobile surfaces the storage conflict instead of a pre-check race.
*/
func TestService_SignUp_DuplicateMobile(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.SignUp(context.Background(), signUpFixture())
	require.NoError(t, err)

	duplicate := signUpFixture()
	duplicate.Email = "other@example.com"

	_, err = service.SignUp(context.Background(), duplicate)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Mobile number is already registered.", ae.Message)
}

// # Login

/*
TestService_Login_Success verifies valid credentials yield a session whose
claims carry the account identity.
*/
func TestService_Login_Success(t *testing.T) {
	service, _, _ := newTestService()

	account, err := service.SignUp(context.Background(), signUpFixture())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Mobile:   "9876543210",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
	assert.Equal(t, account.ID, session.Account.ID)
}

/*
TestService_Login_FailureIsGeneric verifies unknown mobile, wrong password,
and deleted account all fail with the SAME 401 message, so a caller cannot
probe which mobile numbers are registered.
*/
func TestService_Login_FailureIsGeneric(t *testing.T) {
	service, _, _ := newTestService()

	account, err := service.SignUp(context.Background(), signUpFixture())
	require.NoError(t, err)

	claims := &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-owner",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		AccountID: account.ID,
	}

	tests := []struct {
		name  string
		setup func(t *testing.T)
		input auth.LoginInput
	}{
		{
			name:  "unknown_mobile",
			input: auth.LoginInput{Mobile: "0000000000", Password: "secret1"},
		},
		{
			name:  "wrong_password",
			input: auth.LoginInput{Mobile: "9876543210", Password: "wrong-password"},
		},
		{
			name: "soft_deleted_account",
			setup: func(t *testing.T) {
				require.NoError(t, service.DeleteAccount(context.Background(), claims, account.ID))
			},
			input: auth.LoginInput{Mobile: "9876543210", Password: "secret1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup(t)
			}

			session, err := service.Login(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, session)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			assert.Equal(t, auth.LoginFailedMessage, ae.Message)
		})
	}
}

// # Logout & Account Deletion

/*
TestService_Logout_RevokesJTI verifies logout puts the presented token's jti
on the denylist.
*/
func TestService_Logout_RevokesJTI(t *testing.T) {
	service, _, revocations := newTestService()

	claims := &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-logout",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		AccountID: 1,
	}

	require.NoError(t, service.Logout(context.Background(), claims))

	revoked, err := revocations.IsTokenRevoked(context.Background(), "jti-logout")
	require.NoError(t, err)
	assert.True(t, revoked)
}

/*
TestService_DeleteAccount_ForeignAccountForbidden verifies a session cannot
delete anyone else's account.
*/
func TestService_DeleteAccount_ForeignAccountForbidden(t *testing.T) {
	service, _, _ := newTestService()

	claims := &sec.AuthClaims{AccountID: 1}

	err := service.DeleteAccount(context.Background(), claims, 2)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
}

/*
TestService_DeleteAccount_SoftDeletes verifies deletion keeps the row with a
deletion marker and denylists the whole account.
*/
func TestService_DeleteAccount_SoftDeletes(t *testing.T) {
	service, repository, revocations := newTestService()

	account, err := service.SignUp(context.Background(), signUpFixture())
	require.NoError(t, err)

	claims := &sec.AuthClaims{AccountID: account.ID}
	require.NoError(t, service.DeleteAccount(context.Background(), claims, account.ID))

	// Row retained, marked deleted.
	stored := repository.accounts[account.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsDeleted())

	// All tokens of the account stop verifying.
	revoked, err := revocations.IsAccountRevoked(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// A second delete finds no live row.
	err = service.DeleteAccount(context.Background(), claims, account.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
