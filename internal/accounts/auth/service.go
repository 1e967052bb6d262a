// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/constants"
	"github.com/ridelink/ridelink/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing session tokens.
type TokenProvider interface {
	// Generate creates a signed session token for the given account.
	//
	// # Parameters
	//   - accountID: The numeric id of the account.
	//   - mobile: The mobile number of the account.
	//   - role: The account's role variant.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - The signed token string and its embedded claims, or an err if signing fails.
	Generate(accountID int64, mobile string, role sec.AccountRole, timeToLive time.Duration) (string, *sec.AuthClaims, error)
}

// Service implements account authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed by the security team.
type Service struct {
	accountRepository AccountRepository
	revocationStore   RevocationStore
	tokenProvider     TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	accountRepo AccountRepository,
	revocationStore RevocationStore,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		revocationStore:   revocationStore,
		tokenProvider:     tokenProv,
	}
}

// # Signup Flow

// SignUpInput holds the data required to enroll a new rider or driver.
type SignUpInput struct {
	Mobile      string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth *time.Time
	AvatarPath  string
	Role        sec.AccountRole
}

/*
SignUp hashes credentials and persists a brand new account.

Description: Enrollment of a new rider or driver. Uniqueness of mobile and
email is NOT pre-checked here; the storage constraint is the arbiter, so two
concurrent signups with the same mobile resolve to exactly one 201.

Parameters:
  - context: context.Context
  - input: SignUpInput

Returns:
  - *Account: Created entity (hash populated, excluded from serialization)
  - err: Conflict (duplicate identity) or storage errors
*/
func (service *Service) SignUp(context context.Context, input SignUpInput) (*Account, error) {

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during signup spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// New accounts default to the rider variant unless a driver signs up.
	role := input.Role
	if role == "" {
		role = sec.RoleRider
	}

	account := &Account{
		Mobile:       input.Mobile,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Gender:       input.Gender,
		DateOfBirth:  input.DateOfBirth,
		AvatarPath:   input.AvatarPath,
		Role:         role,
	}

	// Persist the account. The repository maps a unique violation to a
	// field-specific Conflict.
	if err := service.accountRepository.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// # Login Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Mobile   string
	Password string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	Account   *Account
}

/*
Login validates account credentials and issues the session token.

Description: Looks the account up by mobile among non-deleted rows and
performs a constant-time password comparison. An unknown mobile, a deleted
account, and a wrong password all produce the same generic 401.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready token and account
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Soft-deleted accounts are filtered at the repository, so they fail
	// here exactly like unknown mobiles. Generic message prevents enumeration.
	account, err := service.accountRepository.FindByMobile(context, input.Mobile)
	if err != nil {
		return nil, apperr.Unauthorized(LoginFailedMessage)
	}

	// Verify password hash using bcrypt's constant-time comparison.
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized(LoginFailedMessage)
	}

	// Issue the 24-hour session token.
	token, claims, err := service.tokenProvider.Generate(
		account.ID, account.Mobile, account.Role, constants.SessionTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Account:   account,
	}, nil
}

// # Session Termination

/*
Logout denylists the presented token for its remaining lifetime.

Description: Tokens are stateless bearer capabilities, so logout cannot
delete a session row; it records the token's jti in the revocation set
instead. Idempotent: logging out twice is still a success.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (the verified claims of the presented token)

Returns:
  - err: Denylist storage failures
*/
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {

	remaining := time.Until(claims.ExpiresAt.Time)

	if err := service.revocationStore.RevokeToken(context, claims.ID, remaining); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

/*
DeleteAccount soft-deletes an account and revokes its outstanding tokens.

Description: Only the token's own account may be deleted. The row is
retained with deletedat set; the account id goes on the denylist for the
maximum token lifetime so every token issued before the delete stops
verifying immediately.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - targetID: int64 (the account the caller asked to delete)

Returns:
  - err: Forbidden (foreign account), NotFound (already gone), or storage failures
*/
func (service *Service) DeleteAccount(context context.Context, claims *sec.AuthClaims, targetID int64) error {

	// Ownership check: a session may only delete its own account.
	if claims.AccountID != targetID {
		return apperr.Forbidden("You can only delete your own account.")
	}

	// Soft delete; a missing or already-deleted row surfaces as 404.
	if err := service.accountRepository.SoftDelete(context, targetID); err != nil {
		return err
	}

	// Revoke every outstanding token of this account. Denylist TTL is the
	// maximum token lifetime; after that no live token can remain anyway.
	if err := service.revocationStore.RevokeAccount(context, targetID, constants.SessionTokenTTL); err != nil {
		return fmt.Errorf("auth_service_delete_revoke_failed: %w", err)
	}

	return nil
}
