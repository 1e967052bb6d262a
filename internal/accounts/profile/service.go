// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package profile

import (
	"context"
	"time"

	"github.com/ridelink/ridelink/internal/accounts/auth"
	"github.com/ridelink/ridelink/pkg/pointer"
)

// Service implements the profile use cases for the authenticated account.
type Service struct {
	accountRepository AccountRepository
}

// NewService constructs a new profile [Service].
func NewService(accountRepo AccountRepository) *Service {
	return &Service{accountRepository: accountRepo}
}

// UpdateInput holds the optional profile fields of a partial update.
//
// Nil pointers mean "leave unchanged". The mobile number is deliberately
// absent: it is the immutable login key.
type UpdateInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	Gender      *string
	DateOfBirth *time.Time
	AvatarPath  *string
}

/*
Get returns the caller's own account.

Parameters:
  - context: context.Context
  - accountID: int64

Returns:
  - *auth.Account: Hydrated entity, hash excluded from serialization
  - err: apperr.NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, accountID int64) (*auth.Account, error) {
	return service.accountRepository.FindByID(context, accountID)
}

/*
Update applies a partial update to the caller's own account.

Description: Reads the current row, overlays only the provided fields, and
persists the result. A duplicate email surfaces from the storage constraint
as a 409.

Parameters:
  - context: context.Context
  - accountID: int64
  - input: UpdateInput

Returns:
  - *auth.Account: Updated entity
  - err: Conflict, NotFound, or persistence failures
*/
func (service *Service) Update(context context.Context, accountID int64, input UpdateInput) (*auth.Account, error) {
	account, err := service.accountRepository.FindByID(context, accountID)
	if err != nil {
		return nil, err
	}

	account.Email = pointer.Fallback(input.Email, account.Email)
	account.FirstName = pointer.Fallback(input.FirstName, account.FirstName)
	account.LastName = pointer.Fallback(input.LastName, account.LastName)
	account.Gender = pointer.Fallback(input.Gender, account.Gender)
	account.AvatarPath = pointer.Fallback(input.AvatarPath, account.AvatarPath)
	if input.DateOfBirth != nil {
		account.DateOfBirth = input.DateOfBirth
	}

	if err := service.accountRepository.Update(context, account); err != nil {
		return nil, err
	}

	return account, nil
}
