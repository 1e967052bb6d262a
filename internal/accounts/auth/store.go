// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth

import (
	"context"
	"time"
)

// # Account Data Access

// AccountRepository defines the data access contract for accounts.
type AccountRepository interface {

	/*
		Create persists a brand-new account to storage.

		Description: The generated id and timestamps are written back into the
		entity. A duplicate mobile or email surfaces as a unique-constraint
		violation from storage; there is no pre-check.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: Unique-constraint or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		FindByMobile returns the non-deleted account with the given mobile number.

		Parameters:
		  - context: context.Context
		  - mobile: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByMobile(context context.Context, mobile string) (*Account, error)

	/*
		FindByID returns the non-deleted account with the given id.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Account, error)

	/*
		SoftDelete marks the account as deleted without removing the row.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr.NotFound when no live row matched, or persistence failures
	*/
	SoftDelete(context context.Context, id int64) error
}

// # Revocation Data Access

// RevocationStore defines the contract for the volatile token denylist.
//
// Session tokens are bearer capabilities with no server-side session row;
// the denylist is the only earlier exit before a token's natural expiry.
type RevocationStore interface {

	/*
		RevokeToken denylists a single token by its jti claim.

		Parameters:
		  - context: context.Context
		  - jti: string
		  - ttl: time.Duration (remaining token lifetime)

		Returns:
		  - error: Storage failures
	*/
	RevokeToken(context context.Context, jti string, ttl time.Duration) error

	/*
		IsTokenRevoked reports whether the jti is on the denylist.

		Parameters:
		  - context: context.Context
		  - jti: string

		Returns:
		  - bool: Denylist membership
		  - error: Storage failures
	*/
	IsTokenRevoked(context context.Context, jti string) (bool, error)

	/*
		RevokeAccount denylists every outstanding token of an account.

		Description: Used on account deletion so tokens issued before the
		delete stop verifying immediately.

		Parameters:
		  - context: context.Context
		  - accountID: int64
		  - ttl: time.Duration (maximum token lifetime)

		Returns:
		  - error: Storage failures
	*/
	RevokeAccount(context context.Context, accountID int64, ttl time.Duration) error

	/*
		IsAccountRevoked reports whether the account id is on the denylist.

		Parameters:
		  - context: context.Context
		  - accountID: int64

		Returns:
		  - bool: Denylist membership
		  - error: Storage failures
	*/
	IsAccountRevoked(context context.Context, accountID int64) (bool, error)
}
