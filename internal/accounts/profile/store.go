// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package profile implements the authenticated account's own profile surface.

It reads and partially updates the single polymorphic Account entity owned
by the session. The mobile number is the immutable login key and is not
reachable from this surface at all.
*/
package profile

import (
	"context"

	"github.com/ridelink/ridelink/internal/accounts/auth"
)

// AccountRepository defines the data access contract for profile operations.
type AccountRepository interface {

	/*
		FindByID returns the non-deleted account with the given id.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.Account: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id int64) (*auth.Account, error)

	/*
		Update persists the mutable profile fields of an account.

		Description: Writes email, names, gender, dob, and avatar path. The
		mobile number and password hash are never touched by this method.

		Parameters:
		  - context: context.Context
		  - account: *auth.Account

		Returns:
		  - error: apperr.Conflict (duplicate email), apperr.NotFound, or persistence failures
	*/
	Update(context context.Context, account *auth.Account) error
}
