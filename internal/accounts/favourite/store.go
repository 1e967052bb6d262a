// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package favourite

import "context"

// Repository defines the data access contract for favourites.
//
// Every method is scoped by the owning account id so a session can never
// read or mutate another account's favourites.
type Repository interface {

	// Create persists a new favourite; the generated id and timestamps are
	// written back into the entity.
	Create(context context.Context, favourite *Favourite) error

	// ListByAccount returns a page of the account's non-deleted favourites
	// plus the total count.
	ListByAccount(context context.Context, accountID int64, limit, offset int) ([]*Favourite, int, error)

	// FindByID returns the account's non-deleted favourite with the given id.
	FindByID(context context.Context, accountID, id int64) (*Favourite, error)

	// Update persists title/description changes of an owned favourite.
	Update(context context.Context, favourite *Favourite) error

	// SoftDelete marks an owned favourite as deleted. Returns apperr.NotFound
	// when no live row matched.
	SoftDelete(context context.Context, accountID, id int64) error
}
