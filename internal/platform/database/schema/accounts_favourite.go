// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package schema

// FavouriteTable represents the 'accounts.favourite' table
type FavouriteTable struct {
	Table       string
	ID          string
	AccountID   string
	Title       string
	Description string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Favourite is the schema definition for accounts.favourite
var Favourite = FavouriteTable{
	Table:       "accounts.favourite",
	ID:          "id",
	AccountID:   "accountid",
	Title:       "title",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
