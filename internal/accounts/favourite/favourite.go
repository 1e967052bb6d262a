// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package favourite implements saved places for rider and driver accounts.

A favourite is a named location shortcut (home, work) owned by exactly one
account. Ownership is always derived from the session claims — the account
id never travels in a request body.
*/
package favourite

import "time"

// Favourite represents a saved place belonging to an account.
type Favourite struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)
