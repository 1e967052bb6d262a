// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

// Package schema holds table and column reference definitions for every
// relation the repositories touch. Queries are composed from these refs so
// a rename happens in exactly one place.
package schema

// AccountTable represents the 'accounts.account' table
type AccountTable struct {
	Table        string
	ID           string
	Mobile       string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Gender       string
	DateOfBirth  string
	AvatarPath   string
	Role         string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// Account is the schema definition for accounts.account
var Account = AccountTable{
	Table:        "accounts.account",
	ID:           "id",
	Mobile:       "mobile",
	Email:        "email",
	PasswordHash: "passwordhash",
	FirstName:    "firstname",
	LastName:     "lastname",
	Gender:       "gender",
	DateOfBirth:  "dob",
	AvatarPath:   "avatarpath",
	Role:         "role",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

// Unique constraint names, used to map SQLSTATE 23505 to field-specific conflicts.
const (
	AccountMobileUnique = "account_mobile_active_key"
	AccountEmailUnique  = "account_email_active_key"
)
