// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package auth implements account identity and session management.

It defines the core domain entity (Account) and the logic for signup, login,
token revocation, and account lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to account identity.
A single polymorphic Account covers both the rider and driver variants; the
role tag decides which gated surfaces a session may reach.
*/
package auth

import (
	"time"

	"github.com/ridelink/ridelink/internal/platform/sec"
)

// # Domain Entities

// Account represents a registered rider or driver on the Ridelink platform.
type Account struct {
	ID           int64           `json:"id"`
	Mobile       string          `json:"mobile"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"` // Explicitly omitted from JSON for security.
	FirstName    string          `json:"firstname"`
	LastName     string          `json:"lastname,omitempty"`
	Gender       string          `json:"gender,omitempty"`
	DateOfBirth  *time.Time      `json:"dob,omitempty"`
	AvatarPath   string          `json:"avatarpath,omitempty"`
	Role         sec.AccountRole `json:"role"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    *time.Time      `json:"-"` // Soft-delete marker. Omitted for security.
}

// IsDeleted reports whether the account has been soft-deleted.
func (account *Account) IsDeleted() bool {
	return account.DeletedAt != nil
}

// # Field Identifiers

// Global field names for validation and identity mapping in the account domain.
const (
	FieldMobile    = "mobile"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "firstname"
	FieldLastName  = "lastname"
	FieldGender    = "gender"
	FieldDOB       = "dob"
	FieldRole      = "role"
	FieldAccountID = "account_id"
	FieldToken     = "token"
	FieldTokenType = "token_type"
	FieldExpiresAt = "expires_at"
	FieldAccount   = "account"
)
