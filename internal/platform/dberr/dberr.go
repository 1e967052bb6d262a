// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Why at this layer?
//
// Uniqueness of account mobile/email is enforced solely by storage-level
// unique constraints; a check-then-insert pre-check is racy by
// construction. Mapping SQLSTATE 23505 here is what turns the constraint
// into the client-facing 409.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ridelink/ridelink/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Missing row: the queried id/key does not exist (or is soft-deleted).
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Unique-constraint violation: duplicate value for a unique column.
	if IsUniqueViolation(err, "") {
		return apperr.Conflict(resource + " already exists.")
	}

	// 3. Everything else becomes an Internal Server Error with a hidden cause.
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a SQLSTATE 23505 unique violation.
// When constraint is non-empty, the violated constraint name must match too.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
