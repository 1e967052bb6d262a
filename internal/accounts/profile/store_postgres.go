// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridelink/ridelink/internal/accounts/auth"
	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/database/schema"
	"github.com/ridelink/ridelink/internal/platform/dberr"
)

// PostgresRepository implements [AccountRepository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [AccountRepository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByID retrieves a live account record by its primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *auth.Account: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*auth.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL`,
		schema.Account.ID, schema.Account.Mobile, schema.Account.Email,
		schema.Account.FirstName, schema.Account.LastName, schema.Account.Gender,
		schema.Account.DateOfBirth, schema.Account.AvatarPath, schema.Account.Role,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
		schema.Account.Table,
		schema.Account.ID, schema.Account.DeletedAt,
	)

	account := &auth.Account{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&account.ID,
		&account.Mobile,
		&account.Email,
		&account.FirstName,
		&account.LastName,
		&account.Gender,
		&account.DateOfBirth,
		&account.AvatarPath,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Account")
	}

	return account, nil
}

/*
Update persists changes to an account's mutable profile fields.

Description: Synchronizes the in-memory account state with the database,
refreshing the updatedat timestamp. Email uniqueness among non-deleted rows
is enforced by the storage constraint and mapped to a 409 here.

Parameters:
  - context: context.Context
  - account: *auth.Account

Returns:
  - error: apperr.Conflict, apperr.NotFound, or persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, account *auth.Account) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s`,
		schema.Account.Table,
		schema.Account.Email, schema.Account.FirstName, schema.Account.LastName,
		schema.Account.Gender, schema.Account.DateOfBirth, schema.Account.AvatarPath,
		schema.Account.UpdatedAt,
		schema.Account.ID, schema.Account.DeletedAt,
		schema.Account.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.ID,
		account.Email,
		account.FirstName,
		account.LastName,
		account.Gender,
		account.DateOfBirth,
		account.AvatarPath,
	).Scan(&account.UpdatedAt)

	if err != nil {
		if dberr.IsUniqueViolation(err, schema.AccountEmailUnique) {
			return apperr.Conflict("Email is already registered.")
		}
		return dberr.Wrap(err, "Account")
	}

	return nil
}
