// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

// PostgreSQL implementation of the account storage layer.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows or SQLSTATE 23505) are mapped
// to domain-friendly [apperr.AppError] types so the handlers never leak
// storage implementation details.
package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/database/schema"
	"github.com/ridelink/ridelink/internal/platform/dberr"
)

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of [AccountRepository].
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
Create persists a new account record into the accounts.account table.

Description: Uniqueness of mobile and email is enforced solely by the partial
unique indexes over non-deleted rows. A violation is translated here into a
field-specific 409 so concurrent duplicate signups resolve to exactly one
winner.

Parameters:
  - context: context.Context
  - account: *Account

Returns:
  - error: apperr.Conflict on duplicates, or persistence failures
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s, %s`,
		schema.Account.Table,
		schema.Account.Mobile, schema.Account.Email, schema.Account.PasswordHash,
		schema.Account.FirstName, schema.Account.LastName, schema.Account.Gender,
		schema.Account.DateOfBirth, schema.Account.AvatarPath, schema.Account.Role,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
		schema.Account.ID, schema.Account.CreatedAt, schema.Account.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.Mobile,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.Gender,
		account.DateOfBirth,
		account.AvatarPath,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if dberr.IsUniqueViolation(err, schema.AccountMobileUnique) {
			return apperr.Conflict("Mobile number is already registered.")
		}
		if dberr.IsUniqueViolation(err, schema.AccountEmailUnique) {
			return apperr.Conflict("Email is already registered.")
		}
		return dberr.Wrap(err, "Account")
	}

	return nil
}

/*
FindByMobile retrieves a live account record by its mobile number.

Description: Lookup used by login. Soft-deleted rows are filtered out, so a
deleted account fails authentication exactly like an unknown one.

Parameters:
  - context: context.Context
  - mobile: string

Returns:
  - *Account: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresAccountRepository) FindByMobile(context context.Context, mobile string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s IS NULL`,
		accountColumns(), schema.Account.Table,
		schema.Account.Mobile, schema.Account.DeletedAt,
	)

	account := &Account{}
	if err := scanAccount(repository.pool.QueryRow(context, query, mobile), account); err != nil {
		return nil, dberr.Wrap(err, "Account")
	}

	return account, nil
}

/*
FindByID retrieves a live account record by its primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Account: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id int64) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s IS NULL`,
		accountColumns(), schema.Account.Table,
		schema.Account.ID, schema.Account.DeletedAt,
	)

	account := &Account{}
	if err := scanAccount(repository.pool.QueryRow(context, query, id), account); err != nil {
		return nil, dberr.Wrap(err, "Account")
	}

	return account, nil
}

/*
SoftDelete marks an account as deleted by setting deletedat.

Description: Retention-friendly deletion: the row survives for audit and
order history, but every active-row query stops seeing it.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound when no live row matched, or persistence failures
*/
func (repository *PostgresAccountRepository) SoftDelete(context context.Context, id int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.Account.Table, schema.Account.DeletedAt,
		schema.Account.ID, schema.Account.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Account")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Account")
	}

	return nil
}

// accountColumns returns the canonical SELECT column list for account queries.
func accountColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.Account.ID, schema.Account.Mobile, schema.Account.Email,
		schema.Account.PasswordHash, schema.Account.FirstName, schema.Account.LastName,
		schema.Account.Gender, schema.Account.DateOfBirth, schema.Account.AvatarPath,
		schema.Account.Role, schema.Account.CreatedAt, schema.Account.UpdatedAt,
	)
}

// rowScanner is the minimal scanning contract shared by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount hydrates an Account from a row in canonical column order.
func scanAccount(row rowScanner, account *Account) error {
	return row.Scan(
		&account.ID,
		&account.Mobile,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&account.Gender,
		&account.DateOfBirth,
		&account.AvatarPath,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}
