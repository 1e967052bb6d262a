// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package favourite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/database/schema"
	"github.com/ridelink/ridelink/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, favourite *Favourite) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s`,
		schema.Favourite.Table,
		schema.Favourite.AccountID, schema.Favourite.Title, schema.Favourite.Description,
		schema.Favourite.CreatedAt, schema.Favourite.UpdatedAt,
		schema.Favourite.ID, schema.Favourite.CreatedAt, schema.Favourite.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		favourite.AccountID, favourite.Title, favourite.Description,
	).Scan(&favourite.ID, &favourite.CreatedAt, &favourite.UpdatedAt)

	return dberr.Wrap(err, "Favourite")
}

func (repository *PostgresRepository) ListByAccount(context context.Context, accountID int64, limit, offset int) ([]*Favourite, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1 AND %s IS NULL`,
		schema.Favourite.Table, schema.Favourite.AccountID, schema.Favourite.DeletedAt,
	)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, accountID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Favourite")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`,
		schema.Favourite.ID, schema.Favourite.AccountID, schema.Favourite.Title,
		schema.Favourite.Description, schema.Favourite.CreatedAt, schema.Favourite.UpdatedAt,
		schema.Favourite.Table,
		schema.Favourite.AccountID, schema.Favourite.DeletedAt,
		schema.Favourite.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Favourite")
	}
	defer rows.Close()

	var favourites []*Favourite
	for rows.Next() {
		f := &Favourite{}
		if err := rows.Scan(&f.ID, &f.AccountID, &f.Title, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "Favourite")
		}
		favourites = append(favourites, f)
	}

	return favourites, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, accountID, id int64) (*Favourite, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s IS NULL`,
		schema.Favourite.ID, schema.Favourite.AccountID, schema.Favourite.Title,
		schema.Favourite.Description, schema.Favourite.CreatedAt, schema.Favourite.UpdatedAt,
		schema.Favourite.Table,
		schema.Favourite.ID, schema.Favourite.AccountID, schema.Favourite.DeletedAt,
	)

	f := &Favourite{}
	err := repository.pool.QueryRow(context, query, id, accountID).Scan(
		&f.ID, &f.AccountID, &f.Title, &f.Description, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Favourite")
	}

	return f, nil
}

func (repository *PostgresRepository) Update(context context.Context, favourite *Favourite) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s = $2 AND %s IS NULL
		RETURNING %s`,
		schema.Favourite.Table,
		schema.Favourite.Title, schema.Favourite.Description, schema.Favourite.UpdatedAt,
		schema.Favourite.ID, schema.Favourite.AccountID, schema.Favourite.DeletedAt,
		schema.Favourite.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		favourite.ID, favourite.AccountID, favourite.Title, favourite.Description,
	).Scan(&favourite.UpdatedAt)

	return dberr.Wrap(err, "Favourite")
}

func (repository *PostgresRepository) SoftDelete(context context.Context, accountID, id int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s = $2 AND %s IS NULL`,
		schema.Favourite.Table, schema.Favourite.DeletedAt,
		schema.Favourite.ID, schema.Favourite.AccountID, schema.Favourite.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id, accountID)
	if err != nil {
		return dberr.Wrap(err, "Favourite")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Favourite")
	}

	return nil
}
