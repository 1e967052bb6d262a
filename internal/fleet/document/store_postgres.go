// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package document

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

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

func (repository *PostgresRepository) Create(context context.Context, document *Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s`,
		schema.Document.Table,
		schema.Document.DriverID, schema.Document.Name, schema.Document.Photo,
		schema.Document.CardNumber, schema.Document.ExpiredDate,
		schema.Document.CreatedAt, schema.Document.UpdatedAt,
		schema.Document.ID, schema.Document.CreatedAt, schema.Document.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		document.DriverID,
		document.Name,
		document.Photo,
		document.CardNumber,
		document.ExpiredDate,
	).Scan(&document.ID, &document.CreatedAt, &document.UpdatedAt)

	return dberr.Wrap(err, "Document")
}

func (repository *PostgresRepository) ListByDriver(context context.Context, driverID int64, limit, offset int) ([]*Document, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.Document.Table, schema.Document.DriverID,
	)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, driverID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Document")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`,
		schema.Document.ID, schema.Document.DriverID, schema.Document.Name,
		schema.Document.Photo, schema.Document.CardNumber, schema.Document.ExpiredDate,
		schema.Document.CreatedAt, schema.Document.UpdatedAt,
		schema.Document.Table,
		schema.Document.DriverID,
		schema.Document.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, driverID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Document")
	}
	defer rows.Close()

	var documents []*Document
	for rows.Next() {
		d := &Document{}
		if err := rows.Scan(
			&d.ID, &d.DriverID, &d.Name, &d.Photo, &d.CardNumber,
			&d.ExpiredDate, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "Document")
		}
		documents = append(documents, d)
	}

	return documents, total, nil
}
