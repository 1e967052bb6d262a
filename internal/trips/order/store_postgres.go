// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package order

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

func (repository *PostgresRepository) Create(context context.Context, order *Order) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s, %s`,
		schema.OrderDetail.Table,
		schema.OrderDetail.DriverID, schema.OrderDetail.OrderName, schema.OrderDetail.CashType,
		schema.OrderDetail.Amount, schema.OrderDetail.Kilometer, schema.OrderDetail.Pickup,
		schema.OrderDetail.Dropoff, schema.OrderDetail.Note, schema.OrderDetail.TripFare,
		schema.OrderDetail.Status, schema.OrderDetail.CreatedAt, schema.OrderDetail.UpdatedAt,
		schema.OrderDetail.ID, schema.OrderDetail.CreatedAt, schema.OrderDetail.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		order.DriverID,
		order.OrderName,
		order.CashType,
		order.Amount,
		order.Kilometer,
		order.Pickup,
		order.Dropoff,
		order.Note,
		order.TripFare,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)

	return dberr.Wrap(err, "Order")
}

func (repository *PostgresRepository) ListByDriver(context context.Context, driverID int64, openOnly bool, limit, offset int) ([]*Order, int, error) {
	filter := fmt.Sprintf("%s = $1 AND %s IS NULL", schema.OrderDetail.DriverID, schema.OrderDetail.DeletedAt)
	if openOnly {
		// An open trip has no status at all.
		filter += fmt.Sprintf(" AND %s IS NULL", schema.OrderDetail.Status)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, schema.OrderDetail.Table, filter)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, driverID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Order")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`,
		orderColumns(), schema.OrderDetail.Table, filter, schema.OrderDetail.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, driverID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Order")
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := scanOrder(rows, o); err != nil {
			return nil, 0, dberr.Wrap(err, "Order")
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, driverID, id int64) (*Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s IS NULL`,
		orderColumns(), schema.OrderDetail.Table,
		schema.OrderDetail.ID, schema.OrderDetail.DriverID, schema.OrderDetail.DeletedAt,
	)

	o := &Order{}
	if err := scanOrder(repository.pool.QueryRow(context, query, id, driverID), o); err != nil {
		return nil, dberr.Wrap(err, "Order")
	}

	return o, nil
}

func (repository *PostgresRepository) Complete(context context.Context, driverID, id int64) (*Order, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = NOW()
		WHERE %s = $1 AND %s = $2 AND %s IS NULL
		RETURNING %s`,
		schema.OrderDetail.Table,
		schema.OrderDetail.Status, schema.OrderDetail.UpdatedAt,
		schema.OrderDetail.ID, schema.OrderDetail.DriverID, schema.OrderDetail.DeletedAt,
		orderColumns(),
	)

	o := &Order{}
	if err := scanOrder(repository.pool.QueryRow(context, query, id, driverID, StatusCompleted), o); err != nil {
		// RETURNING on a no-match update yields zero rows, a clean 404.
		return nil, dberr.Wrap(err, "Order")
	}

	return o, nil
}

// orderColumns returns the canonical SELECT column list for order queries.
func orderColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.OrderDetail.ID, schema.OrderDetail.DriverID, schema.OrderDetail.OrderName,
		schema.OrderDetail.CashType, schema.OrderDetail.Amount, schema.OrderDetail.Kilometer,
		schema.OrderDetail.Pickup, schema.OrderDetail.Dropoff, schema.OrderDetail.Note,
		schema.OrderDetail.TripFare, schema.OrderDetail.Status,
		schema.OrderDetail.CreatedAt, schema.OrderDetail.UpdatedAt,
	)
}

// rowScanner is the minimal scanning contract shared by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder hydrates an Order from a row in canonical column order.
func scanOrder(row rowScanner, order *Order) error {
	return row.Scan(
		&order.ID,
		&order.DriverID,
		&order.OrderName,
		&order.CashType,
		&order.Amount,
		&order.Kilometer,
		&order.Pickup,
		&order.Dropoff,
		&order.Note,
		&order.TripFare,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
}
