// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package vehicle

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

func (repository *PostgresRepository) Create(context context.Context, vehicle *Vehicle) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s`,
		schema.Vehicle.Table,
		schema.Vehicle.DriverID, schema.Vehicle.Brand, schema.Vehicle.Model,
		schema.Vehicle.ModelYear, schema.Vehicle.LicensePlate, schema.Vehicle.Color,
		schema.Vehicle.BookingType, schema.Vehicle.CreatedAt, schema.Vehicle.UpdatedAt,
		schema.Vehicle.ID, schema.Vehicle.CreatedAt, schema.Vehicle.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		vehicle.DriverID,
		vehicle.Brand,
		vehicle.Model,
		vehicle.ModelYear,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.BookingType,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)

	return dberr.Wrap(err, "Vehicle")
}

func (repository *PostgresRepository) ListByDriver(context context.Context, driverID int64, limit, offset int) ([]*Vehicle, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.Vehicle.Table, schema.Vehicle.DriverID,
	)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, driverID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Vehicle")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`,
		schema.Vehicle.ID, schema.Vehicle.DriverID, schema.Vehicle.Brand,
		schema.Vehicle.Model, schema.Vehicle.ModelYear, schema.Vehicle.LicensePlate,
		schema.Vehicle.Color, schema.Vehicle.BookingType,
		schema.Vehicle.CreatedAt, schema.Vehicle.UpdatedAt,
		schema.Vehicle.Table,
		schema.Vehicle.DriverID,
		schema.Vehicle.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, driverID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Vehicle")
	}
	defer rows.Close()

	var vehicles []*Vehicle
	for rows.Next() {
		v := &Vehicle{}
		if err := rows.Scan(
			&v.ID, &v.DriverID, &v.Brand, &v.Model, &v.ModelYear,
			&v.LicensePlate, &v.Color, &v.BookingType, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "Vehicle")
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, total, nil
}
