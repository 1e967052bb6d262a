// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package order

import "context"

// Repository defines the data access contract for trip orders.
//
// Every method is scoped by the owning driver id so a session can never
// read or mutate another driver's orders.
type Repository interface {

	// Create persists a new order; the generated id and timestamps are
	// written back into the entity.
	Create(context context.Context, order *Order) error

	// ListByDriver returns a page of the driver's non-deleted orders plus
	// the total count. When openOnly is set, only orders without a status
	// (still running trips) are returned.
	ListByDriver(context context.Context, driverID int64, openOnly bool, limit, offset int) ([]*Order, int, error)

	// FindByID returns the driver's non-deleted order with the given id.
	FindByID(context context.Context, driverID, id int64) (*Order, error)

	// Complete sets the order's status to [StatusCompleted]. Returns
	// apperr.NotFound when no live owned row matched.
	Complete(context context.Context, driverID, id int64) (*Order, error)
}
