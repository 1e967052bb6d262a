// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package vehicle

import "context"

// Repository defines the data access contract for vehicles.
type Repository interface {

	// Create persists a new vehicle; the generated id and timestamps are
	// written back into the entity.
	Create(context context.Context, vehicle *Vehicle) error

	// ListByDriver returns a page of the driver's vehicles plus the total count.
	ListByDriver(context context.Context, driverID int64, limit, offset int) ([]*Vehicle, int, error)
}
