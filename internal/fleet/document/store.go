// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package document

import "context"

// Repository defines the data access contract for documents.
type Repository interface {

	// Create persists a new document; the generated id and timestamps are
	// written back into the entity.
	Create(context context.Context, document *Document) error

	// ListByDriver returns a page of the driver's documents plus the total count.
	ListByDriver(context context.Context, driverID int64, limit, offset int) ([]*Document, int, error)
}
