// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package order

import (
	"context"

	"github.com/ridelink/ridelink/pkg/pagination"
)

// Service implements trip order use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new order [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the trip record fields sent by the driver app.
// Every field is optional free-form text, mirroring what the app captures.
type CreateInput struct {
	OrderName string
	CashType  string
	Amount    string
	Kilometer string
	Pickup    string
	Dropoff   string
	Note      string
	TripFare  string
}

/*
Create records a new trip order for the driver. The order starts open.

Parameters:
  - context: context.Context
  - driverID: int64 (owner, from session claims)
  - input: CreateInput

Returns:
  - *Order: Created entity
  - err: Persistence failures
*/
func (service *Service) Create(context context.Context, driverID int64, input CreateInput) (*Order, error) {
	order := &Order{
		DriverID:  driverID,
		OrderName: input.OrderName,
		CashType:  input.CashType,
		Amount:    input.Amount,
		Kilometer: input.Kilometer,
		Pickup:    input.Pickup,
		Dropoff:   input.Dropoff,
		Note:      input.Note,
		TripFare:  input.TripFare,
	}

	if err := service.repository.Create(context, order); err != nil {
		return nil, err
	}

	return order, nil
}

/*
List returns a page of the driver's orders, optionally restricted to open trips.

Parameters:
  - context: context.Context
  - driverID: int64
  - openOnly: bool
  - params: pagination.Params

Returns:
  - []*Order: Page of entities
  - pagination.Meta: Page metadata
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, driverID int64, openOnly bool, params pagination.Params) ([]*Order, pagination.Meta, error) {
	orders, total, err := service.repository.ListByDriver(context, driverID, openOnly, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return orders, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
Get returns a single owned order by id.

Parameters:
  - context: context.Context
  - driverID: int64
  - id: int64

Returns:
  - *Order: Hydrated entity
  - err: NotFound (foreign or missing id) or retrieval failures
*/
func (service *Service) Get(context context.Context, driverID, id int64) (*Order, error) {
	return service.repository.FindByID(context, driverID, id)
}

/*
Complete marks an owned order as finished.

Description: Sets the status to [StatusCompleted] in a single guarded
update. When nothing matched (unknown id, foreign owner, or deleted row)
the result is a 404, never a silent no-op.

Parameters:
  - context: context.Context
  - driverID: int64
  - id: int64

Returns:
  - *Order: Updated entity
  - err: NotFound or persistence failures
*/
func (service *Service) Complete(context context.Context, driverID, id int64) (*Order, error) {
	return service.repository.Complete(context, driverID, id)
}
