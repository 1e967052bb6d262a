// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package vehicle

import (
	"context"

	"github.com/ridelink/ridelink/pkg/pagination"
)

// Service implements vehicle registration use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new vehicle [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the data for a new vehicle registration.
type CreateInput struct {
	Brand        string
	Model        string
	ModelYear    string
	LicensePlate string
	Color        string
	BookingType  string
}

/*
Create registers a new vehicle for the driver.

Parameters:
  - context: context.Context
  - driverID: int64 (owner, from session claims)
  - input: CreateInput

Returns:
  - *Vehicle: Created entity
  - err: Persistence failures
*/
func (service *Service) Create(context context.Context, driverID int64, input CreateInput) (*Vehicle, error) {
	vehicle := &Vehicle{
		DriverID:     driverID,
		Brand:        input.Brand,
		Model:        input.Model,
		ModelYear:    input.ModelYear,
		LicensePlate: input.LicensePlate,
		Color:        input.Color,
		BookingType:  input.BookingType,
	}

	if err := service.repository.Create(context, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

/*
List returns a page of the driver's vehicles.

Parameters:
  - context: context.Context
  - driverID: int64
  - params: pagination.Params

Returns:
  - []*Vehicle: Page of entities
  - pagination.Meta: Page metadata
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, driverID int64, params pagination.Params) ([]*Vehicle, pagination.Meta, error) {
	vehicles, total, err := service.repository.ListByDriver(context, driverID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return vehicles, pagination.NewMeta(params.Page, params.Limit, total), nil
}
