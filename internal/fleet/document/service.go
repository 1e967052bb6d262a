// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package document

import (
	"context"
	"time"

	"github.com/ridelink/ridelink/pkg/pagination"
)

// Service implements document registration use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new document [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the data for a new document registration.
type CreateInput struct {
	Name        string
	Photo       string
	CardNumber  string
	ExpiredDate *time.Time
}

/*
Create registers a new identity document for the driver.

Parameters:
  - context: context.Context
  - driverID: int64 (owner, from session claims)
  - input: CreateInput

Returns:
  - *Document: Created entity
  - err: Persistence failures
*/
func (service *Service) Create(context context.Context, driverID int64, input CreateInput) (*Document, error) {
	document := &Document{
		DriverID:    driverID,
		Name:        input.Name,
		Photo:       input.Photo,
		CardNumber:  input.CardNumber,
		ExpiredDate: input.ExpiredDate,
	}

	if err := service.repository.Create(context, document); err != nil {
		return nil, err
	}

	return document, nil
}

/*
List returns a page of the driver's documents.

Parameters:
  - context: context.Context
  - driverID: int64
  - params: pagination.Params

Returns:
  - []*Document: Page of entities
  - pagination.Meta: Page metadata
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, driverID int64, params pagination.Params) ([]*Document, pagination.Meta, error) {
	documents, total, err := service.repository.ListByDriver(context, driverID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return documents, pagination.NewMeta(params.Page, params.Limit, total), nil
}
