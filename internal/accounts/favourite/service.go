// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package favourite

import (
	"context"

	"github.com/ridelink/ridelink/pkg/pagination"
	"github.com/ridelink/ridelink/pkg/pointer"
)

// Service implements the favourite use cases for the authenticated account.
type Service struct {
	repository Repository
}

// NewService constructs a new favourite [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the data for a new favourite.
type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput holds the optional fields of a partial favourite update.
type UpdateInput struct {
	Title       *string
	Description *string
}

/*
Create persists a new favourite owned by the caller.

Parameters:
  - context: context.Context
  - accountID: int64 (owner, from session claims)
  - input: CreateInput

Returns:
  - *Favourite: Created entity
  - err: Persistence failures
*/
func (service *Service) Create(context context.Context, accountID int64, input CreateInput) (*Favourite, error) {
	favourite := &Favourite{
		AccountID:   accountID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := service.repository.Create(context, favourite); err != nil {
		return nil, err
	}

	return favourite, nil
}

/*
List returns a page of the caller's favourites.

Parameters:
  - context: context.Context
  - accountID: int64
  - params: pagination.Params

Returns:
  - []*Favourite: Page of entities
  - pagination.Meta: Page metadata
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, accountID int64, params pagination.Params) ([]*Favourite, pagination.Meta, error) {
	favourites, total, err := service.repository.ListByAccount(context, accountID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return favourites, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
Update applies a partial update to one of the caller's favourites.

Parameters:
  - context: context.Context
  - accountID: int64
  - id: int64
  - input: UpdateInput

Returns:
  - *Favourite: Updated entity
  - err: NotFound (foreign or missing id) or persistence failures
*/
func (service *Service) Update(context context.Context, accountID, id int64, input UpdateInput) (*Favourite, error) {
	favourite, err := service.repository.FindByID(context, accountID, id)
	if err != nil {
		return nil, err
	}

	favourite.Title = pointer.Fallback(input.Title, favourite.Title)
	favourite.Description = pointer.Fallback(input.Description, favourite.Description)

	if err := service.repository.Update(context, favourite); err != nil {
		return nil, err
	}

	return favourite, nil
}

/*
Delete soft-deletes one of the caller's favourites.

Parameters:
  - context: context.Context
  - accountID: int64
  - id: int64

Returns:
  - err: NotFound (foreign or missing id) or persistence failures
*/
func (service *Service) Delete(context context.Context, accountID, id int64) error {
	return service.repository.SoftDelete(context, accountID, id)
}
