// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/trips/order"
	"github.com/ridelink/ridelink/pkg/pagination"
)

// fakeRepository is an in-memory Repository with owner-scoped lookups,
// mirroring the storage contract.
type fakeRepository struct {
	nextID int64
	orders []*order.Order
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (repository *fakeRepository) Create(_ context.Context, entity *order.Order) error {
	entity.ID = repository.nextID
	repository.nextID++
	entity.CreatedAt = time.Now()
	entity.UpdatedAt = entity.CreatedAt

	stored := *entity
	repository.orders = append(repository.orders, &stored)
	return nil
}

func (repository *fakeRepository) ListByDriver(
	_ context.Context, driverID int64, openOnly bool, limit, offset int,
) ([]*order.Order, int, error) {
	var matched []*order.Order
	for _, entity := range repository.orders {
		if entity.DriverID != driverID {
			continue
		}
		if openOnly && !entity.IsOpen() {
			continue
		}
		matched = append(matched, entity)
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, driverID, id int64) (*order.Order, error) {
	for _, entity := range repository.orders {
		if entity.ID == id && entity.DriverID == driverID {
			found := *entity
			return &found, nil
		}
	}
	return nil, apperr.NotFound("Order")
}

func (repository *fakeRepository) Complete(_ context.Context, driverID, id int64) (*order.Order, error) {
	for _, entity := range repository.orders {
		if entity.ID == id && entity.DriverID == driverID {
			status := order.StatusCompleted
			entity.Status = &status
			entity.UpdatedAt = time.Now()

			updated := *entity
			return &updated, nil
		}
	}
	return nil, apperr.NotFound("Order")
}

func createFixture(t *testing.T, service *order.Service, driverID int64, name string) *order.Order {
	t.Helper()

	created, err := service.Create(context.Background(), driverID, order.CreateInput{
		OrderName: name,
		CashType:  "cash",
		Amount:    "250",
		Kilometer: "12.4",
		Pickup:    "Airport",
		Dropoff:   "Main Square",
		TripFare:  "250",
	})
	require.NoError(t, err)
	return created
}

/*
TestService_Create verifies a new trip order belongs to the driver and starts
open (no status yet).
*/
func TestService_Create(t *testing.T) {
	service := order.NewService(newFakeRepository())

	created := createFixture(t, service, 7, "morning-run")

	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(7), created.DriverID)
	assert.Nil(t, created.Status)
	assert.True(t, created.IsOpen())
}

/*
TestService_List_ScopedToDriver verifies a driver only ever sees their own
orders.
*/
func TestService_List_ScopedToDriver(t *testing.T) {
	service := order.NewService(newFakeRepository())

	createFixture(t, service, 7, "mine-1")
	createFixture(t, service, 7, "mine-2")
	createFixture(t, service, 8, "other-driver")

	orders, meta, err := service.List(context.Background(), 7, false, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Len(t, orders, 2)
	assert.Equal(t, 2, meta.Total)
	for _, entity := range orders {
		assert.Equal(t, int64(7), entity.DriverID)
	}
}

/*
TestService_List_OpenOnly verifies the open filter hides completed trips.
*/
func TestService_List_OpenOnly(t *testing.T) {
	service := order.NewService(newFakeRepository())

	first := createFixture(t, service, 7, "to-complete")
	createFixture(t, service, 7, "still-open")

	_, err := service.Complete(context.Background(), 7, first.ID)
	require.NoError(t, err)

	open, meta, err := service.List(context.Background(), 7, true, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, "still-open", open[0].OrderName)

	all, _, err := service.List(context.Background(), 7, false, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

/*
TestService_Get_ForeignOrderHidden verifies another driver's order id reads
as missing, not as forbidden, so ids cannot be probed.
*/
func TestService_Get_ForeignOrderHidden(t *testing.T) {
	service := order.NewService(newFakeRepository())

	created := createFixture(t, service, 7, "mine")

	found, err := service.Get(context.Background(), 7, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = service.Get(context.Background(), 8, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Complete verifies completion sets the finished status exactly once
and a foreign or unknown id surfaces as 404.
*/
func TestService_Complete(t *testing.T) {
	service := order.NewService(newFakeRepository())

	created := createFixture(t, service, 7, "ride")

	completed, err := service.Complete(context.Background(), 7, created.ID)
	require.NoError(t, err)
	require.NotNil(t, completed.Status)
	assert.Equal(t, order.StatusCompleted, *completed.Status)
	assert.False(t, completed.IsOpen())

	// Foreign driver cannot complete it.
	_, err = service.Complete(context.Background(), 8, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// Unknown id.
	_, err = service.Complete(context.Background(), 7, 9999)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
