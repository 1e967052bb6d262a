// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package order implements trip order records for driver accounts.

An order is a free-form trip record written by the driver's app: route,
fare, distance, payment type. Orders start open (no status) and are closed
by the complete operation. The surface is gated to the driver role.
*/
package order

import "time"

// StatusCompleted is the status value of a finished trip. An open trip has
// no status at all (NULL in storage).
const StatusCompleted = 1

// Order represents a single trip record belonging to a driver.
//
// The descriptive fields are free-form text: the upstream mobile apps send
// them pre-formatted and the backend never computes on them.
type Order struct {
	ID        int64      `json:"id"`
	DriverID  int64      `json:"driver_id"`
	OrderName string     `json:"ordername,omitempty"`
	CashType  string     `json:"cashtype,omitempty"`
	Amount    string     `json:"amount,omitempty"`
	Kilometer string     `json:"kilometer,omitempty"`
	Pickup    string     `json:"pickup,omitempty"`
	Dropoff   string     `json:"dropoff,omitempty"`
	Note      string     `json:"note,omitempty"`
	TripFare  string     `json:"tripfare,omitempty"`
	Status    *int       `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// IsOpen reports whether the trip has not been completed yet.
func (order *Order) IsOpen() bool {
	return order.Status == nil
}
