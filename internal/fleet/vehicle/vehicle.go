// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package vehicle implements driver vehicle registration.

Every vehicle belongs to exactly one driver account; the driver id is always
taken from the session claims. The surface is gated to the driver role.
*/
package vehicle

import "time"

// Vehicle represents a registered car belonging to a driver.
type Vehicle struct {
	ID           int64     `json:"id"`
	DriverID     int64     `json:"driver_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	ModelYear    string    `json:"modelyear"`
	LicensePlate string    `json:"licenseplate"`
	Color        string    `json:"color,omitempty"`
	BookingType  string    `json:"bookingtype"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldBrand        = "brand"
	FieldModel        = "model"
	FieldModelYear    = "modelyear"
	FieldLicensePlate = "licenseplate"
	FieldColor        = "color"
	FieldBookingType  = "bookingtype"
)
