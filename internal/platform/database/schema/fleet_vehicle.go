// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package schema

// VehicleTable represents the 'fleet.vehicle' table
type VehicleTable struct {
	Table        string
	ID           string
	DriverID     string
	Brand        string
	Model        string
	ModelYear    string
	LicensePlate string
	Color        string
	BookingType  string
	CreatedAt    string
	UpdatedAt    string
}

// Vehicle is the schema definition for fleet.vehicle
var Vehicle = VehicleTable{
	Table:        "fleet.vehicle",
	ID:           "id",
	DriverID:     "driverid",
	Brand:        "brand",
	Model:        "model",
	ModelYear:    "modelyear",
	LicensePlate: "licenseplate",
	Color:        "color",
	BookingType:  "bookingtype",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
