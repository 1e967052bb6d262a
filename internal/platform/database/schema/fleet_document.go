// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package schema

// DocumentTable represents the 'fleet.document' table
type DocumentTable struct {
	Table       string
	ID          string
	DriverID    string
	Name        string
	Photo       string
	CardNumber  string
	ExpiredDate string
	CreatedAt   string
	UpdatedAt   string
}

// Document is the schema definition for fleet.document
var Document = DocumentTable{
	Table:       "fleet.document",
	ID:          "id",
	DriverID:    "driverid",
	Name:        "name",
	Photo:       "photo",
	CardNumber:  "cardnumber",
	ExpiredDate: "expireddate",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
