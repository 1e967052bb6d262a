// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package schema

// OrderDetailTable represents the 'trips.orderdetail' table
type OrderDetailTable struct {
	Table     string
	ID        string
	DriverID  string
	OrderName string
	CashType  string
	Amount    string
	Kilometer string
	Pickup    string
	Dropoff   string
	Note      string
	TripFare  string
	Status    string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// OrderDetail is the schema definition for trips.orderdetail
var OrderDetail = OrderDetailTable{
	Table:     "trips.orderdetail",
	ID:        "id",
	DriverID:  "driverid",
	OrderName: "ordername",
	CashType:  "cashtype",
	Amount:    "amount",
	Kilometer: "kilometer",
	Pickup:    "pickup",
	Dropoff:   "dropoff",
	Note:      "note",
	TripFare:  "tripfare",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}
