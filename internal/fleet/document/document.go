// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package document implements driver identity document registration.

Drivers upload licence/ID card metadata (the photo field carries a storage
path, not the binary). The surface is gated to the driver role.
*/
package document

import "time"

// Document represents a driver's registered identity document.
type Document struct {
	ID          int64      `json:"id"`
	DriverID    int64      `json:"driver_id"`
	Name        string     `json:"name,omitempty"`
	Photo       string     `json:"photo,omitempty"`
	CardNumber  string     `json:"cardnumber"`
	ExpiredDate *time.Time `json:"expireddate,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldPhoto       = "photo"
	FieldCardNumber  = "cardnumber"
	FieldExpiredDate = "expireddate"
)
