// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth

// # Authentication Constraints

const (
	// PasswordMinLen is the minimum password length accepted at signup.
	PasswordMinLen = 6

	// LoginFailedMessage is the single 401 message for every failed login.
	// Unknown mobile and wrong password must be indistinguishable to the
	// client to prevent account enumeration.
	LoginFailedMessage = "Invalid mobile number or password."
)
