// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

// Package validate provides a chainable Validator that short-circuits on the
// first violated rule and returns it as a single [apperr.AppError].
//
// # Contract
//
// Request validation reports only the FIRST violated rule — later rules in
// the chain become no-ops once one has failed, and validation always runs
// before any side effect. Clients therefore see one field-specific message
// per response, in the order the handler declared its rules.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ridelink/ridelink/internal/platform/apperr"
)

var (
	// mobileRegex matches the 10-digit mobile numbers used as login keys.
	mobileRegex = regexp.MustCompile(`^\d{10}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload.")
)

// Validator runs field rules via a fluent, chainable API and keeps only the
// first failure.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	failed apperr.FieldError
	done   bool
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "This field is required.")
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.fail(field, fmt.Sprintf("Must be at least %d characters.", min))
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.fail(field, fmt.Sprintf("Must be at most %d characters.", max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.fail(field, "Invalid email format.")
	}
	return v
}

// Mobile fails unless the value is exactly 10 digits.
func (v *Validator) Mobile(field, value string) *Validator {
	if !mobileRegex.MatchString(value) {
		v.fail(field, "Mobile number must be 10 digits.")
	}
	return v
}

// Date fails if the value is not a calendar date in YYYY-MM-DD form.
func (v *Validator) Date(field, value string) *Validator {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		v.fail(field, "Must be a date in YYYY-MM-DD format.")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.fail(field, fmt.Sprintf("Must be one of: %s.", strings.Join(allowed, ", ")))
	return v
}

// Custom fails with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("amount", amount < 0, "Must not be negative.")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.fail(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) describing the first
// violated rule, or nil if every rule passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if !v.done {
		return nil
	}
	return apperr.ValidationError(v.failed.Message, v.failed)
}

// HasErrors reports whether a rule has failed so far.
func (v *Validator) HasErrors() bool {
	return v.done
}

// fail records the first violated rule; later failures are ignored.
func (v *Validator) fail(field, message string) {
	if v.done {
		return
	}
	v.failed = apperr.FieldError{Field: field, Message: message}
	v.done = true
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError(message, apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
