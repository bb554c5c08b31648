// Package common defines shared sentinel errors used across the bucketlist
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (

	// lookup errors
	ErrorNotFound = errors.New("not found")

	// auth-specific errors
	ErrorDuplicateEmail     = errors.New("email already registered")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// input errors
	ErrorValidation = errors.New("validation error")
)
