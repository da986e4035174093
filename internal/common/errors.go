// Package common defines shared constants and sentinel errors used across
// the store, the playtime tracker and the console. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// Storage errors.
	ErrorUnknownDriver = errors.New("unknown storage driver")
	ErrorUnknownTarget = errors.New("unknown backup target")
)
