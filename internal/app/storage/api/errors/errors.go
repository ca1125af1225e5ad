package storage

import "errors"

var (
	ErrLoginExists   = errors.New("given login already exists in storage")
	ErrLoginNotFound = errors.New("given login doesn't exist in storage")
	ErrUserNotFound  = errors.New("user with given id doesn't exist in storage")

	ErrOrderNotFound = errors.New("order with given id doesn't exist in storage")

	// ErrOrderStateChanged is returned when a status update matched no row
	// because a concurrent transition won; the caller treats it as an invalid
	// transition, not a failure.
	ErrOrderStateChanged = errors.New("order status has been changed concurrently")
)
