package storage

import "errors"

// Common client storage errors
var (
	// ErrCardNotFound indicates that card was not found
	ErrCardNotFound = errors.New("card not found")

	// ErrCardExists indicates that a card with the same ID is already stored
	ErrCardExists = errors.New("card already exists")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
