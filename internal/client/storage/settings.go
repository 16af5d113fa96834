package storage

import "context"

//go:generate moq -out settingsstorage_mock.go . SettingsStorage

// SettingsStorage defines interface for storing client display settings
type SettingsStorage interface {
	// SaveMultiDisplay saves whether several cards may be revealed at once
	SaveMultiDisplay(ctx context.Context, enabled bool) error

	// GetMultiDisplay retrieves the multi-display setting
	// Returns false if the setting has never been saved
	GetMultiDisplay(ctx context.Context) (bool, error)
}

// Store combines card and settings storage, implemented by every backend
type Store interface {
	CardStorage
	SettingsStorage
	Close() error
}
