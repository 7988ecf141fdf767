package repository

import "errors"

// Store-level failure sentinels for the device repository.
var (
	ErrFailedToUpsertDevice = errors.New("failed to upsert device")
	ErrFailedToGetDevice    = errors.New("failed to get device")
	ErrFailedToListDevices  = errors.New("failed to list devices")
	ErrFailedToDeleteDevice = errors.New("failed to delete device")
)
