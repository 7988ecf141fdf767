package repository

import (
	"context"

	"todo-backend/internal/model"
)

// Repository defines all data access methods for the Device entity.
//
// GetOneDevice returns a zero-value Device (ID == "") when nothing matches.
type Repository interface {
	// UpsertDevice inserts a device or, when the (user, token) pair already
	// exists, refreshes its platform and updated_at.
	UpsertDevice(ctx context.Context, opt UpsertDeviceOptions) (model.Device, error)
	GetOneDevice(ctx context.Context, opt GetOneDeviceOptions) (model.Device, error)
	ListDevices(ctx context.Context, opt ListDevicesOptions) ([]model.Device, error)
	DeleteDevice(ctx context.Context, opt DeleteDeviceOptions) error
}
