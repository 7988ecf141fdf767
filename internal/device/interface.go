package device

import (
	"context"

	"todo-backend/internal/model"
)

// UseCase defines the business logic interface for the device registry.
// Devices carry the Expo push tokens the notifier fans out to.
type UseCase interface {
	// Register stores a device token for the caller. Registering the same
	// token again refreshes the record instead of duplicating it.
	Register(ctx context.Context, sc model.Scope, input RegisterDeviceInput) (RegisterDeviceOutput, error)

	// List returns the caller's registered devices.
	List(ctx context.Context, sc model.Scope) (ListDevicesOutput, error)

	// Unregister removes a device by id.
	Unregister(ctx context.Context, sc model.Scope, id string) error
}
