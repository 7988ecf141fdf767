package usecase

import (
	"context"

	"todo-backend/internal/device"
	repo "todo-backend/internal/device/repository"
	"todo-backend/internal/model"
)

// Register stores the caller's push token. Idempotent per (user, token).
func (uc *implUseCase) Register(ctx context.Context, sc model.Scope, input device.RegisterDeviceInput) (device.RegisterDeviceOutput, error) {
	if input.ExpoPushToken == "" {
		return device.RegisterDeviceOutput{}, device.ErrTokenRequired
	}
	switch input.Platform {
	case "ios", "android":
	default:
		return device.RegisterDeviceOutput{}, device.ErrInvalidPlatform
	}

	item, err := uc.repo.UpsertDevice(ctx, repo.UpsertDeviceOptions{
		UserID:        sc.UserID,
		ExpoPushToken: input.ExpoPushToken,
		Platform:      input.Platform,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register UpsertDevice: %v", err)
		return device.RegisterDeviceOutput{}, err
	}
	return device.RegisterDeviceOutput{Device: item}, nil
}

// List returns the caller's registered devices.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (device.ListDevicesOutput, error) {
	items, err := uc.repo.ListDevices(ctx, repo.ListDevicesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDevices: %v", err)
		return device.ListDevicesOutput{}, err
	}
	return device.ListDevicesOutput{Devices: items}, nil
}

// Unregister removes a device by id. Returns ErrDeviceNotFound when not found.
func (uc *implUseCase) Unregister(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneDevice(ctx, repo.GetOneDeviceOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Unregister GetOneDevice: %v", err)
		return err
	}
	if existing.ID == "" {
		return device.ErrDeviceNotFound
	}
	if err := uc.repo.DeleteDevice(ctx, repo.DeleteDeviceOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Unregister DeleteDevice: %v", err)
		return err
	}
	return nil
}
