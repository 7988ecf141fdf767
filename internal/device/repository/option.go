package repository

// UpsertDeviceOptions holds parameters for registering a device token.
type UpsertDeviceOptions struct {
	UserID        string
	ExpoPushToken string
	Platform      string
}

// GetOneDeviceOptions holds filter parameters for fetching a single Device.
type GetOneDeviceOptions struct {
	ID     string
	UserID string
}

// ListDevicesOptions holds filter parameters for listing Devices.
type ListDevicesOptions struct {
	UserID string
}

// DeleteDeviceOptions identifies the Device to remove.
type DeleteDeviceOptions struct {
	ID     string
	UserID string
}
