package device

import "todo-backend/internal/model"

// --- UseCase Inputs ---

type RegisterDeviceInput struct {
	ExpoPushToken string
	Platform      string
}

// --- UseCase Outputs ---

type RegisterDeviceOutput struct {
	Device model.Device
}

type ListDevicesOutput struct {
	Devices []model.Device
}
