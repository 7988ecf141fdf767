package model

import "time"

// Device is a registered push target: one Expo push token per installed app
// instance. A user may have several devices.
type Device struct {
	ID            string
	UserID        string
	ExpoPushToken string
	Platform      string // ios | android
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
