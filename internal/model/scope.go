package model

// Scope carries the authenticated caller identity through use cases.
// It is built by the auth middleware from the access token subject and passed
// explicitly; use cases never read ambient state.
type Scope struct {
	UserID string
}

// Environment names used in config and server mode switching.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
