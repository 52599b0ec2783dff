package model

// Scope carries the per-session context of a request. It replaces ambient
// "current file / current analysis" state: every use-case call names its session explicitly.
type Scope struct {
	SessionID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
