// Package store provides abstractions and implementations for data persistence.
// It defines the contracts the service layer depends on; concrete backends
// live under internal/platform.
package store
