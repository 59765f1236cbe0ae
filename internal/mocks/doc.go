// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and auth interfaces
// used throughout the application, so tests across packages share one set of
// doubles instead of redefining them inline.
//
// Each mock follows the same pattern: optional function fields override
// individual methods, and a map-backed default implementation covers the
// common case of an in-memory store that honors the interface's sentinel
// errors.
package mocks
