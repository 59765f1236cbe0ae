// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in the store package.
//
// The implementations use database/sql with the pgx driver. Postgres error
// codes are translated into the store package's sentinel errors at this
// boundary, so callers never see driver-specific error types.
package postgres
