// Package service provides the application's business logic: input
// validation, ownership-based authorization, dynamic task queries, and
// credential-based authentication. Every operation returns a Result, so no
// expected failure crosses the service boundary as a raw error.
package service
