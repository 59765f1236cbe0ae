// Package api provides the HTTP transport for the task management service.
//
// Handlers decode requests into service inputs, delegate every decision to
// the service layer and translate the typed service errors into HTTP status
// codes. No business rule lives here.
package api
