// Package auth provides token issuance/verification and password hashing
// for the authentication flow.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken indicates the token is malformed, carries an invalid
	// signature, or names the wrong issuer or audience.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token's expiry claim is in the past.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid indicates the token's not-before claim is in the
	// future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
