// Package common defines shared constants and sentinel errors used across
// the NoteVault client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrNoRefreshToken = errors.New("no refresh token")

	// Response narrowing errors (the server answered 2xx with an unusable body).
	ErrUnexpectedResponse = errors.New("unexpected response")
)
