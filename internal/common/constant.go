// Package common contains shared constants and sentinel errors used across
// NoteVault client components.
package common

// Header names set on every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"
)

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// JSONContentType is the only body encoding the API speaks.
const JSONContentType = "application/json"
