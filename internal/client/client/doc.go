// Package client contains the client-side transport for NoteVault.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) covering auth, categories,
//     notes and the AI text helpers.
//  2. A concrete REST implementation (see HTTPClient) that injects the access
//     token from the session store, refreshes it once on a 401 and retries the
//     original request exactly once.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     session database, wiring SQLite and the embedded goose migrations.
//
// # Error Handling
//
// Non-2xx answers surface as *RequestError carrying the server message.
// Transport failures surface as *NetworkError and match ErrUnavailable.
// A 401 that survives a refresh attempt surfaces as ErrSessionExpired after
// the session has been cleared. 2xx bodies that do not have the expected
// shape wrap common.ErrUnexpectedResponse.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use; token refreshes are serialized.
// All operations accept context.Context and honor cancellation/timeouts.
package client
