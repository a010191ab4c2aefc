// Package cli provides the interactive NoteVault terminal client.
//
// It wires configuration, the session store, the REST client and the
// dashboard and editor state into a line-oriented REPL. Typical flow: restore
// the stored session or prompt for credentials, print the dashboard, then
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Dashboard: category filter and paging, search, pin, copy, download
//   - Category create / rename / delete (with its notes)
//   - Note editor: fields, fonts, grammar and summary with undo, dictation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command table.
package cli
