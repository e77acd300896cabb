// Package client bootstraps local persistence for the gophauth client.
//
// # Overview
//
// InitDatabase opens the SQLite file that backs both the credential vault and
// the preference store, and RunMigrations applies the embedded goose
// migrations (see package migrations). Everything else in the client talks to
// the returned *sql.DB through the repositories packages.
//
// # Error Handling
//
// A database that cannot be opened or pinged is reported as
// ErrLocalDataNotAvailable, matchable with errors.Is.
package client
