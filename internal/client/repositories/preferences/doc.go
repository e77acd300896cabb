// Package preferences persists the non-secret key/value settings of the
// client: user profile, lockout record, session flags, drafts and theme.
//
// The preferences table is created by the embedded migrations
// (internal/client/migrations):
//
//	CREATE TABLE preferences (key TEXT PRIMARY KEY, value BLOB NOT NULL);
//
// Values are opaque bytes; typed encoding (JSON profiles, "true" flags) is
// done by the services layer.
package preferences
