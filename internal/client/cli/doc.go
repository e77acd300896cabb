// Package cli provides the interactive gophauth terminal client.
//
// App drives a services.Session from a line-oriented REPL: registration,
// password and biometric sign-in, logout, local password reset and a few
// preferences. All user-facing text (attempts remaining, lock countdown)
// is produced here; the session core only reports state.
//
// The REPL is started via App.Run(ctx), which restores the session and
// blocks until the user exits. See runREPL for the command list.
package cli
