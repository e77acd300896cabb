package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	LoginBiometric(ctx context.Context) error
	Logout(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Forget(ctx context.Context) error
	Status(ctx context.Context) error
	EnableBiometrics(ctx context.Context) error
	DisableBiometrics(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	WaitUnlock(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the gophauth CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - register      create an account
//	  - login         sign in with email and password
//	  - bio           sign in with biometrics
//	  - reset         set a new password for the registered email
//	  - forget        remove the stored account from this device
//	  - wait          count down an active lock
//
//	Logged in:
//	  - bio-on        enable biometric sign-in
//	  - bio-off       disable biometric sign-in
//	  - logout        log out
//
//	Always:
//	  - help, status, theme [light|dark], exit | quit
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		prompt := "gophauth> "
		if s := statusFn(); s != "" {
			prompt = fmt.Sprintf("gophauth (%s)> ", s)
		}
		printlnFn(prompt)

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, bio-on, bio-off, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, bio, reset, forget, wait, status, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "bio":
			_ = a.LoginBiometric(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "forget":
			_ = a.Forget(ctx)

		case "status":
			_ = a.Status(ctx)

		case "bio-on":
			_ = a.EnableBiometrics(ctx)

		case "bio-off":
			_ = a.DisableBiometrics(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "wait":
			_ = a.WaitUnlock(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
