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
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Forgot(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	RemoveUser(ctx context.Context) error
	Theme(ctx context.Context) error
	SetTheme(ctx context.Context) error
	ResetTheme(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the adminboard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available before login: login, signup, forgot, theme, settheme,
// resettheme. After login the roster commands (users, adduser, rmuser) and
// whoami/logout open up.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("admin> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, users, adduser, rmuser, theme, settheme, resettheme, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, forgot, theme, settheme, resettheme, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "whoami":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.WhoAmI(ctx)

		case "u", "users":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.Users(ctx)

		case "adduser":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.AddUser(ctx)

		case "rmuser":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.RemoveUser(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "settheme":
			_ = a.SetTheme(ctx)

		case "resettheme":
			_ = a.ResetTheme(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
