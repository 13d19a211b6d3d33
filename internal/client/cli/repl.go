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
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	SetName(ctx context.Context) error
	SwitchRole(ctx context.Context) error
	Professionals(ctx context.Context, search string) error
	Demands(ctx context.Context) error
	NewDemand(ctx context.Context) error
	Avatar(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Vagali CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on reader EOF or when the user types
// "exit" or "quit".
//
// Command prompts read from the same reader, so it must be shared rather
// than wrapped again.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vagali> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, name, role, pros, demands, newdemand, avatar, logout, exit")
			} else {
				printlnFn("Available commands: register, login, pros, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "name":
			_ = a.SetName(ctx)

		case "role":
			_ = a.SwitchRole(ctx)

		case "pros":
			_ = a.Professionals(ctx, strings.Join(args, " "))

		case "demands":
			_ = a.Demands(ctx)

		case "newdemand":
			_ = a.NewDemand(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
