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
	isAuthenticated() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ListTables(ctx context.Context) error
	CreateTable(ctx context.Context) error
	OpenTable(ctx context.Context, arg string) error
	Logout(ctx context.Context) error
}

// runREPL starts the read–eval–print loop for the dashboard.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while not logged in: help, login, signup, exit.
// Commands while logged in: help, list, create, open <n>, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. The REPL loop stays resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sheetdash %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				printlnFn("Available commands: (l)ist, create, open <n>, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "l", "list":
			_ = a.ListTables(ctx)

		case "create":
			_ = a.CreateTable(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <number|id>")
				continue
			}
			_ = a.OpenTable(ctx, args[0])

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
