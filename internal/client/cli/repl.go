package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Entry(ctx context.Context, args []string) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SaveProfile(ctx context.Context) error
	Notifications(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context) error
	Token(ctx context.Context, args []string) error
}

// runREPL reads a line at a time, parses the first token as the command,
// and dispatches to a. Unknown commands are reported back. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Commands while signed out: register, login, entry, exit.
// Commands while signed in: entry, profile, edit, save, notifications
// on|off, token <hex>, delete-account, logout, exit.
//
// Errors from handlers are shown and swallowed here; the loop itself never
// dies on a failed command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("daybook %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: entry, profile, edit, save, notifications on|off, token <hex>, delete-account, logout, exit")
			} else {
				printlnFn("Available commands: register, login, entry, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "entry":
			err = a.Entry(ctx, args)

		case "profile":
			err = a.ShowProfile(ctx)

		case "edit":
			err = a.EditProfile(ctx)

		case "save":
			err = a.SaveProfile(ctx)

		case "notifications":
			err = a.Notifications(ctx, args)

		case "delete-account":
			err = a.DeleteAccount(ctx)

		case "token":
			err = a.Token(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}

		if err != nil {
			printlnFn("Error: " + err.Error())
		}
	}
}
