package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Open(ctx context.Context, path string) error
	User(ctx context.Context, arg string) error
	Set(ctx context.Context, key, value string) error
	SetLocal(ctx context.Context, field, value string) error
	Nickname(ctx context.Context, value string) error
	Email(ctx context.Context, value string) error
	Password(ctx context.Context) error
	ResetOpenID(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. The loop exits on scanner EOF or when the
// user types "exit" or "quit". Command errors are reported and the loop
// continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, statusFn func() string) {
	printlnFn("Welcome to the memo CLI (type 'help' for commands)")

	for {
		fmt.Printf("memo %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, open <path>, user <id>, set <key> <json>, setlocal <field> <value>, nickname <v>, email <v>, password, resetopenid, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, whoami, open <path>, user <id>, exit")
			}
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <path>")
				continue
			}
			err = a.Open(ctx, args[0])
		case "user":
			if len(args) != 1 {
				printlnFn("Usage: user <id>")
				continue
			}
			err = a.User(ctx, args[0])
		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <key> <json-value>")
				continue
			}
			err = a.Set(ctx, args[0], strings.Join(args[1:], " "))
		case "setlocal":
			if len(args) != 2 {
				printlnFn("Usage: setlocal <field> <value>")
				continue
			}
			err = a.SetLocal(ctx, args[0], args[1])
		case "nickname":
			if len(args) != 1 {
				printlnFn("Usage: nickname <value>")
				continue
			}
			err = a.Nickname(ctx, args[0])
		case "email":
			if len(args) != 1 {
				printlnFn("Usage: email <value>")
				continue
			}
			err = a.Email(ctx, args[0])
		case "password":
			err = a.Password(ctx)
		case "resetopenid":
			err = a.ResetOpenID(ctx)
		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}
