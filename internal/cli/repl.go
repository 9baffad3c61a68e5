package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the minimal command surface the REPL dispatches to. App
// satisfies it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Rate(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	Passwd(ctx context.Context) error
}

// runREPL reads a line, takes the first token as the command and dispatches
// to a. All prompts and messages go to out, the same writer the command
// handlers use. The loop ends on EOF or "exit"/"quit". Handler errors are
// reported and the loop continues; nothing a command does may take the REPL
// down.
//
// Commands while logged out: help, login, exit.
// Logged in: list, show <n>, add, rate <n> <0-10>, status <n> <status>,
// remove <n>, logout. Admins additionally get: users, adduser, passwd.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "agcli %s> ", statusFn())
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
			printHelp(a, out)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "l", "list":
			err = requireLogin(a, out, func() error { return a.List(ctx) })

		case "show":
			err = requireLogin(a, out, func() error { return a.Show(ctx, args) })

		case "add":
			err = requireLogin(a, out, func() error { return a.Add(ctx) })

		case "rate":
			err = requireLogin(a, out, func() error { return a.Rate(ctx, args) })

		case "status":
			err = requireLogin(a, out, func() error { return a.SetStatus(ctx, args) })

		case "remove", "rm":
			err = requireLogin(a, out, func() error { return a.Remove(ctx, args) })

		case "users":
			err = requireAdmin(a, out, func() error { return a.Users(ctx) })

		case "adduser":
			err = requireAdmin(a, out, func() error { return a.AddUser(ctx) })

		case "passwd":
			err = requireAdmin(a, out, func() error { return a.Passwd(ctx) })

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}

func printHelp(a execIface, out io.Writer) {
	switch {
	case !a.isLoggedIn():
		fmt.Fprintln(out, "Available commands: login, exit")
	case a.isAdmin():
		fmt.Fprintln(out, "Available commands: (l)ist, show <n>, add, rate <n> <0-10>, status <n> <status>, remove <n>, users, adduser, passwd, logout, exit")
	default:
		fmt.Fprintln(out, "Available commands: (l)ist, show <n>, add, rate <n> <0-10>, status <n> <status>, remove <n>, logout, exit")
	}
}

func requireLogin(a execIface, out io.Writer, fn func() error) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(out, "Please login first.")
		return nil
	}
	return fn()
}

func requireAdmin(a execIface, out io.Writer, fn func() error) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(out, "Please login first.")
		return nil
	}
	if !a.isAdmin() {
		fmt.Fprintln(out, "This command requires the admin role.")
		return nil
	}
	return fn()
}
