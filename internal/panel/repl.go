package panel

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	View(ctx context.Context, name string) error
	Show(ctx context.Context) error
	Config(ctx context.Context) error
	Analyze(ctx context.Context) error
	Passwd(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back.
// The loop exits on scanner EOF or on "exit"/"quit".
//
// Handlers print their own failures; errors returned here are ignored
// so a single bad command never kills the console.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hotspot> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: view <name>, show, config, analyze, status, whoami, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "status":
			_ = a.Status(ctx)

		case "view":
			if !a.isLoggedIn() {
				printlnFn("Log in first.")
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: view <dashboard|monitoring|stats|analyzer>")
				continue
			}
			_ = a.View(ctx, args[0])

		case "show":
			if !a.isLoggedIn() {
				printlnFn("Log in first.")
				continue
			}
			_ = a.Show(ctx)

		case "config":
			if !a.isLoggedIn() {
				printlnFn("Log in first.")
				continue
			}
			_ = a.Config(ctx)

		case "analyze":
			if !a.isLoggedIn() {
				printlnFn("Log in first.")
				continue
			}
			_ = a.Analyze(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

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
