package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	signedIn() bool
	SignIn(ctx context.Context, args []string) error
	SignOut(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	AddFirm(ctx context.Context, args []string) error
	Firms(ctx context.Context, args []string) error
	AddChat(ctx context.Context, args []string) error
	Chats(ctx context.Context, args []string) error
	AddIntel(ctx context.Context, args []string) error
	Deck(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	AddQuestion(ctx context.Context, args []string) error
	Questions(ctx context.Context, args []string) error
	AddResource(ctx context.Context, args []string) error
	Resources(ctx context.Context, args []string) error
	Notify(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error
}

const (
	helpSignedOut = "Available commands: signin, firms, chats, deck, questions, resources, notifications, stats, export, import, clear, refresh, exit"
	helpSignedIn  = "Available commands: addfirm, firms, addchat, chats, addintel, deck, rm, addquestion, questions, addresource, resources, notify, notifications, stats, export, import, clear, refresh, whoami, signout, exit"
)

// runREPL reads a line at a time from scanner, treats the first token as the
// command and the rest as its arguments. It returns on EOF, on "exit" or
// "quit", or when ctx is done.
//
// Handler errors are printed and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("tracker %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var handler func(context.Context, []string) error
		switch cmd {
		case "help":
			if a.signedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
			continue

		case "signin", "login":
			handler = a.SignIn
		case "signout", "logout":
			handler = a.SignOut
		case "whoami":
			handler = a.WhoAmI
		case "addfirm":
			handler = a.AddFirm
		case "firms":
			handler = a.Firms
		case "addchat":
			handler = a.AddChat
		case "chats":
			handler = a.Chats
		case "addintel":
			handler = a.AddIntel
		case "deck":
			handler = a.Deck
		case "rm", "delete":
			handler = a.Remove
		case "addquestion":
			handler = a.AddQuestion
		case "questions":
			handler = a.Questions
		case "addresource":
			handler = a.AddResource
		case "resources":
			handler = a.Resources
		case "notify":
			handler = a.Notify
		case "notifications":
			handler = a.Notifications
		case "stats", "dashboard":
			handler = a.Stats
		case "export":
			handler = a.Export
		case "import":
			handler = a.Import
		case "clear":
			handler = a.Clear
		case "refresh", "sync":
			handler = a.Refresh

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := handler(ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}
