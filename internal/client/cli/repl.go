package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Set(ctx context.Context, field, value string) error
	Show(ctx context.Context) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
}

const helpText = "Available commands: (l)ist, add, edit <id>, set <field> <value>, show, submit, cancel, delete <id>, exit\n" +
	"In add/edit prompts an empty answer keeps the value and - clears it."

// runREPL starts a simple read–eval–print loop for the catalog CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and malformed arguments are
// reported back to the user. The loop exits on EOF, on context cancellation,
// or when the user types "exit" or "quit".
//
// Commands
//
//	help                 show available commands
//	l | list             list products
//	add                  prompt for a new product and submit it
//	edit <id>            prompt over an existing product and submit it
//	set <field> <value>  set one draft field; the value may contain spaces
//	show                 show the draft and its validation errors
//	submit               validate and save the draft
//	cancel               discard the draft
//	delete <id>          delete a product after confirmation
//	exit | quit          leave the program
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("catalog%s> ", statusFn()))
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
			printlnFn(helpText)

		case "l", "list":
			report(a.List(ctx))

		case "add":
			report(a.Add(ctx))

		case "edit":
			id, ok := parseID(args, "edit")
			if ok {
				report(a.Edit(ctx, id))
			}

		case "set":
			if len(args) == 0 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			report(a.Set(ctx, args[0], strings.Join(args[1:], " ")))

		case "show":
			report(a.Show(ctx))

		case "submit":
			report(a.Submit(ctx))

		case "cancel":
			report(a.Cancel(ctx))

		case "delete":
			id, ok := parseID(args, "delete")
			if ok {
				report(a.Delete(ctx, id))
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string, cmd string) (int64, bool) {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return 0, false
	}
	return id, true
}

func report(err error) {
	if err != nil {
		printlnFn("error:", err)
	}
}
