package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Home(ctx context.Context) error
	Show(ctx context.Context, name string) error
	Refresh(ctx context.Context) error
	Toggle(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Blur(ctx context.Context) error
	Open(ctx context.Context, n string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Backup(ctx context.Context) error
	Unbackup(ctx context.Context, name string) error
	Render()
}

const helpText = `Available commands:
  home | show <name> | refresh
  toggle                 switch summary/detailed overview
  search [text] | blur   type into / leave the search box
  open <n>               follow suggestion n
  add                    create a collection
  edit | delete          change or remove the shown collection
  backup | unbackup <name>
  exit | quit`

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'; the rest of the line is the argument. After
// every page command the current page is rendered. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Failures from the backend are already shown in the page's status area, so
// only usage mistakes are printed here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bo %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
			continue

		case "home":
			cmdErr = a.Home(ctx)
		case "show":
			cmdErr = a.Show(ctx, arg)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "toggle":
			cmdErr = a.Toggle(ctx)
		case "search":
			cmdErr = a.Search(ctx, arg)
		case "blur":
			cmdErr = a.Blur(ctx)
		case "open":
			cmdErr = a.Open(ctx, arg)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx)
		case "delete":
			cmdErr = a.Delete(ctx)
		case "backup":
			cmdErr = a.Backup(ctx)
		case "unbackup":
			cmdErr = a.Unbackup(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if errors.Is(cmdErr, errUsage) || errors.Is(cmdErr, errWrongPage) {
			printlnFn(cmdErr.Error())
			continue
		}
		a.Render()

		if err != nil {
			return
		}
	}
}
