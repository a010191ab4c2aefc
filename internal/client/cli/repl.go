package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to. The real App
// type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isEditing() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Home(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	SelectCategory(ctx context.Context, id string) error
	CategoriesPrev(ctx context.Context) error
	CategoriesNext(ctx context.Context) error
	Pin(ctx context.Context, id string) error
	Copy(ctx context.Context, id string) error
	Download(ctx context.Context, id string) error
	CategoryNew(ctx context.Context) error
	CategoryEdit(ctx context.Context, id string) error
	CategoryDelete(ctx context.Context, id string) error
	ShowNote(ctx context.Context, id string) error

	NewNote(ctx context.Context) error
	EditNote(ctx context.Context, id string) error
	EditorCommand(ctx context.Context, cmd string, args []string) (bool, error)
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpHome      = "Available commands: home, list, search <q>, category <id|all>, cats-prev, cats-next, " +
		"pin <id>, copy <id>, download <id>, show <id>, new, edit <id>, cat-new, cat-edit <id>, cat-del <id>, " +
		"whoami, logout, exit"
	helpEditor = "Editor commands: title [text], content, append <text>, category [id], cat-new, cats-prev, cats-next, " +
		"font-size [px], font-style [name], grammar, summarize, undo, dictate, reset, save, delete, show, back"
)

// runREPL reads commands line by line and dispatches them to a. The loop exits
// on EOF or when the user types "exit" or "quit".
//
// While the editor is open, editor commands take precedence; anything the
// editor does not own falls through to the dashboard commands.
//
// Handlers report failures to the user themselves (as toasts or usage lines),
// so returned errors are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "notevault %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "help":
			switch {
			case !a.isLoggedIn():
				fmt.Fprintln(out, helpLoggedOut)
			case a.isEditing():
				fmt.Fprintln(out, helpEditor)
			default:
				fmt.Fprintln(out, helpHome)
			}
			continue
		case "register":
			_ = a.Register(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		}

		if !a.isLoggedIn() {
			fmt.Fprintln(out, "Please login first")
			continue
		}

		if a.isEditing() {
			if handled, _ := a.EditorCommand(ctx, cmd, args); handled {
				continue
			}
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "home":
			_ = a.Home(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "category":
			_ = a.SelectCategory(ctx, arg)
		case "cats-prev":
			_ = a.CategoriesPrev(ctx)
		case "cats-next":
			_ = a.CategoriesNext(ctx)
		case "pin":
			_ = a.Pin(ctx, arg)
		case "copy":
			_ = a.Copy(ctx, arg)
		case "download":
			_ = a.Download(ctx, arg)
		case "cat-new":
			_ = a.CategoryNew(ctx)
		case "cat-edit":
			_ = a.CategoryEdit(ctx, arg)
		case "cat-del":
			_ = a.CategoryDelete(ctx, arg)
		case "show":
			_ = a.ShowNote(ctx, arg)
		case "new":
			_ = a.NewNote(ctx)
		case "edit":
			_ = a.EditNote(ctx, arg)
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
