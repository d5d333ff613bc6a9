package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/rooms"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Newest(ctx context.Context) error
	Delete(ctx context.Context, username string) error
	Clear(ctx context.Context) error
	Rooms(ctx context.Context) error
	AddRoom(ctx context.Context, name string) error
	RenameRoom(ctx context.Context, from, to string) error
}

const (
	helpGuest = "Available commands: register, login, list, newest, rooms, exit"
	helpUser  = "Available commands: whoami, list, newest, register, logout, rooms, addroom <name>, rename <room> <new name>, delete <username>, clear, exit"
)

// runREPL reads commands from reader, dispatches them to a and writes the
// prompt, help and a message for every failed command to out. The loop exits on EOF or when the
// user types "exit" or "quit".
//
//	register | create        create an account (first one becomes admin)
//	login                    authenticate
//	logout                   end the session
//	whoami                   show the current user
//	list                     list accounts in creation order
//	newest                   show the most recently created account
//	delete <username>        remove an account (admin only)
//	clear                    remove every account (admin only)
//	rooms                    list rooms of the floor plan
//	addroom <name>           add a room
//	rename <room> <new>      rename a room
//	exit | quit              leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	say := func(args ...any) { fmt.Fprintln(out, args...) }
	report := func(err error) {
		if err != nil {
			say(Message(err))
		}
	}

	for {
		say(fmt.Sprintf("ho %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				say(helpUser)
			} else {
				say(helpGuest)
			}

		case "register", "create":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "newest":
			report(a.Newest(ctx))

		case "delete":
			if len(args) != 1 {
				say("Usage: delete <username>")
				continue
			}
			report(a.Delete(ctx, args[0]))

		case "clear":
			report(a.Clear(ctx))

		case "rooms":
			report(a.Rooms(ctx))

		case "addroom":
			if len(args) == 0 {
				say("Usage: addroom <name>")
				continue
			}
			report(a.AddRoom(ctx, strings.Join(args, " ")))

		case "rename":
			if len(args) < 2 {
				say("Usage: rename <room> <new name>")
				continue
			}
			report(a.RenameRoom(ctx, args[0], strings.Join(args[1:], " ")))

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// Message maps an error from the account core to the text shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, common.ErrNotLoggedIn):
		return "Please log in first"
	case errors.Is(err, common.ErrForbidden):
		return "Only an admin can do that"
	case errors.Is(err, common.ErrNotFound):
		return "No such account"
	case errors.Is(err, rooms.ErrEmptyName):
		return "Room name must not be empty"
	case errors.Is(err, rooms.ErrRoomNotFound):
		return "No such room"
	case errors.Is(err, rooms.ErrDuplicateRoom):
		return "Room already exists"
	case errors.Is(err, common.ErrStorageUnavailable):
		return "Could not save: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
