package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/rooms"
	"github.com/dmitrijs2005/homeowner/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// App is the interactive front end over a SessionManager and a floor plan.
type App struct {
	session *services.SessionManager
	houses  *rooms.YAMLStore
	plan    *rooms.Plan
	log     logging.Logger
	reader  *bufio.Reader
	fd      int
	out     io.Writer
}

// NewApp builds an App reading commands from in and writing to out.
// houses may be nil, which disables the room commands.
func NewApp(session *services.SessionManager, houses *rooms.YAMLStore, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		session: session,
		houses:  houses,
		log:     log,
		reader:  bufio.NewReader(in),
		fd:      TerminalFD(in),
		out:     out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) status() string {
	cur, ok := a.session.CurrentUser()
	if !ok {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", cur)
}

// Run loads the floor plan and starts the REPL. It blocks until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if a.houses != nil {
		plan, err := a.houses.Load(ctx)
		if err != nil {
			return err
		}
		a.plan = plan
	}

	a.println("Welcome to HomeOwner (type 'help' for commands)")
	a.log.Debug(ctx, "repl started", "accounts", len(a.session.ListAccounts()))
	runREPL(ctx, a, a.status, a.reader, a.out)
	a.log.Debug(ctx, "repl finished")
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
