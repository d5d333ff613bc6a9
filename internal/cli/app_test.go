package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/repositories/accounts"
	"github.com/dmitrijs2005/homeowner/internal/rooms"
	"github.com/dmitrijs2005/homeowner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app     *App
	session *services.SessionManager
	houses  *rooms.YAMLStore
	out     *bytes.Buffer
}

// newTestApp builds an App over a real TSV store in a temp dir. Input lines
// feed both the prompts and the piped password reads.
func newTestApp(t *testing.T, lines ...string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	repo, err := accounts.New(accounts.FormatTSV, dir)
	require.NoError(t, err)
	store, err := services.OpenAccountStore(context.Background(), repo, logging.NewNop())
	require.NoError(t, err)

	session := services.NewSessionManager(store, logging.NewNop())
	houses := rooms.NewYAMLStore(dir)
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	app := NewApp(session, houses, logging.NewNop(), in, out)
	app.plan = &rooms.Plan{}
	return &testEnv{app: app, session: session, houses: houses, out: out}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestApp(t,
		"alice", "pw1",
		"bob", "pw2",
		"alice", "other",
		"bob", "wrong",
		"bob", "pw2",
	)

	require.NoError(t, env.app.Register(ctx))
	require.NoError(t, env.app.Register(ctx))
	assert.ErrorIs(t, env.app.Register(ctx), common.ErrDuplicateUsername)

	assert.Contains(t, env.out.String(), "Success! Created alice (admin)")
	assert.Contains(t, env.out.String(), "Success! Created bob (user)")

	assert.ErrorIs(t, env.app.Login(ctx), common.ErrInvalidCredentials)
	assert.False(t, env.app.isLoggedIn())

	require.NoError(t, env.app.Login(ctx))
	assert.True(t, env.app.isLoggedIn())
	assert.Equal(t, "(bob (user))", env.app.status())
	assert.Contains(t, env.out.String(), "Welcome, bob!")
}

func TestRegister_EmptyUsername(t *testing.T) {
	env := newTestApp(t, "")

	require.NoError(t, env.app.Register(context.Background()))
	assert.Contains(t, env.out.String(), "Username must not be empty")
	assert.Empty(t, env.session.ListAccounts())
}

func TestWhoAmIListNewestLogout(t *testing.T) {
	ctx := context.Background()
	env := newTestApp(t)

	require.NoError(t, env.app.WhoAmI(ctx))
	require.NoError(t, env.app.List(ctx))
	require.NoError(t, env.app.Newest(ctx))
	require.NoError(t, env.app.Logout(ctx))
	assert.Equal(t, "Not logged in\nNo accounts\nNo account created yet\nNot logged in\n", env.out.String())

	_, _ = env.session.CreateAccount(ctx, "alice", "pw1")
	_, _ = env.session.CreateAccount(ctx, "bob", "pw2")
	_, err := env.session.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	env.out.Reset()

	require.NoError(t, env.app.WhoAmI(ctx))
	require.NoError(t, env.app.List(ctx))
	require.NoError(t, env.app.Newest(ctx))
	require.NoError(t, env.app.Logout(ctx))
	assert.Equal(t, "alice (admin)\n 1. alice (admin)\n 2. bob (user)\nbob (user)\nLogged out\n", env.out.String())
	assert.Equal(t, "(guest)", env.app.status())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestApp(t)
	_, _ = env.session.CreateAccount(ctx, "alice", "pw1")
	_, _ = env.session.CreateAccount(ctx, "bob", "pw2")

	assert.ErrorIs(t, env.app.Delete(ctx, "bob"), common.ErrNotLoggedIn)

	_, _ = env.session.Login(ctx, "bob", "pw2")
	assert.ErrorIs(t, env.app.Delete(ctx, "alice"), common.ErrForbidden)

	_, _ = env.session.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, env.app.Delete(ctx, "carol"), common.ErrNotFound)

	require.NoError(t, env.app.Delete(ctx, "bob"))
	assert.Len(t, env.session.ListAccounts(), 1)
	assert.True(t, env.app.isLoggedIn())

	require.NoError(t, env.app.Delete(ctx, "alice"))
	assert.False(t, env.app.isLoggedIn())
	assert.Contains(t, env.out.String(), "You have been logged out")
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	env := newTestApp(t, "no", "yes")
	_, _ = env.session.CreateAccount(ctx, "alice", "pw1")
	_, _ = env.session.CreateAccount(ctx, "bob", "pw2")

	assert.ErrorIs(t, env.app.Clear(ctx), common.ErrNotLoggedIn)

	_, _ = env.session.Login(ctx, "alice", "pw1")
	require.NoError(t, env.app.Clear(ctx))
	assert.Contains(t, env.out.String(), "Cancelled")
	assert.Len(t, env.session.ListAccounts(), 2)

	require.NoError(t, env.app.Clear(ctx))
	assert.Empty(t, env.session.ListAccounts())
	assert.False(t, env.app.isLoggedIn())
}

func TestRoomCommands(t *testing.T) {
	ctx := context.Background()
	env := newTestApp(t)

	require.NoError(t, env.app.Rooms(ctx))
	assert.Contains(t, env.out.String(), "No rooms yet")

	assert.ErrorIs(t, env.app.AddRoom(ctx, "Kitchen"), common.ErrNotLoggedIn)

	_, _ = env.session.CreateAccount(ctx, "alice", "pw1")
	_, _ = env.session.Login(ctx, "alice", "pw1")

	require.NoError(t, env.app.AddRoom(ctx, "Kitchen"))
	require.NoError(t, env.app.AddRoom(ctx, "Hall"))
	assert.ErrorIs(t, env.app.AddRoom(ctx, "Hall"), rooms.ErrDuplicateRoom)

	assert.ErrorIs(t, env.app.RenameRoom(ctx, "Attic", "Loft"), rooms.ErrRoomNotFound)
	require.NoError(t, env.app.RenameRoom(ctx, "Kitchen", "Big Kitchen"))

	saved, err := env.houses.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Big Kitchen", "Hall"}, saved.Names())

	env.out.Reset()
	require.NoError(t, env.app.Rooms(ctx))
	assert.Equal(t, " - Big Kitchen\n - Hall\n", env.out.String())
}

func TestRoomCommands_NoPlan(t *testing.T) {
	ctx := context.Background()
	env := newTestApp(t)
	env.app.plan = nil

	assert.ErrorIs(t, env.app.Rooms(ctx), errNoPlan)
	assert.ErrorIs(t, env.app.AddRoom(ctx, "x"), errNoPlan)
	assert.ErrorIs(t, env.app.RenameRoom(ctx, "x", "y"), errNoPlan)
}

func TestRun_Session(t *testing.T) {
	env := newTestApp(t,
		"register", "alice", "pw1",
		"register", "bob", "pw2",
		"login", "bob", "pw2",
		"whoami",
		"logout",
		"exit",
	)
	env.app.plan = nil

	require.NoError(t, env.app.Run(context.Background()))

	assert.Len(t, env.session.ListAccounts(), 2)
	assert.False(t, env.session.IsLoggedIn())
	out := env.out.String()
	assert.Contains(t, out, "Welcome, bob!")
	assert.Contains(t, out, "bob (user)\n")
	assert.Contains(t, out, "Logged out")
}

func TestRun_FailedLoginWritesToOutput(t *testing.T) {
	env := newTestApp(t,
		"login", "ghost", "nope",
		"exit",
	)

	require.NoError(t, env.app.Run(context.Background()))

	out := env.out.String()
	assert.True(t, strings.HasPrefix(out, "Welcome to HomeOwner"))
	assert.Contains(t, out, "Invalid username or password\n")
	assert.Contains(t, out, "ho (guest)> \n")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
	assert.False(t, env.session.IsLoggedIn())
}
