package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homeowner/internal/common"
)

// Register prompts for a username and password and creates the account.
// The first account of an empty store becomes the admin.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		a.println("Username must not be empty")
		return nil
	}

	password, err := getPassword(a.reader, a.fd, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.session.CreateAccount(ctx, username, string(password))
	if err != nil {
		return err
	}

	a.println("Success! Created", acc.String())
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.fd, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	a.println("Welcome,", acc.Username+"!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		a.println("Not logged in")
		return nil
	}
	a.session.Logout()
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	cur, ok := a.session.CurrentUser()
	if !ok {
		a.println("Not logged in")
		return nil
	}
	a.println(cur.String())
	return nil
}

// List prints every account in creation order.
func (a *App) List(ctx context.Context) error {
	list := a.session.ListAccounts()
	if len(list) == 0 {
		a.println("No accounts")
		return nil
	}
	for i, acc := range list {
		a.println(fmt.Sprintf("%2d.", i+1), acc.String())
	}
	return nil
}

// Newest prints the account created most recently in this session.
func (a *App) Newest(ctx context.Context) error {
	acc, ok := a.session.LastCreatedUser()
	if !ok {
		a.println("No account created yet")
		return nil
	}
	a.println(acc.String())
	return nil
}

// Delete removes the account called username. Only an admin may do this.
func (a *App) Delete(ctx context.Context, username string) error {
	me, err := a.session.RequireAdmin()
	if err != nil {
		return err
	}

	acc, ok := a.session.Store().FindByUsername(username)
	if !ok {
		return common.ErrNotFound
	}

	if err := a.session.DeleteAccount(ctx, acc); err != nil {
		return err
	}

	a.println("Deleted", acc.Username)
	if acc.ID == me.ID {
		a.println("You have been logged out")
	}
	return nil
}

// Clear removes every account after confirmation. Only an admin may do this.
func (a *App) Clear(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Type 'yes' to delete ALL accounts", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.println("Cancelled")
		return nil
	}

	if err := a.session.ClearAllAccounts(ctx); err != nil {
		return err
	}
	a.println("All accounts removed")
	return nil
}
