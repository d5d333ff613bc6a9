package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/rooms"
)

var errNoPlan = errors.New("floor plan is not available")

// Rooms prints the rooms of the floor plan.
func (a *App) Rooms(ctx context.Context) error {
	if a.plan == nil {
		return errNoPlan
	}
	names := a.plan.Names()
	if len(names) == 0 {
		a.println("No rooms yet, use 'addroom <name>'")
		return nil
	}
	for _, n := range names {
		a.println(" -", n)
	}
	return nil
}

// AddRoom adds a room to the floor plan and saves it.
func (a *App) AddRoom(ctx context.Context, name string) error {
	if a.plan == nil {
		return errNoPlan
	}
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	if err := a.plan.Add(name); err != nil {
		return err
	}
	if err := a.houses.SaveHouse(ctx, a.plan); err != nil {
		return err
	}
	a.println("Added room", name)
	return nil
}

// RenameRoom renames room from to to and saves the floor plan.
func (a *App) RenameRoom(ctx context.Context, from, to string) error {
	if a.plan == nil {
		return errNoPlan
	}
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	selected, ok := a.plan.FindRoom(from)
	if !ok {
		return rooms.ErrRoomNotFound
	}
	if err := rooms.Rename(ctx, selected, a.plan, a.houses, to); err != nil {
		return err
	}
	a.println("Renamed", from, "to", to)
	return nil
}
