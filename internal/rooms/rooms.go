// Package rooms is the narrow seam between the account UI and the house
// model. The core only renames a room and asks for the house to be saved; it
// never looks inside a House.
package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName    = errors.New("room name must not be empty")
	ErrRoomNotFound = errors.New("room not found in house")
)

// Room is a renameable room.
type Room interface {
	Name() string
	Rename(newName string)
}

// House looks up rooms by name.
type House interface {
	FindRoom(name string) (Room, bool)
}

// Saver persists a house after it has changed.
type Saver interface {
	SaveHouse(ctx context.Context, h House) error
}

// Rename renames selected to newName, applies the same rename to the house's
// copy of the room and saves the house.
//
// The house room is looked up by the selected room's name after it has been
// renamed, so a House that hands out shared Room values sees a single room
// renamed twice.
func Rename(ctx context.Context, selected Room, house House, saver Saver, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrEmptyName
	}

	selected.Rename(newName)

	room, ok := house.FindRoom(selected.Name())
	if !ok {
		return fmt.Errorf("%w: %q", ErrRoomNotFound, selected.Name())
	}
	room.Rename(newName)

	if err := saver.SaveHouse(ctx, house); err != nil {
		return fmt.Errorf("save house: %w", err)
	}
	return nil
}
