package command

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/gearforge/internal/game/character"
	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// HandleSocket processes "socket <item_uid> <core_uid>".
//
// Precondition: s and s.Char must not be nil.
// Postcondition: On success the core leaves the backpack and is the item's
// last socketed core. On failure nothing changes.
func HandleSocket(s *Session, args []string) string {
	if len(args) < 2 {
		return "Usage: socket <item_uid> <core_uid>"
	}
	itemUID, coreUID := args[0], args[1]
	itemName, coreName := s.displayName(itemUID), s.displayName(coreUID)

	if err := s.Char.SocketCore(itemUID, coreUID); err != nil {
		return socketFailure(err, itemName, coreName)
	}
	return fmt.Sprintf("You socket %s into %s.", coreName, itemName)
}

// HandleUnsocket processes "unsocket <item_uid> <core_uid>".
//
// Precondition: s and s.Char must not be nil.
// Postcondition: On success the core is back in the backpack. On failure nothing changes.
func HandleUnsocket(s *Session, args []string) string {
	if len(args) < 2 {
		return "Usage: unsocket <item_uid> <core_uid>"
	}
	itemUID, coreUID := args[0], args[1]
	itemName, coreName := s.displayName(itemUID), s.displayName(coreUID)

	if err := s.Char.UnsocketCore(itemUID, coreUID); err != nil {
		return socketFailure(err, itemName, coreName)
	}
	return fmt.Sprintf("You remove %s from %s.", coreName, itemName)
}

func socketFailure(err error, itemName, coreName string) string {
	switch {
	case errors.Is(err, inventory.ErrSocketsFull):
		return fmt.Sprintf("%s has no free sockets.", itemName)
	case errors.Is(err, inventory.ErrDuplicateCoreKind):
		return fmt.Sprintf("%s already holds a %s.", itemName, coreName)
	case errors.Is(err, inventory.ErrCoreNotFound):
		return fmt.Sprintf("%s is not socketed into %s.", coreName, itemName)
	case errors.Is(err, character.ErrNotSocketable):
		return fmt.Sprintf("%s is not a core.", coreName)
	case errors.Is(err, character.ErrNotWearable):
		return fmt.Sprintf("%s is not an item.", itemName)
	case errors.Is(err, character.ErrItemNotFound):
		return "You do not have that."
	default:
		return err.Error()
	}
}
