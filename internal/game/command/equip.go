package command

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/gearforge/internal/game/character"
	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// HandleEquip processes the "equip" command. args[0] is the UID of a
// backpack item.
//
// Precondition: s and s.Char must not be nil.
// Postcondition: On success the item occupies its slot and any previous
// occupant is back in the backpack. On failure nothing changes.
func HandleEquip(s *Session, args []string) string {
	if len(args) == 0 {
		return "Usage: equip <uid>"
	}
	uid := args[0]
	name := s.displayName(uid)

	var prev *inventory.Item
	if rec, ok := s.findRecord(uid); ok {
		if it, ok := rec.(*inventory.Item); ok && inventory.IsValidSlot(it.Slot) {
			prev = s.Char.Equipped(it.Slot)
		}
	}

	if err := s.Char.EquipItem(uid); err != nil {
		switch {
		case errors.Is(err, character.ErrItemNotFound):
			return fmt.Sprintf("%s: not found in your pack", uid)
		case errors.Is(err, character.ErrNotWearable):
			return fmt.Sprintf("%s is a core and cannot be worn. Socket it into an item instead.", name)
		case errors.Is(err, character.ErrInvalidSlot):
			return fmt.Sprintf("%s does not fit any equipment slot.", name)
		default:
			return err.Error()
		}
	}

	msg := fmt.Sprintf("You equip %s.", name)
	if prev != nil {
		msg += fmt.Sprintf(" %s returns to your pack.", prev.Name)
	}
	return msg
}
