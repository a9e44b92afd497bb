package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// validUnequipSlots lists all slot names accepted by HandleUnequip, in display order.
var validUnequipSlots = func() []string {
	slots := inventory.Slots()
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = string(s)
	}
	return out
}()

// HandleUnequip processes the "unequip" command. args[0] must be a slot name.
//
// Precondition: s and s.Char must not be nil.
// Postcondition: On success the slot is empty and its item is in the backpack.
// Unknown slots return an error listing all valid slot names.
func HandleUnequip(s *Session, args []string) string {
	if len(args) == 0 {
		return "Usage: unequip <slot>"
	}
	slot := inventory.Slot(strings.ToLower(args[0]))
	if !inventory.IsValidSlot(slot) {
		return fmt.Sprintf(
			"Unknown slot %q. Valid slots: %s",
			args[0],
			strings.Join(validUnequipSlots, ", "),
		)
	}

	it := s.Char.Equipped(slot)
	if it == nil {
		return fmt.Sprintf("Nothing equipped in %s.", inventory.SlotDisplayName(slot))
	}
	if err := s.Char.UnequipSlot(slot); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("You unequip %s.", it.Name)
}
