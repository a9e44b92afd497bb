package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// HandleEquipment displays every paper-doll slot.
//
// Precondition: s and s.Char must not be nil.
// Postcondition: Returns one line per slot in display order, "empty" for vacant slots.
func HandleEquipment(s *Session) string {
	var sb strings.Builder
	sb.WriteString("=== Equipment ===\n")
	for _, slot := range inventory.Slots() {
		label := inventory.SlotDisplayName(slot) + ":"
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", label, formatSlottedItem(s.Char.Equipped(slot))))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatSlottedItem renders an equipped item for the equipment listing.
func formatSlottedItem(it *inventory.Item) string {
	if it == nil {
		return "empty"
	}
	return fmt.Sprintf("%s (%s) [%d/%d]", it.Name, it.InstanceID, len(it.Cores), inventory.MaxSockets)
}

// HandleInventory displays the backpack contents.
//
// Precondition: s and s.Char must not be nil.
// Postcondition: Returns one line per record in insertion order.
func HandleInventory(s *Session) string {
	records := s.Char.Inventory()
	if len(records) == 0 {
		return "Your pack is empty."
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== Pack (%d) ===\n", len(records)))
	for _, rec := range records {
		var tag string
		switch r := rec.(type) {
		case *inventory.Item:
			tag = strings.ToUpper(string(r.Rarity))
		case *inventory.Core:
			tag = "CORE"
		}
		sb.WriteString(fmt.Sprintf("  %-14s [%s] %s\n", rec.UID(), tag, rec.DisplayName()))
	}
	return strings.TrimRight(sb.String(), "\n")
}
