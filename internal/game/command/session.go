package command

import (
	"github.com/cory-johannsen/gearforge/internal/game/character"
	"github.com/cory-johannsen/gearforge/internal/game/dice"
	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/stats"
)

// Session binds one character to the generators and calculator its commands use.
type Session struct {
	Char  *character.Character
	Items *inventory.ItemGenerator
	Cores *inventory.CoreGenerator
	Calc  *stats.Calculator
	// Src drives random core crafting.
	Src dice.Source
	// DefaultRarity is rolled by "loot" when no rarity is named.
	DefaultRarity inventory.Rarity
}

// findRecord locates a record by UID in the backpack, on the paper doll, or
// socketed into any carried or equipped item.
func (s *Session) findRecord(uid string) (inventory.Record, bool) {
	var items []*inventory.Item
	for _, rec := range s.Char.Inventory() {
		if rec.UID() == uid {
			return rec, true
		}
		if it, ok := rec.(*inventory.Item); ok {
			items = append(items, it)
		}
	}
	items = append(items, s.Char.EquippedItems()...)
	for _, it := range items {
		if it.InstanceID == uid {
			return it, true
		}
		for _, c := range it.Cores {
			if c.InstanceID == uid {
				return c, true
			}
		}
	}
	return nil, false
}

// displayName returns the record's name, or the UID itself when it is unknown.
func (s *Session) displayName(uid string) string {
	if rec, ok := s.findRecord(uid); ok {
		return rec.DisplayName()
	}
	return uid
}
