package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// HandleLoot rolls a random item into the backpack. args[0], if present,
// names the rarity; otherwise s.DefaultRarity is used.
//
// Precondition: s.Char and s.Items must not be nil.
func HandleLoot(s *Session, args []string) string {
	rarity := s.DefaultRarity
	if len(args) > 0 {
		rarity = inventory.Rarity(strings.ToLower(args[0]))
	}
	it, err := s.Items.GenerateRandom(rarity)
	if err != nil {
		return fmt.Sprintf("Nothing drops: %v", err)
	}
	if err := s.Char.AddItem(it); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("You find %s (%s).", it.Name, it.InstanceID)
}

// HandleCraft creates a core and puts it in the backpack. With no args the
// prefix and suffix are chosen at random from the compatible pairs.
//
// Precondition: s.Char, s.Cores and s.Src must not be nil.
func HandleCraft(s *Session, args []string) string {
	var (
		c   *inventory.Core
		err error
	)
	switch len(args) {
	case 0:
		c, err = s.Cores.GenerateRandom(s.Src)
	case 2:
		c, err = s.Cores.Generate(strings.ToLower(args[0]), strings.ToLower(args[1]))
	default:
		return "Usage: craft [<prefix> <suffix>]"
	}
	if err != nil {
		if errors.Is(err, inventory.ErrFamilyMismatch) {
			return "Those parts do not fit together: " + err.Error()
		}
		return fmt.Sprintf("Crafting failed: %v", err)
	}
	if err := s.Char.AddItem(c); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("You craft %s (%s).", c.Name, c.InstanceID)
}
