package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// HandleSheet renders the character's current stat sheet.
//
// Precondition: s.Char and s.Calc must not be nil.
func HandleSheet(s *Session) string {
	sheet, err := s.Char.CurrentStats(s.Calc)
	if err != nil {
		return fmt.Sprintf("Cannot compute stats: %v", err)
	}
	header := fmt.Sprintf("%s the %s", s.Char.Name, sheet.Archetype)
	return header + "\n" + strings.Join(sheet.Lines(), "\n")
}

// HandleBonuses lists the aggregated bonuses fed to the stat calculator.
func HandleBonuses(s *Session) string {
	bonuses := s.Char.TotalBonuses()
	if len(bonuses) == 0 {
		return "No bonuses."
	}
	lines := []string{"=== Bonuses ==="}
	for _, k := range bonuses.Keys() {
		lines = append(lines, fmt.Sprintf("  %-14s %+g", strings.ToUpper(k), bonuses[k]))
	}
	return strings.Join(lines, "\n")
}

// HandleDescribe shows the tooltip of the item or core args[0], wherever the
// character holds it.
func HandleDescribe(s *Session, args []string) string {
	if len(args) == 0 {
		return "Usage: describe <uid>"
	}
	rec, ok := s.findRecord(args[0])
	if !ok {
		return fmt.Sprintf("%s: not found", args[0])
	}
	switch r := rec.(type) {
	case *inventory.Item:
		return strings.Join(r.Description(), "\n")
	case *inventory.Core:
		return strings.Join(r.Description(), "\n")
	default:
		return rec.DisplayName()
	}
}

// HandleLevelUp advances the character one level.
func HandleLevelUp(s *Session) string {
	return fmt.Sprintf("%s reaches level %d.", s.Char.Name, s.Char.LevelUp())
}
