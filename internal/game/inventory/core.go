package inventory

import (
	"fmt"

	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

// Core is a socketable modifier. Cores are never worn directly.
//
// Invariant: Stats is computed once by the CoreGenerator and never recomputed.
type Core struct {
	InstanceID string
	Name       string
	PrefixID   string
	SuffixID   string
	// FamilyID is inherited from the prefix.
	FamilyID  string
	Stats     ruleset.StatMap
	BaseValue float64
}

// UID returns the core instance ID.
func (c *Core) UID() string { return c.InstanceID }

// DisplayName returns the core name.
func (c *Core) DisplayName() string { return c.Name }

// SameKind reports whether c and other share both prefix and suffix.
// This, not instance identity, governs duplicate prevention when socketing.
func (c *Core) SameKind(other *Core) bool {
	return c.PrefixID == other.PrefixID && c.SuffixID == other.SuffixID
}

// Description returns the core's tooltip lines as plain text.
func (c *Core) Description() []string {
	lines := []string{fmt.Sprintf("[CORE] %s", c.Name), "---"}
	lines = append(lines, statLines(c.Stats)...)
	return append(lines, "---", "Can be socketed into Equipment.")
}
