package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

// Rarity is the quality tier of a generated item.
type Rarity string

const (
	// RarityMundane is the baseline tier (value multiplier 1.0 in the stock rules).
	RarityMundane Rarity = "mundane"
	// RarityArtisan is the second tier.
	RarityArtisan Rarity = "artisan"
	// RarityRare is the third tier.
	RarityRare Rarity = "rare"
	// RarityLegendary is the top tier.
	RarityLegendary Rarity = "legendary"
)

// Record is anything a character can carry in a backpack: gear or cores.
type Record interface {
	// UID returns the instance identifier, unique across all records.
	UID() string
	// DisplayName returns the player-facing name.
	DisplayName() string
}

// Item is a generated gear record occupying one paper-doll slot when equipped.
//
// Invariant: len(Cores) <= MaxSockets and no two cores are the same kind.
// Template fields are fixed at generation; only Cores mutates afterwards.
type Item struct {
	InstanceID string
	Name       string
	Slot       Slot
	// Type is the armor material or weapon subtype.
	Type     string
	Rarity   Rarity
	NetValue float64
	Cost     float64
	// BaseStats are the rolled stats, excluding socketed cores.
	BaseStats ruleset.StatMap

	IsWeapon    bool
	Damage      float64
	AttackSpeed float64

	// Cores holds socketed cores in insertion order.
	Cores []*Core
}

// UID returns the item instance ID.
func (it *Item) UID() string { return it.InstanceID }

// DisplayName returns the item name.
func (it *Item) DisplayName() string { return it.Name }

// EffectiveStats returns the base stats with every socketed core's stats
// added key-wise. The result is recomputed on each call.
//
// Postcondition: the returned map is a fresh copy; mutating it does not affect the item.
func (it *Item) EffectiveStats() ruleset.StatMap {
	fromCores := ruleset.StatMap{}
	for _, c := range it.Cores {
		fromCores.AddAll(c.Stats)
	}
	return ruleset.MergeAdd(it.BaseStats, fromCores)
}

// DPS returns damage per second of attack speed, or 0 for non-weapons.
func (it *Item) DPS() float64 {
	if !it.IsWeapon || it.AttackSpeed <= 0 {
		return 0
	}
	return it.Damage / it.AttackSpeed
}

// Description returns the item's tooltip lines as plain text.
//
// Postcondition: the first line is the rarity/name header; the last is the socket count.
func (it *Item) Description() []string {
	lines := []string{fmt.Sprintf("[%s] %s", strings.ToUpper(string(it.Rarity)), it.Name)}

	if it.IsWeapon {
		lines = append(lines,
			"Damage: "+formatNumber(it.Damage),
			"Speed: "+formatNumber(it.AttackSpeed),
			fmt.Sprintf("DPS: %.1f", it.DPS()),
		)
	} else {
		lines = append(lines,
			"Slot: "+strings.ToUpper(string(it.Slot)),
			"Type: "+it.Type,
		)
	}

	lines = append(lines, "--- STATS ---")
	current := it.EffectiveStats()
	if len(current) == 0 {
		lines = append(lines, "(No Stats)")
	}
	lines = append(lines, statLines(current)...)

	if len(it.Cores) > 0 {
		lines = append(lines, "--- CORES ---")
		for _, c := range it.Cores {
			lines = append(lines, "[O] "+c.Name)
		}
	}

	lines = append(lines,
		"---",
		fmt.Sprintf("Value: %sg", formatNumber(it.Cost)),
		fmt.Sprintf("Sockets: %d / %d", len(it.Cores), MaxSockets),
	)
	return lines
}

func statLines(m ruleset.StatMap) []string {
	out := make([]string, 0, len(m))
	for _, k := range m.Keys() {
		out = append(out, fmt.Sprintf("+%s %s", formatNumber(m[k]), strings.ToUpper(k)))
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
