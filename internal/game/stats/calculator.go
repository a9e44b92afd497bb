// Package stats derives a character's attribute and combat-stat sheet from an
// archetype, a level and the aggregated bonuses of gear and permanent effects.
package stats

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

// Sheet is the full stat breakdown for one (archetype, level, bonuses) input.
type Sheet struct {
	// Archetype is the archetype display name.
	Archetype string
	Level     int
	// Threat is the archetype's flat threat per hit.
	Threat float64
	// Attributes are the final primary attributes, bonuses included.
	Attributes map[ruleset.Attribute]int
	// CombatStats are the final combat stats, rounded to tenths.
	CombatStats ruleset.StatMap
	// Bonuses isolates the part of the sheet contributed by bonuses: the raw
	// bonus map plus the relation-propagated share of attribute bonuses.
	Bonuses ruleset.StatMap
}

// Calculator computes stat sheets against an archetype source. It holds no
// other state; Compute is pure for a fixed source.
type Calculator struct {
	archetypes ruleset.ArchetypeSource
}

// NewCalculator creates a Calculator reading archetypes from src.
//
// Precondition: src must not be nil.
func NewCalculator(src ruleset.ArchetypeSource) *Calculator {
	return &Calculator{archetypes: src}
}

// EffectiveLevel returns the number of growth steps applied at level.
// Level 1 applies no growth.
func EffectiveLevel(level int) int {
	return max(0, level-1)
}

// Compute builds the stat sheet. The steps run in a fixed order: attributes,
// attribute relations, direct combat-stat bonuses, bonus breakdown, rounding.
//
// Postcondition: on success every CombatStats and Bonuses value is a multiple of 0.1;
// returns an error wrapping ruleset.ErrUnknownArchetype and a nil sheet if the id is unknown.
func (c *Calculator) Compute(archetypeID string, level int, bonuses ruleset.StatMap) (*Sheet, error) {
	arch, ok := c.archetypes.Archetype(archetypeID)
	if !ok {
		return nil, fmt.Errorf("computing stats for %q: %w", archetypeID, ruleset.ErrUnknownArchetype)
	}

	growthSteps := float64(EffectiveLevel(level))
	attributes := make(map[ruleset.Attribute]int, len(ruleset.Attributes))
	for _, attr := range ruleset.Attributes {
		raw := arch.BaseAttributes[attr] + arch.AttributeGrowth[attr]*growthSteps + bonuses[string(attr)]
		attributes[attr] = int(math.Floor(raw))
	}

	combat := make(ruleset.StatMap, len(ruleset.CombatStats))
	for _, stat := range ruleset.CombatStats {
		combat[stat] = 0
	}
	for _, attr := range ruleset.Attributes {
		for stat, mult := range arch.AttributeRelations[attr] {
			if _, ok := combat[stat]; ok {
				combat[stat] += float64(attributes[attr]) * mult
			}
		}
	}
	for key, v := range bonuses {
		if ruleset.IsCombatStat(key) {
			combat[key] += v
		}
	}

	effective := bonuses.Clone()
	for key, v := range bonuses {
		for stat, mult := range arch.AttributeRelations[ruleset.Attribute(key)] {
			effective[stat] += v * mult
		}
	}

	roundAll(combat)
	roundAll(effective)

	return &Sheet{
		Archetype:   arch.Name,
		Level:       level,
		Threat:      arch.Threat,
		Attributes:  attributes,
		CombatStats: combat,
		Bonuses:     effective,
	}, nil
}

// RoundTenth rounds v to one decimal place, halves away from zero.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundAll(m ruleset.StatMap) {
	for k, v := range m {
		m[k] = RoundTenth(v)
	}
}
