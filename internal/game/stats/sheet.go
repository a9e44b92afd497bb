package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

// Lines returns the sheet as ordered plain-text rows: a header, the
// attribute block, the combat block and, if present, the bonus block.
func (s *Sheet) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s (level %d)", s.Archetype, s.Level),
		"Threat: " + num(s.Threat),
		"--- ATTRIBUTES ---",
	}
	for _, attr := range ruleset.Attributes {
		lines = append(lines, fmt.Sprintf("%-4s %d%s", strings.ToUpper(string(attr)), s.Attributes[attr], s.bonusSuffix(string(attr))))
	}
	lines = append(lines, "--- COMBAT ---")
	for _, stat := range ruleset.CombatStats {
		lines = append(lines, fmt.Sprintf("%-9s %s%s", strings.ToUpper(stat), num(s.CombatStats[stat]), s.bonusSuffix(stat)))
	}
	if dmg, ok := s.Bonuses[ruleset.StatWeaponDamage]; ok {
		lines = append(lines, "Weapon damage: "+num(dmg))
	}
	return lines
}

func (s *Sheet) bonusSuffix(key string) string {
	v, ok := s.Bonuses[key]
	if !ok || v == 0 {
		return ""
	}
	sign := "+"
	if v < 0 {
		sign = ""
	}
	return fmt.Sprintf(" (%s%s)", sign, num(v))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
