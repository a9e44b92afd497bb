package ruleset

import "sort"

// Attribute identifies one of the five primary character attributes.
type Attribute string

const (
	// AttrStrength is the strength attribute.
	AttrStrength Attribute = "str"
	// AttrDexterity is the dexterity attribute.
	AttrDexterity Attribute = "dex"
	// AttrIntelligence is the intelligence attribute.
	AttrIntelligence Attribute = "int"
	// AttrWisdom is the wisdom attribute.
	AttrWisdom Attribute = "wis"
	// AttrEndurance is the endurance attribute.
	AttrEndurance Attribute = "end"
)

// Attributes lists every primary attribute in display order.
var Attributes = []Attribute{
	AttrStrength,
	AttrDexterity,
	AttrIntelligence,
	AttrWisdom,
	AttrEndurance,
}

// Combat stat keys derived from attributes.
const (
	StatPhysicalAttack  = "patk"
	StatPhysicalDefense = "pdef"
	StatMagicAttack     = "matk"
	StatMagicDefense    = "mdef"
	StatMaxHP           = "max_hp"
	StatMaxMP           = "max_mp"
	StatHPRegen         = "hp_regen"
	StatMPRegen         = "mp_regen"
	StatAccuracy        = "acc"
	StatEvasion         = "eva"
	StatCritHit         = "crit_hit"
	StatCritDamage      = "crit_dmg"

	// StatWeaponDamage carries the summed damage scalar of equipped weapons.
	// It is never produced by cores or permanent bonuses.
	StatWeaponDamage = "weapon_damage"
)

// CombatStats lists every combat stat in display order.
var CombatStats = []string{
	StatPhysicalAttack,
	StatPhysicalDefense,
	StatMagicAttack,
	StatMagicDefense,
	StatMaxHP,
	StatMaxMP,
	StatHPRegen,
	StatMPRegen,
	StatAccuracy,
	StatEvasion,
	StatCritHit,
	StatCritDamage,
}

var (
	attributeSet = toSet(func() []string {
		out := make([]string, len(Attributes))
		for i, a := range Attributes {
			out[i] = string(a)
		}
		return out
	}())
	combatStatSet = toSet(CombatStats)
)

func toSet(keys []string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// IsAttribute reports whether key names a primary attribute.
func IsAttribute(key string) bool { return attributeSet[key] }

// IsCombatStat reports whether key names a combat stat.
func IsCombatStat(key string) bool { return combatStatSet[key] }

// StatMap maps a stat key to a numeric value. Absent keys read as zero.
type StatMap map[string]float64

// Clone returns an independent copy of m. A nil map clones to an empty map.
func (m StatMap) Clone() StatMap {
	out := make(StatMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AddAll adds every entry of other into m key-wise.
//
// Precondition: m must be non-nil.
func (m StatMap) AddAll(other StatMap) {
	for k, v := range other {
		m[k] += v
	}
}

// Keys returns the keys of m in lexical order.
func (m StatMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeAdd returns a new StatMap holding the key-wise sum of all maps.
//
// Postcondition: none of the inputs is modified.
func MergeAdd(maps ...StatMap) StatMap {
	out := StatMap{}
	for _, m := range maps {
		out.AddAll(m)
	}
	return out
}
