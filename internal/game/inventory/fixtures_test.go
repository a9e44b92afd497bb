package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gearforge/internal/game/dice"
	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/pkg/idgen"
)

func testRules() *inventory.EquipmentRules {
	return &inventory.EquipmentRules{
		RarityMults: map[inventory.Rarity]float64{
			inventory.RarityMundane: 1,
			inventory.RarityRare:    2,
		},
		MaterialMults: map[string]float64{
			"leather": 1,
			"plate":   1.5,
		},
		SubtypeData: map[string]inventory.SubtypeDef{
			"longsword": {ValueMult: 1.2, DmgMult: 0.8, Speed: 1.2},
		},
		StatConversion: ruleset.StatMap{
			"str":    0.1,
			"patk":   0.5,
			"max_hp": 2,
		},
	}
}

func testFamily() *inventory.FamilyDef {
	return &inventory.FamilyDef{
		ID:        "adventurer",
		Name:      "Adventurer's",
		Family:    "martial",
		BaseValue: 10,
		CostMod:   1.5,
		Contents: []inventory.ContentEntry{
			{Slot: inventory.SlotChest, Type: "leather", Name: "Jerkin"},
			{Slot: inventory.SlotLegs, Type: "plate", Name: "Greaves"},
			{Slot: inventory.SlotWeapon, Type: "longsword", Name: "Longsword"},
		},
	}
}

// testRegistry returns a registry with one family, two prefixes (martial and
// arcane) and two suffixes (martial-only and arcane-only).
func testRegistry(t *testing.T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry(testRules())
	require.NoError(t, reg.RegisterFamily(testFamily()))
	require.NoError(t, reg.RegisterCorePrefix(&inventory.CorePrefixDef{
		ID: "brutal", Name: "Brutal", Family: "martial",
		Stats: inventory.CoreStatRoles{Primary: "str", Secondary: "patk"},
	}))
	require.NoError(t, reg.RegisterCorePrefix(&inventory.CorePrefixDef{
		ID: "lucid", Name: "Lucid", Family: "arcane",
		Stats: inventory.CoreStatRoles{Primary: "max_hp"},
	}))
	require.NoError(t, reg.RegisterCoreSuffix(&inventory.CoreSuffixDef{
		ID: "ember", Name: "Ember", BaseValue: 10, Families: []string{"martial"},
	}))
	require.NoError(t, reg.RegisterCoreSuffix(&inventory.CoreSuffixDef{
		ID: "sigil", Name: "Sigil", BaseValue: 12, Families: []string{"arcane"},
	}))
	require.NoError(t, reg.Validate())
	return reg
}

func testItemGenerator(t *testing.T, src dice.Source) *inventory.ItemGenerator {
	t.Helper()
	return inventory.NewItemGenerator(testRegistry(t), src, idgen.NewSequential("item"), nil)
}

func testCoreGenerator(t *testing.T) *inventory.CoreGenerator {
	t.Helper()
	return inventory.NewCoreGenerator(testRegistry(t), idgen.NewSequential("core"), nil)
}

func newCore(uid, prefix, suffix string, stats ruleset.StatMap) *inventory.Core {
	return &inventory.Core{
		InstanceID: uid,
		Name:       prefix + " " + suffix,
		PrefixID:   prefix,
		SuffixID:   suffix,
		FamilyID:   "martial",
		Stats:      stats,
		BaseValue:  10,
	}
}
