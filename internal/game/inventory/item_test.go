package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

func jerkin() *inventory.Item {
	return &inventory.Item{
		InstanceID: "item_1",
		Name:       "Adventurer's Jerkin",
		Slot:       inventory.SlotChest,
		Type:       "leather",
		Rarity:     inventory.RarityMundane,
		NetValue:   10,
		Cost:       15,
		BaseStats:  ruleset.StatMap{},
	}
}

func TestItem_EffectiveStats_NoCoresEqualsBase(t *testing.T) {
	it := jerkin()
	it.BaseStats["str"] = 1
	assert.Equal(t, ruleset.StatMap{"str": 1}, it.EffectiveStats())
}

func TestItem_EffectiveStats_AddsCores(t *testing.T) {
	it := jerkin()
	it.BaseStats["str"] = 1
	require.NoError(t, it.Socket(newCore("c1", "brutal", "ember", ruleset.StatMap{"str": 1, "patk": 5})))
	require.NoError(t, it.Socket(newCore("c2", "guarded", "ember", ruleset.StatMap{"pdef": 5})))

	assert.Equal(t, ruleset.StatMap{"str": 2, "patk": 5, "pdef": 5}, it.EffectiveStats())
	assert.Equal(t, ruleset.StatMap{"str": 1}, it.BaseStats, "base stats must not be touched by cores")
}

func TestItem_EffectiveStats_ReturnsFreshMap(t *testing.T) {
	it := jerkin()
	it.BaseStats["str"] = 1
	got := it.EffectiveStats()
	got["str"] = 99
	assert.Equal(t, 1.0, it.BaseStats["str"])
	assert.Equal(t, 1.0, it.EffectiveStats()["str"])
}

func TestItem_DPS(t *testing.T) {
	sword := &inventory.Item{IsWeapon: true, Damage: 12, AttackSpeed: 1.5}
	assert.InDelta(t, 8.0, sword.DPS(), 1e-9)
	assert.Equal(t, 0.0, jerkin().DPS())
}

func TestItem_Description_ArmorWithoutStats(t *testing.T) {
	want := []string{
		"[MUNDANE] Adventurer's Jerkin",
		"Slot: CHEST",
		"Type: leather",
		"--- STATS ---",
		"(No Stats)",
		"---",
		"Value: 15g",
		"Sockets: 0 / 6",
	}
	assert.Equal(t, want, jerkin().Description())
}

func TestItem_Description_WeaponWithCore(t *testing.T) {
	sword := &inventory.Item{
		InstanceID:  "item_2",
		Name:        "Adventurer's Longsword",
		Slot:        inventory.SlotWeapon,
		Type:        "longsword",
		Rarity:      inventory.RarityRare,
		NetValue:    24,
		Cost:        36,
		BaseStats:   ruleset.StatMap{"patk": 12},
		IsWeapon:    true,
		Damage:      19,
		AttackSpeed: 1.2,
	}
	require.NoError(t, sword.Socket(newCore("c1", "brutal", "ember", ruleset.StatMap{"str": 1})))

	want := []string{
		"[RARE] Adventurer's Longsword",
		"Damage: 19",
		"Speed: 1.2",
		"DPS: 15.8",
		"--- STATS ---",
		"+12 PATK",
		"+1 STR",
		"--- CORES ---",
		"[O] brutal ember",
		"---",
		"Value: 36g",
		"Sockets: 1 / 6",
	}
	assert.Equal(t, want, sword.Description())
}

func TestCore_Description(t *testing.T) {
	c := newCore("c1", "Brutal", "Ember", ruleset.StatMap{"patk": 5, "str": 1})
	want := []string{
		"[CORE] Brutal Ember",
		"---",
		"+5 PATK",
		"+1 STR",
		"---",
		"Can be socketed into Equipment.",
	}
	assert.Equal(t, want, c.Description())
}

// TestProperty_EffectiveStats_IndependentOfSocketOrder verifies that the
// effective stats depend only on the set of socketed cores.
func TestProperty_EffectiveStats_IndependentOfSocketOrder(t *testing.T) {
	keys := []string{"str", "dex", "patk", "max_hp"}
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, inventory.MaxSockets).Draw(rt, "n")
		cores := make([]*inventory.Core, n)
		for i := range cores {
			stats := ruleset.StatMap{}
			for _, k := range keys {
				stats[k] = float64(rapid.IntRange(-20, 20).Draw(rt, fmt.Sprintf("core%d_%s", i, k)))
			}
			cores[i] = newCore(fmt.Sprintf("c%d", i), fmt.Sprintf("p%d", i), "s", stats)
		}
		perm := rapid.Permutation(cores).Draw(rt, "perm")

		a, b := jerkin(), jerkin()
		for i := range cores {
			if err := a.Socket(cores[i]); err != nil {
				rt.Fatalf("socket a: %v", err)
			}
			if err := b.Socket(perm[i]); err != nil {
				rt.Fatalf("socket b: %v", err)
			}
		}
		if got, want := b.EffectiveStats(), a.EffectiveStats(); !assert.ObjectsAreEqual(want, got) {
			rt.Fatalf("effective stats differ: %v vs %v", want, got)
		}
	})
}
