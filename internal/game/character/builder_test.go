package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/gearforge/internal/game/character"
	"github.com/cory-johannsen/gearforge/internal/game/dice"
	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/pkg/idgen"
)

func loadCatalog(t *testing.T) *ruleset.Catalog {
	t.Helper()
	c, err := ruleset.LoadCatalog("../../../content/archetypes")
	require.NoError(t, err)
	return c
}

func loadRegistry(t *testing.T) *inventory.Registry {
	t.Helper()
	reg, err := inventory.LoadRegistry(inventory.ContentFiles{
		FamiliesDir:      "../../../content/families",
		RulesFile:        "../../../content/rules/equipment.yaml",
		CorePrefixesFile: "../../../content/cores/prefixes.yaml",
		CoreSuffixesFile: "../../../content/cores/suffixes.yaml",
	})
	require.NoError(t, err)
	return reg
}

func newFactory(t *testing.T, logger *zap.Logger) *character.Factory {
	t.Helper()
	items := inventory.NewItemGenerator(loadRegistry(t), dice.NewSeededSource(1), idgen.NewSequential("item"), logger)
	return character.NewFactory(items, idgen.NewSequential("char"), logger)
}

func TestCreate_EquipsStartingKit(t *testing.T) {
	ch, err := newFactory(t, nil).Create("Hero", "martyr", loadCatalog(t))
	require.NoError(t, err)

	assert.Equal(t, "char_1", ch.ID)
	assert.Equal(t, "Hero", ch.Name)
	assert.Equal(t, "martyr", ch.ArchetypeID)
	assert.Equal(t, 1, ch.Level())
	assert.Equal(t, 0, ch.Experience())
	assert.Empty(t, ch.Inventory(), "kit pieces bypass the backpack")

	equipped := ch.EquippedItems()
	require.Len(t, equipped, 4)
	for _, it := range equipped {
		assert.Equal(t, inventory.RarityMundane, it.Rarity, "item %q", it.Name)
		assert.Len(t, it.BaseStats, 1, "item %q", it.Name)
	}
	assert.Equal(t, "Adventurer's Jerkin", ch.Equipped(inventory.SlotChest).Name)
	assert.Equal(t, "Adventurer's Trousers", ch.Equipped(inventory.SlotLegs).Name)
	assert.Equal(t, "Adventurer's Boots", ch.Equipped(inventory.SlotFeet).Name)

	sword := ch.Equipped(inventory.SlotWeapon)
	require.NotNil(t, sword)
	assert.Equal(t, "Adventurer's Longsword", sword.Name)
	assert.Equal(t, 10.0, sword.Damage)
	assert.Equal(t, 10.0, ch.TotalBonuses()[ruleset.StatWeaponDamage])
}

func TestCreate_WeaponFoundBySubtype(t *testing.T) {
	ch, err := newFactory(t, nil).Create("Shade", "stalker", loadCatalog(t))
	require.NoError(t, err)

	dagger := ch.Equipped(inventory.SlotWeapon)
	require.NotNil(t, dagger)
	assert.Equal(t, "dagger", dagger.Type)
	assert.Equal(t, "Adventurer's Dirk", dagger.Name)
}

func TestCreate_UnknownArchetype(t *testing.T) {
	ch, err := newFactory(t, nil).Create("Hero", "ghost", loadCatalog(t))
	require.ErrorIs(t, err, ruleset.ErrUnknownArchetype)
	assert.Nil(t, ch)
}

func TestCreate_EmptyName(t *testing.T) {
	_, err := newFactory(t, nil).Create("", "martyr", loadCatalog(t))
	assert.Error(t, err)
}

func TestCreate_UnresolvedKitPrefixReturnsBareCharacter(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	src := ruleset.NewCatalog()
	require.NoError(t, src.Register(&ruleset.Archetype{
		ID:          "drifter",
		Name:        "Drifter",
		StartingKit: ruleset.StartingKit{PrefixID: "nope", ArmorSlots: []string{"chest"}, WeaponSubtype: "dagger"},
	}))

	ch, err := newFactory(t, zap.New(obs)).Create("Wanderer", "drifter", src)
	require.NoError(t, err)
	assert.Empty(t, ch.EquippedItems())
	assert.Equal(t, 0, ch.RecordCount())
	assert.Equal(t, 1, logs.FilterMessage("starting kit prefix not found").Len())
}

func TestCreate_SourceOverride(t *testing.T) {
	f := newFactory(t, nil)
	override := ruleset.NewCatalog()
	require.NoError(t, override.Register(&ruleset.Archetype{
		ID:          "martyr",
		Name:        "Martyr (edited)",
		StartingKit: ruleset.StartingKit{PrefixID: "adventurer", ArmorSlots: []string{"head"}},
	}))

	ch, err := f.Create("Hero", "martyr", override)
	require.NoError(t, err)
	require.Len(t, ch.EquippedItems(), 1)
	assert.Equal(t, "Adventurer's Cap", ch.Equipped(inventory.SlotHead).Name)
}
