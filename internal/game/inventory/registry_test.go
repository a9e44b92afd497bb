package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
)

// TestRegistry_RegisterFamily_Lookup verifies that a registered FamilyDef can
// be retrieved by ID.
func TestRegistry_RegisterFamily_Lookup(t *testing.T) {
	r := inventory.NewRegistry(testRules())
	def := testFamily()
	if err := r.RegisterFamily(def); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := r.Family(def.ID)
	if !ok {
		t.Fatal("expected family to be found")
	}
	if got != def {
		t.Fatalf("expected the registered def, got %+v", got)
	}
}

// TestRegistry_RegisterFamily_CollisionError verifies that registering two
// families with the same ID returns an error on the second registration.
func TestRegistry_RegisterFamily_CollisionError(t *testing.T) {
	r := inventory.NewRegistry(testRules())
	if err := r.RegisterFamily(testFamily()); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if err := r.RegisterFamily(testFamily()); err == nil {
		t.Fatal("expected collision error on second register, got nil")
	}
}

func TestRegistry_CoreDefs_CollisionError(t *testing.T) {
	r := testRegistry(t)
	assert.Error(t, r.RegisterCorePrefix(&inventory.CorePrefixDef{ID: "brutal"}))
	assert.Error(t, r.RegisterCoreSuffix(&inventory.CoreSuffixDef{ID: "ember"}))
}

func TestRegistry_NotFound(t *testing.T) {
	r := inventory.NewRegistry(testRules())
	_, ok := r.Family("missing")
	assert.False(t, ok)
	_, ok = r.CorePrefix("missing")
	assert.False(t, ok)
	_, ok = r.CoreSuffix("missing")
	assert.False(t, ok)
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := testRegistry(t)
	assert.Equal(t, []string{"adventurer"}, r.FamilyIDs())
	assert.Equal(t, []string{"brutal", "lucid"}, r.CorePrefixIDs())
	assert.Equal(t, []string{"ember", "sigil"}, r.CoreSuffixIDs())
}

func TestRegistry_Validate_UnknownType(t *testing.T) {
	r := inventory.NewRegistry(testRules())
	f := testFamily()
	f.Contents = append(f.Contents, inventory.ContentEntry{Slot: inventory.SlotHead, Type: "mithril", Name: "Crown"})
	require.NoError(t, r.RegisterFamily(f))
	assert.ErrorContains(t, r.Validate(), "unknown type")
}

func TestRegistry_Validate_SubtypeOutsideWeaponSlot(t *testing.T) {
	r := inventory.NewRegistry(testRules())
	f := testFamily()
	f.Contents[2].Slot = inventory.SlotHands
	require.NoError(t, r.RegisterFamily(f))
	assert.ErrorContains(t, r.Validate(), "must target slot")
}

func TestRegistry_Validate_MaterialInWeaponSlot(t *testing.T) {
	r := inventory.NewRegistry(testRules())
	f := testFamily()
	f.Contents[0].Slot = inventory.SlotWeapon
	require.NoError(t, r.RegisterFamily(f))
	assert.ErrorContains(t, r.Validate(), "cannot target slot")
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const rulesYAML = `
rarity_mults:
  mundane: 1
material_mults:
  leather: 1
subtype_data:
  dagger:
    value_mult: 0.9
    dmg_mult: 0.5
    speed: 0.7
stat_conversion:
  str: 0.1
`

const familyYAML = `
id: scout
name: Scout's
family: martial
base_value: 8
cost_mod: 1
contents:
  - slot: hands
    type: leather
    name: Wraps
  - slot: weapon
    type: dagger
    name: Knife
`

const prefixesYAML = `
- id: brutal
  name: Brutal
  family: martial
  stats:
    primary: str
`

const suffixesYAML = `
- id: ember
  name: Ember
  base_value: 10
  families: [martial]
`

func writeContent(t *testing.T) inventory.ContentFiles {
	t.Helper()
	dir := t.TempDir()
	famDir := filepath.Join(dir, "families")
	require.NoError(t, os.Mkdir(famDir, 0o755))
	writeFile(t, famDir, "scout.yaml", familyYAML)
	writeFile(t, famDir, "README.md", "ignored")
	return inventory.ContentFiles{
		FamiliesDir:      famDir,
		RulesFile:        writeFile(t, dir, "equipment.yaml", rulesYAML),
		CorePrefixesFile: writeFile(t, dir, "prefixes.yaml", prefixesYAML),
		CoreSuffixesFile: writeFile(t, dir, "suffixes.yaml", suffixesYAML),
	}
}

func TestLoadRegistry(t *testing.T) {
	reg, err := inventory.LoadRegistry(writeContent(t))
	require.NoError(t, err)

	fam, ok := reg.Family("scout")
	require.True(t, ok)
	assert.Equal(t, 8.0, fam.BaseValue)
	assert.Equal(t, 1, fam.IndexBySlot(inventory.SlotWeapon))
	assert.Equal(t, 1, fam.IndexByType("dagger"))
	assert.Equal(t, -1, fam.IndexBySlot(inventory.SlotHead))

	p, ok := reg.CorePrefix("brutal")
	require.True(t, ok)
	assert.Equal(t, []string{"str"}, p.Stats.Keys())

	s, ok := reg.CoreSuffix("ember")
	require.True(t, ok)
	assert.True(t, s.Accepts("martial"))
	assert.False(t, s.Accepts("arcane"))

	assert.Equal(t, 0.9, reg.Rules().SubtypeData["dagger"].ValueMult)
}

func TestLoadRegistry_DuplicatePrefix(t *testing.T) {
	files := writeContent(t)
	writeFile(t, filepath.Dir(files.CorePrefixesFile), "prefixes.yaml", prefixesYAML+prefixesYAML)
	_, err := inventory.LoadRegistry(files)
	assert.ErrorContains(t, err, "already registered")
}

func TestLoadRegistry_MissingRules(t *testing.T) {
	files := writeContent(t)
	files.RulesFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := inventory.LoadRegistry(files)
	assert.Error(t, err)
}

func TestLoadFamilies_InvalidSlot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", `
id: bad
name: Bad
base_value: 5
contents:
  - slot: tail
    type: leather
    name: Sock
`)
	_, err := inventory.LoadFamilies(dir)
	assert.ErrorContains(t, err, "not a valid equipment slot")
}

func TestLoadEquipmentRules_RequiresMundane(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rules.yaml", `
rarity_mults:
  rare: 2
stat_conversion:
  str: 0.1
`)
	_, err := inventory.LoadEquipmentRules(path)
	assert.ErrorContains(t, err, "rarity_mults.mundane is required")
}

func TestLoadEquipmentRules_MaterialSubtypeClash(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rules.yaml", `
rarity_mults:
  mundane: 1
material_mults:
  staff: 1
subtype_data:
  staff:
    value_mult: 1
    dmg_mult: 1
    speed: 1
stat_conversion:
  str: 0.1
`)
	_, err := inventory.LoadEquipmentRules(path)
	assert.ErrorContains(t, err, "both a material and a weapon subtype")
}

func TestEquipmentRules_Conversion_DefaultsToOne(t *testing.T) {
	r := testRules()
	assert.Equal(t, 0.5, r.Conversion("patk"))
	assert.Equal(t, 1.0, r.Conversion("unlisted"))
	assert.Equal(t, []string{"max_hp", "patk", "str"}, r.StatPool())
}

func TestLoadCoreSuffixes_Invalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "suffixes.yaml", `
- id: hollow
  name: Hollow
  base_value: 0
`)
	_, err := inventory.LoadCoreSuffixes(path)
	assert.ErrorContains(t, err, "base_value must be > 0")
}

func TestLoadCorePrefixes_NoRoles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prefixes.yaml", `
- id: empty
  name: Empty
  family: martial
`)
	_, err := inventory.LoadCorePrefixes(path)
	assert.ErrorContains(t, err, "at least one role")
}
