package character

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/pkg/idgen"
)

// startingStats is the stat count forced on every starting-kit item.
const startingStats = 1

// Factory builds new characters wearing their archetype's starting kit.
type Factory struct {
	items  *inventory.ItemGenerator
	ids    idgen.Generator
	logger *zap.Logger
}

// NewFactory creates a Factory.
//
// Precondition: items and ids must not be nil. A nil logger disables logging.
func NewFactory(items *inventory.ItemGenerator, ids idgen.Generator, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{items: items, ids: ids, logger: logger}
}

// Create builds a level 1 character of archetypeID looked up in src. Each kit
// armor slot receives the first family entry targeting it, and the weapon slot
// the first entry of the kit's weapon subtype, all mundane with one stat.
//
// Precondition: src must not be nil.
// Postcondition: returns an error wrapping ruleset.ErrUnknownArchetype if the
// archetype is absent. If the kit family cannot be resolved the bare character
// is returned with a nil error.
func (f *Factory) Create(name, archetypeID string, src ruleset.ArchetypeSource) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	arch, ok := src.Archetype(archetypeID)
	if !ok {
		return nil, fmt.Errorf("creating character %q: archetype %q: %w", name, archetypeID, ruleset.ErrUnknownArchetype)
	}

	ch := New(f.ids.Generate(), name, arch.ID, f.logger)
	kit := arch.StartingKit
	fam, ok := f.items.Registry().Family(kit.PrefixID)
	if !ok {
		f.logger.Warn("starting kit prefix not found",
			zap.String("archetype", arch.ID),
			zap.String("prefix", kit.PrefixID),
		)
		return ch, nil
	}

	for _, slot := range kit.ArmorSlots {
		f.equipKitPiece(ch, fam, fam.IndexBySlot(inventory.Slot(slot)), "slot", slot)
	}
	f.equipKitPiece(ch, fam, fam.IndexByType(kit.WeaponSubtype), "weapon_subtype", kit.WeaponSubtype)

	f.logger.Info("character created",
		zap.String("id", ch.ID),
		zap.String("name", name),
		zap.String("archetype", arch.ID),
		zap.Int("equipped", len(ch.EquippedItems())),
	)
	return ch, nil
}

// equipKitPiece generates family entry idx and equips it on ch. Missing
// entries and generation failures skip the piece.
func (f *Factory) equipKitPiece(ch *Character, fam *inventory.FamilyDef, idx int, key, value string) {
	if idx < 0 {
		f.logger.Debug("starting kit entry not in family",
			zap.String("family", fam.ID),
			zap.String(key, value),
		)
		return
	}
	it, err := f.items.Generate(fam.ID, idx, inventory.RarityMundane, inventory.ForceStats(startingStats))
	if err != nil {
		f.logger.Warn("starting kit item skipped", zap.String(key, value), zap.Error(err))
		return
	}
	if err := ch.equipStarting(it); err != nil {
		f.logger.Warn("starting kit item skipped", zap.String(key, value), zap.Error(err))
	}
}
