package inventory

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gearforge/internal/game/dice"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/pkg/idgen"
)

// ErrUnresolvedTemplate is returned when a generator cannot find a referenced
// family, content entry, rarity, prefix or suffix.
var ErrUnresolvedTemplate = errors.New("unresolved template")

// MaxRolledStats is the upper bound of the random stat count roll.
const MaxRolledStats = 4

// ForceStats returns a forced stat count for Generate.
func ForceStats(n int) *int { return &n }

// ItemGenerator produces gear records from family templates.
type ItemGenerator struct {
	reg    *Registry
	src    dice.Source
	ids    idgen.Generator
	logger *zap.Logger
}

// NewItemGenerator creates an ItemGenerator.
//
// Precondition: reg, src and ids must not be nil. A nil logger disables logging.
func NewItemGenerator(reg *Registry, src dice.Source, ids idgen.Generator, logger *zap.Logger) *ItemGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemGenerator{reg: reg, src: src, ids: ids, logger: logger}
}

// Registry returns the registry the generator draws templates from.
func (g *ItemGenerator) Registry() *Registry {
	return g.reg
}

// Generate builds one item from content entry contentIndex of family familyID.
// When forcedStatCount is nil the number of rolled stats is uniform in
// [0, MaxRolledStats].
//
// Postcondition: on success NetValue == ceil(base × rarity × type) and
// len(BaseStats) == the (clamped) stat count; on error the item is nil and
// the error wraps ErrUnresolvedTemplate.
func (g *ItemGenerator) Generate(familyID string, contentIndex int, rarity Rarity, forcedStatCount *int) (*Item, error) {
	fam, ok := g.reg.Family(familyID)
	if !ok {
		return nil, g.unresolved(fmt.Sprintf("unknown family %q", familyID), zap.String("family", familyID))
	}
	if contentIndex < 0 || contentIndex >= len(fam.Contents) {
		return nil, g.unresolved(fmt.Sprintf("content index %d out of range for family %q", contentIndex, familyID),
			zap.String("family", familyID),
			zap.Int("content_index", contentIndex),
			zap.Int("contents", len(fam.Contents)),
		)
	}
	rules := g.reg.Rules()
	rarityMult, ok := rules.RarityMults[rarity]
	if !ok {
		return nil, g.unresolved(fmt.Sprintf("unknown rarity %q", rarity), zap.String("rarity", string(rarity)))
	}
	tmpl := fam.Contents[contentIndex]

	typeMult := 1.0
	var weapon *SubtypeDef
	if m, ok := rules.MaterialMults[tmpl.Type]; ok {
		typeMult = m
	} else if sub, ok := rules.SubtypeData[tmpl.Type]; ok {
		weapon = &sub
		typeMult = sub.ValueMult
	} else {
		g.logger.Debug("type has no multiplier, using 1",
			zap.String("family", familyID),
			zap.String("type", tmpl.Type),
		)
	}

	netValue := math.Ceil(fam.BaseValue * rarityMult * typeMult)
	item := &Item{
		InstanceID: g.ids.Generate(),
		Name:       fam.Name + " " + tmpl.Name,
		Slot:       tmpl.Slot,
		Type:       tmpl.Type,
		Rarity:     rarity,
		NetValue:   netValue,
		Cost:       netValue * fam.CostMod,
		BaseStats:  ruleset.StatMap{},
	}
	if weapon != nil {
		item.IsWeapon = true
		item.Slot = SlotWeapon
		item.Damage = math.Round(netValue * weapon.DmgMult)
		item.AttackSpeed = weapon.Speed
	}

	var count int
	if forcedStatCount != nil {
		count = *forcedStatCount
	} else {
		count = g.src.Intn(MaxRolledStats + 1)
	}
	for _, key := range g.pickStats(rules.StatPool(), count) {
		item.BaseStats[key] = netValue * rules.Conversion(key)
	}

	g.logger.Debug("item generated",
		zap.String("uid", item.InstanceID),
		zap.String("name", item.Name),
		zap.String("rarity", string(rarity)),
		zap.Float64("net_value", netValue),
		zap.Int("stats", len(item.BaseStats)),
	)
	return item, nil
}

// GenerateRandom picks a family and content entry uniformly and generates an
// item of the given rarity with a random stat count.
//
// Postcondition: same as Generate; fails with ErrUnresolvedTemplate when no families are registered.
func (g *ItemGenerator) GenerateRandom(rarity Rarity) (*Item, error) {
	ids := g.reg.FamilyIDs()
	if len(ids) == 0 {
		return nil, g.unresolved("no families registered")
	}
	fam, _ := g.reg.Family(ids[g.src.Intn(len(ids))])
	return g.Generate(fam.ID, g.src.Intn(len(fam.Contents)), rarity, nil)
}

// pickStats draws count distinct keys from pool without replacement.
// count is clamped to [0, len(pool)].
func (g *ItemGenerator) pickStats(pool []string, count int) []string {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		j := i + g.src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}

func (g *ItemGenerator) unresolved(msg string, fields ...zap.Field) error {
	g.logger.Warn("item generation failed", append(fields, zap.String("reason", msg))...)
	return fmt.Errorf("generating item: %s: %w", msg, ErrUnresolvedTemplate)
}
