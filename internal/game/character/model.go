// Package character defines the character entity, its equip and socketing
// transitions, bonus aggregation and the factory that builds starting characters.
package character

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/game/stats"
)

var (
	// ErrItemNotFound is returned when a referenced record is not held by the character.
	ErrItemNotFound = errors.New("item not found")
	// ErrNotWearable is returned when equipping a record that is not gear.
	ErrNotWearable = errors.New("record is not wearable")
	// ErrNotSocketable is returned when socketing a record that is not a core.
	ErrNotSocketable = errors.New("record is not a core")
	// ErrInvalidSlot is returned when a slot is not part of the paper doll.
	ErrInvalidSlot = errors.New("invalid equipment slot")
	// ErrAlreadyHeld is returned when a record's UID is already in the
	// backpack, on the paper doll, or socketed into a held item.
	ErrAlreadyHeld = errors.New("record already held")
	// ErrReservedStat is returned when a permanent bonus targets weapon damage.
	ErrReservedStat = errors.New("stat cannot be granted as a permanent bonus")
)

// Character is a player character: archetype reference, progression,
// permanent bonuses, a backpack and a paper doll.
//
// Invariant: every record the character owns is in exactly one of the
// backpack, one equipment slot, or one item's sockets.
type Character struct {
	ID          string
	Name        string
	ArchetypeID string

	mu         sync.Mutex
	level      int
	experience int
	permanent  ruleset.StatMap
	backpack   *inventory.Backpack
	equipment  *inventory.Equipment
	logger     *zap.Logger
}

// New returns a level 1 character with an empty backpack and paper doll.
//
// Precondition: id and archetypeID must be non-empty. A nil logger disables logging.
func New(id, name, archetypeID string, logger *zap.Logger) *Character {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Character{
		ID:          id,
		Name:        name,
		ArchetypeID: archetypeID,
		level:       1,
		permanent:   ruleset.StatMap{},
		backpack:    inventory.NewBackpack(),
		equipment:   inventory.NewEquipment(),
		logger:      logger.With(zap.String("character", id)),
	}
}

// Level returns the current level.
func (c *Character) Level() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// Experience returns the accumulated experience.
func (c *Character) Experience() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.experience
}

// LevelUp advances the character one level and returns the new level.
func (c *Character) LevelUp() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level++
	c.logger.Info("level up", zap.Int("level", c.level))
	return c.level
}

// GainExperience adds amount to the character's experience.
//
// Precondition: amount >= 0.
func (c *Character) GainExperience(amount int) error {
	if amount < 0 {
		return fmt.Errorf("character: experience gain must be >= 0, got %d", amount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.experience += amount
	return nil
}

// AddPermanentBonus adds delta to the permanent bonus for key. Permanent
// bonuses persist independently of gear.
//
// Postcondition: returns ErrReservedStat for the weapon damage key; nothing changes on error.
func (c *Character) AddPermanentBonus(key string, delta float64) error {
	if key == ruleset.StatWeaponDamage {
		return fmt.Errorf("adding permanent bonus %q: %w", key, ErrReservedStat)
	}
	if key == "" {
		return errors.New("character: permanent bonus key must not be empty")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.permanent[key] += delta
	return nil
}

// PermanentBonuses returns a copy of the permanent bonus map.
func (c *Character) PermanentBonuses() ruleset.StatMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.permanent.Clone()
}

// AddItem places rec into the backpack.
//
// Postcondition: returns an error if rec is nil; returns ErrAlreadyHeld if rec,
// or a core socketed into it, shares a UID with anything the character holds.
// Nothing changes on error.
func (c *Character) AddItem(rec inventory.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if inventory.IsNilRecord(rec) {
		return errors.New("character: record must not be nil")
	}
	if err := c.checkNotHeld(rec); err != nil {
		c.logger.Warn("add rejected", zap.String("uid", rec.UID()), zap.Error(err))
		return err
	}
	return c.backpack.Add(rec)
}

// checkNotHeld returns ErrAlreadyHeld if rec or any core socketed into it is
// already owned by the character. c.mu must be held.
func (c *Character) checkNotHeld(rec inventory.Record) error {
	uids := []string{rec.UID()}
	if it, ok := rec.(*inventory.Item); ok {
		for _, core := range it.Cores {
			uids = append(uids, core.InstanceID)
		}
	}
	for _, uid := range uids {
		if c.holds(uid) {
			return fmt.Errorf("adding %q: %w", uid, ErrAlreadyHeld)
		}
	}
	return nil
}

// holds reports whether uid names a backpack record, an equipped item, or a
// core socketed into either. c.mu must be held.
func (c *Character) holds(uid string) bool {
	if _, ok := c.backpack.Find(uid); ok {
		return true
	}
	items := append(c.backpack.Items(), c.equipment.Equipped()...)
	for _, it := range items {
		if it.InstanceID == uid {
			return true
		}
		for _, core := range it.Cores {
			if core.InstanceID == uid {
				return true
			}
		}
	}
	return false
}

// Inventory returns a snapshot of the backpack in insertion order.
func (c *Character) Inventory() []inventory.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backpack.Records()
}

// Equipped returns the item in slot s, or nil.
func (c *Character) Equipped(s inventory.Slot) *inventory.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.equipment.Occupant(s)
}

// EquippedItems returns every equipped item in slot display order.
func (c *Character) EquippedItems() []*inventory.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.equipment.Equipped()
}

// RecordCount returns the number of top-level records owned: backpack
// records plus equipped items. Socketed cores are counted with their item.
func (c *Character) RecordCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backpack.Len() + len(c.equipment.Equipped())
}

// EquipItem moves the item with the given UID from the backpack into its
// target slot. A displaced occupant goes back into the backpack.
//
// Postcondition: on error nothing changes and the rejection is logged at warn;
// errors wrap ErrItemNotFound, ErrNotWearable, ErrInvalidSlot or ErrAlreadyHeld.
func (c *Character) EquipItem(uid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.backpack.Find(uid)
	if !ok {
		return c.rejectEquip(uid, ErrItemNotFound)
	}
	it, ok := rec.(*inventory.Item)
	if !ok {
		return c.rejectEquip(uid, ErrNotWearable)
	}
	if !inventory.IsValidSlot(it.Slot) {
		return c.rejectEquip(uid, fmt.Errorf("%w %q", ErrInvalidSlot, it.Slot))
	}
	if occ := c.equipment.Occupant(it.Slot); occ != nil {
		if _, clash := c.backpack.Find(occ.InstanceID); clash {
			return c.rejectEquip(uid, fmt.Errorf("displacing %q: %w", occ.InstanceID, ErrAlreadyHeld))
		}
	}

	if _, err := c.backpack.Remove(uid); err != nil {
		return err
	}
	prev, err := c.equipment.Place(it.Slot, it)
	if err != nil {
		_ = c.backpack.Add(it)
		return err
	}
	if prev != nil {
		if err := c.backpack.Add(prev); err != nil {
			return err
		}
	}
	c.logger.Debug("item equipped",
		zap.String("uid", uid),
		zap.String("slot", string(it.Slot)),
		zap.Bool("displaced", prev != nil),
	)
	return nil
}

func (c *Character) rejectEquip(uid string, reason error) error {
	c.logger.Warn("equip rejected", zap.String("uid", uid), zap.Error(reason))
	return fmt.Errorf("equipping %q: %w", uid, reason)
}

// UnequipSlot moves the occupant of s into the backpack. An empty slot is a no-op.
//
// Postcondition: Equipped(s) == nil on success; returns ErrInvalidSlot for unknown slots.
func (c *Character) UnequipSlot(s inventory.Slot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !inventory.IsValidSlot(s) {
		c.logger.Warn("unequip rejected", zap.String("slot", string(s)), zap.Error(ErrInvalidSlot))
		return fmt.Errorf("unequipping %q: %w", s, ErrInvalidSlot)
	}
	it := c.equipment.Occupant(s)
	if it == nil {
		return nil
	}
	if err := c.backpack.Add(it); err != nil {
		return err
	}
	c.equipment.Clear(s)
	c.logger.Debug("item unequipped", zap.String("uid", it.InstanceID), zap.String("slot", string(s)))
	return nil
}

// findItem locates a gear record in the backpack or on the paper doll.
func (c *Character) findItem(uid string) (*inventory.Item, error) {
	if rec, ok := c.backpack.Find(uid); ok {
		it, ok := rec.(*inventory.Item)
		if !ok {
			return nil, fmt.Errorf("%q: %w", uid, ErrNotWearable)
		}
		return it, nil
	}
	if _, it, ok := c.equipment.Find(uid); ok {
		return it, nil
	}
	return nil, fmt.Errorf("%q: %w", uid, ErrItemNotFound)
}

// SocketCore moves the core coreUID from the backpack into the item itemUID,
// which may be carried or equipped.
//
// Postcondition: on error nothing changes; socket failures wrap
// inventory.ErrSocketsFull or inventory.ErrDuplicateCoreKind.
func (c *Character) SocketCore(itemUID, coreUID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, err := c.findItem(itemUID)
	if err != nil {
		return c.rejectSocket(itemUID, coreUID, err)
	}
	rec, ok := c.backpack.Find(coreUID)
	if !ok {
		return c.rejectSocket(itemUID, coreUID, fmt.Errorf("core %q: %w", coreUID, ErrItemNotFound))
	}
	core, ok := rec.(*inventory.Core)
	if !ok {
		return c.rejectSocket(itemUID, coreUID, fmt.Errorf("%q: %w", coreUID, ErrNotSocketable))
	}
	if err := it.Socket(core); err != nil {
		return c.rejectSocket(itemUID, coreUID, err)
	}
	if _, err := c.backpack.Remove(coreUID); err != nil {
		return err
	}
	c.logger.Debug("core socketed", zap.String("item", itemUID), zap.String("core", coreUID))
	return nil
}

// UnsocketCore removes the core coreUID from the item itemUID and returns it
// to the backpack.
//
// Postcondition: on error nothing changes; a missing core wraps inventory.ErrCoreNotFound.
func (c *Character) UnsocketCore(itemUID, coreUID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, err := c.findItem(itemUID)
	if err != nil {
		return c.rejectSocket(itemUID, coreUID, err)
	}
	if _, held := c.backpack.Find(coreUID); held {
		return c.rejectSocket(itemUID, coreUID, fmt.Errorf("core %q is already in the backpack", coreUID))
	}
	core, err := it.Unsocket(coreUID)
	if err != nil {
		return c.rejectSocket(itemUID, coreUID, err)
	}
	if err := c.backpack.Add(core); err != nil {
		return err
	}
	c.logger.Debug("core unsocketed", zap.String("item", itemUID), zap.String("core", coreUID))
	return nil
}

func (c *Character) rejectSocket(itemUID, coreUID string, reason error) error {
	c.logger.Warn("socket change rejected",
		zap.String("item", itemUID),
		zap.String("core", coreUID),
		zap.Error(reason),
	)
	return fmt.Errorf("changing sockets of %q: %w", itemUID, reason)
}

// TotalBonuses returns permanent bonuses plus the effective stats of every
// equipped item. The weapon damage key carries the summed damage of equipped
// weapons and nothing else.
//
// Postcondition: the result is freshly computed; the character is not modified.
func (c *Character) TotalBonuses() ruleset.StatMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalBonuses()
}

// totalBonuses is TotalBonuses without locking. c.mu must be held.
func (c *Character) totalBonuses() ruleset.StatMap {
	totals := c.permanent.Clone()
	for _, it := range c.equipment.Equipped() {
		totals.AddAll(it.EffectiveStats())
		if it.IsWeapon {
			totals[ruleset.StatWeaponDamage] += it.Damage
		}
	}
	return totals
}

// CurrentStats computes the character's stat sheet with calc.
//
// Postcondition: returns an error wrapping ruleset.ErrUnknownArchetype if the
// character's archetype is unknown to calc.
func (c *Character) CurrentStats(calc *stats.Calculator) (*stats.Sheet, error) {
	c.mu.Lock()
	level, bonuses := c.level, c.totalBonuses()
	c.mu.Unlock()
	return calc.Compute(c.ArchetypeID, level, bonuses)
}

// equipStarting places it straight onto the paper doll, bypassing the backpack.
func (c *Character) equipStarting(it *inventory.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkNotHeld(it); err != nil {
		return err
	}
	if occ := c.equipment.Occupant(it.Slot); occ != nil {
		if _, clash := c.backpack.Find(occ.InstanceID); clash {
			return fmt.Errorf("displacing %q: %w", occ.InstanceID, ErrAlreadyHeld)
		}
	}
	prev, err := c.equipment.Place(it.Slot, it)
	if err != nil {
		return err
	}
	if prev != nil {
		return c.backpack.Add(prev)
	}
	return nil
}
