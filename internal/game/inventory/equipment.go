package inventory

import "fmt"

// Slot identifies a paper-doll equipment slot.
type Slot string

const (
	// SlotHead is the head armor slot.
	SlotHead Slot = "head"
	// SlotShoulders is the shoulders armor slot.
	SlotShoulders Slot = "shoulders"
	// SlotChest is the chest armor slot.
	SlotChest Slot = "chest"
	// SlotArms is the arms armor slot.
	SlotArms Slot = "arms"
	// SlotHands is the hands armor slot.
	SlotHands Slot = "hands"
	// SlotWaist is the waist armor slot.
	SlotWaist Slot = "waist"
	// SlotLegs is the legs armor slot.
	SlotLegs Slot = "legs"
	// SlotFeet is the feet armor slot.
	SlotFeet Slot = "feet"
	// SlotWeapon is the single weapon slot. Every weapon targets it.
	SlotWeapon Slot = "weapon"
)

// slotOrder is the closed set of paper-doll slots in display order.
var slotOrder = []Slot{
	SlotHead,
	SlotShoulders,
	SlotChest,
	SlotArms,
	SlotHands,
	SlotWaist,
	SlotLegs,
	SlotFeet,
	SlotWeapon,
}

// slotDisplayNames maps every slot identifier to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotHead:      "Head",
	SlotShoulders: "Shoulders",
	SlotChest:     "Chest",
	SlotArms:      "Arms",
	SlotHands:     "Hands",
	SlotWaist:     "Waist",
	SlotLegs:      "Legs",
	SlotFeet:      "Feet",
	SlotWeapon:    "Weapon",
}

// Slots returns every paper-doll slot in display order.
//
// Postcondition: the returned slice is a copy.
func Slots() []Slot {
	out := make([]Slot, len(slotOrder))
	copy(out, slotOrder)
	return out
}

// IsValidSlot reports whether s is one of the paper-doll slots.
func IsValidSlot(s Slot) bool {
	_, ok := slotDisplayNames[s]
	return ok
}

// SlotDisplayName returns the human-readable label for a slot identifier.
//
// Postcondition: returns the registered label, or the slot itself if not found.
func SlotDisplayName(s Slot) string {
	if label, ok := slotDisplayNames[s]; ok {
		return label
	}
	return string(s)
}

// Equipment is a character's paper doll: every slot holds at most one item.
//
// Invariant: the key set of slots is exactly Slots(); unknown slots are rejected.
type Equipment struct {
	slots map[Slot]*Item
}

// NewEquipment returns an Equipment with every slot empty.
//
// Postcondition: Occupant(s) == nil for all s in Slots().
func NewEquipment() *Equipment {
	e := &Equipment{slots: make(map[Slot]*Item, len(slotOrder))}
	for _, s := range slotOrder {
		e.slots[s] = nil
	}
	return e
}

// Occupant returns the item in slot s, or nil if the slot is empty or unknown.
func (e *Equipment) Occupant(s Slot) *Item {
	return e.slots[s]
}

// Place puts it into slot s and returns the previous occupant, if any.
//
// Precondition: it must not be nil.
// Postcondition: on success Occupant(s) == it; on error nothing changes.
func (e *Equipment) Place(s Slot, it *Item) (*Item, error) {
	if _, ok := e.slots[s]; !ok {
		return nil, fmt.Errorf("inventory: Equipment.Place: unknown slot %q", s)
	}
	if it == nil {
		return nil, fmt.Errorf("inventory: Equipment.Place: item must not be nil")
	}
	prev := e.slots[s]
	e.slots[s] = it
	return prev, nil
}

// Clear empties slot s and returns its previous occupant, or nil.
//
// Postcondition: Occupant(s) == nil.
func (e *Equipment) Clear(s Slot) *Item {
	prev := e.slots[s]
	if _, ok := e.slots[s]; ok {
		e.slots[s] = nil
	}
	return prev
}

// Equipped returns every occupied slot's item in display order.
func (e *Equipment) Equipped() []*Item {
	var out []*Item
	for _, s := range slotOrder {
		if it := e.slots[s]; it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the slot holding the item with the given instance ID.
//
// Postcondition: ok is true iff some slot holds the item.
func (e *Equipment) Find(uid string) (Slot, *Item, bool) {
	for _, s := range slotOrder {
		if it := e.slots[s]; it != nil && it.InstanceID == uid {
			return s, it, true
		}
	}
	return "", nil, false
}
