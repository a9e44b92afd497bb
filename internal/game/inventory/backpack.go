package inventory

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned when a backpack does not hold the requested record.
var ErrRecordNotFound = errors.New("record not found")

// Backpack is an unordered collection of carried records, each uniquely identified.
//
// Invariant: no two records share a UID.
type Backpack struct {
	records []Record
}

// NewBackpack returns an empty Backpack.
func NewBackpack() *Backpack {
	return &Backpack{}
}

// Add places rec into the backpack.
//
// Precondition: rec must not be nil.
// Postcondition: Find(rec.UID()) returns rec; returns an error if a record
// with the same UID is already held.
func (b *Backpack) Add(rec Record) error {
	if IsNilRecord(rec) {
		return errors.New("backpack: record must not be nil")
	}
	if _, ok := b.Find(rec.UID()); ok {
		return fmt.Errorf("backpack: record %q already present", rec.UID())
	}
	b.records = append(b.records, rec)
	return nil
}

// IsNilRecord reports whether rec is nil, including a typed nil *Item or *Core.
func IsNilRecord(rec Record) bool {
	switch r := rec.(type) {
	case nil:
		return true
	case *Item:
		return r == nil
	case *Core:
		return r == nil
	default:
		return false
	}
}

// Remove takes the record with the given UID out of the backpack and returns it.
//
// Postcondition: on success Find(uid) is false; on error the backpack is unchanged.
func (b *Backpack) Remove(uid string) (Record, error) {
	for i, rec := range b.records {
		if rec.UID() == uid {
			b.records = append(b.records[:i], b.records[i+1:]...)
			return rec, nil
		}
	}
	return nil, fmt.Errorf("backpack: instance %q: %w", uid, ErrRecordNotFound)
}

// Find returns the record with the given UID and whether it was found.
func (b *Backpack) Find(uid string) (Record, bool) {
	for _, rec := range b.records {
		if rec.UID() == uid {
			return rec, true
		}
	}
	return nil, false
}

// Records returns a snapshot copy of all records in insertion order.
//
// Postcondition: returned slice is a copy; mutations do not affect the backpack.
func (b *Backpack) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Len returns the number of records held.
func (b *Backpack) Len() int {
	return len(b.records)
}

// Items returns every gear record held, in insertion order.
func (b *Backpack) Items() []*Item {
	var out []*Item
	for _, rec := range b.records {
		if it, ok := rec.(*Item); ok {
			out = append(out, it)
		}
	}
	return out
}

// Cores returns every loose core held, in insertion order.
func (b *Backpack) Cores() []*Core {
	var out []*Core
	for _, rec := range b.records {
		if c, ok := rec.(*Core); ok {
			out = append(out, c)
		}
	}
	return out
}
