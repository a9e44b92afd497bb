package inventory

import (
	"errors"
	"fmt"
)

// MaxSockets is the maximum number of cores one item can hold.
const MaxSockets = 6

var (
	// ErrSocketsFull is returned when an item already holds MaxSockets cores.
	ErrSocketsFull = errors.New("sockets full")
	// ErrDuplicateCoreKind is returned when an item already holds a core of the same kind.
	ErrDuplicateCoreKind = errors.New("duplicate core kind")
	// ErrCoreNotFound is returned when unsocketing a core the item does not hold.
	ErrCoreNotFound = errors.New("core not found")
)

// CanSocket reports why c could not be socketed into it, or nil if it could.
//
// Postcondition: it is not modified.
func (it *Item) CanSocket(c *Core) error {
	if c == nil {
		return errors.New("inventory: Item.Socket: core must not be nil")
	}
	if len(it.Cores) >= MaxSockets {
		return fmt.Errorf("socketing %q into %q: %w", c.Name, it.Name, ErrSocketsFull)
	}
	for _, existing := range it.Cores {
		if existing.SameKind(c) {
			return fmt.Errorf("socketing %q into %q: %w", c.Name, it.Name, ErrDuplicateCoreKind)
		}
	}
	return nil
}

// Socket appends c to the item's cores.
//
// Precondition: c must not be nil.
// Postcondition: on success c is the last element of Cores; on error Cores is unchanged.
func (it *Item) Socket(c *Core) error {
	if err := it.CanSocket(c); err != nil {
		return err
	}
	it.Cores = append(it.Cores, c)
	return nil
}

// Unsocket removes the core with the given instance ID and returns it so the
// caller can place it back in a backpack.
//
// Postcondition: on success the remaining cores keep their relative order;
// on error Cores is unchanged.
func (it *Item) Unsocket(coreUID string) (*Core, error) {
	for i, c := range it.Cores {
		if c.InstanceID != coreUID {
			continue
		}
		remaining := make([]*Core, 0, len(it.Cores)-1)
		remaining = append(remaining, it.Cores[:i]...)
		remaining = append(remaining, it.Cores[i+1:]...)
		it.Cores = remaining
		return c, nil
	}
	return nil, fmt.Errorf("unsocketing %q from %q: %w", coreUID, it.Name, ErrCoreNotFound)
}
