package ruleset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownArchetype is returned when an archetype id is not in the catalog.
var ErrUnknownArchetype = errors.New("unknown archetype")

// ArchetypeSource is a read-only lookup of archetypes by id.
type ArchetypeSource interface {
	// Archetype returns the archetype registered under id.
	//
	// Postcondition: ok is true iff id is known.
	Archetype(id string) (*Archetype, bool)
}

// Catalog holds loaded archetypes indexed by ID.
type Catalog struct {
	archetypes map[string]*Archetype
}

// NewCatalog returns an empty Catalog.
//
// Postcondition: Returns a non-nil *Catalog ready to accept registrations.
func NewCatalog() *Catalog {
	return &Catalog{archetypes: make(map[string]*Archetype)}
}

// Register adds a to the catalog.
//
// Precondition: a must not be nil.
// Postcondition: Archetype(a.ID) returns a; returns error if a.ID already registered.
func (c *Catalog) Register(a *Archetype) error {
	if a == nil {
		return errors.New("ruleset: Catalog.Register: archetype must not be nil")
	}
	if _, exists := c.archetypes[a.ID]; exists {
		return fmt.Errorf("ruleset: Catalog.Register: archetype ID %q already registered", a.ID)
	}
	c.archetypes[a.ID] = a
	return nil
}

// Archetype returns the archetype for id and whether it was found.
func (c *Catalog) Archetype(id string) (*Archetype, bool) {
	a, ok := c.archetypes[id]
	return a, ok
}

// IDs returns all registered archetype IDs in lexical order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.archetypes))
	for id := range c.archetypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadCatalog loads every archetype in dir into a new Catalog.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns a populated Catalog or the first load/registration error.
func LoadCatalog(dir string) (*Catalog, error) {
	archetypes, err := LoadArchetypes(dir)
	if err != nil {
		return nil, err
	}
	c := NewCatalog()
	for _, a := range archetypes {
		if err := c.Register(a); err != nil {
			return nil, err
		}
	}
	return c, nil
}
