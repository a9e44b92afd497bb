package inventory

import (
	"errors"
	"fmt"
	"sort"
)

// Registry holds the loaded item families, core prefixes and suffixes, and
// the equipment rules they are generated with.
type Registry struct {
	families map[string]*FamilyDef
	prefixes map[string]*CorePrefixDef
	suffixes map[string]*CoreSuffixDef
	rules    *EquipmentRules
}

// NewRegistry returns an empty Registry using rules.
//
// Precondition: rules must not be nil.
// Postcondition: all internal maps are initialised.
func NewRegistry(rules *EquipmentRules) *Registry {
	return &Registry{
		families: make(map[string]*FamilyDef),
		prefixes: make(map[string]*CorePrefixDef),
		suffixes: make(map[string]*CoreSuffixDef),
		rules:    rules,
	}
}

// Rules returns the equipment rules.
func (r *Registry) Rules() *EquipmentRules {
	return r.rules
}

// RegisterFamily adds f to the registry.
//
// Precondition:  f must not be nil.
// Postcondition: Family(f.ID) returns (f, true); returns error if f.ID already registered.
func (r *Registry) RegisterFamily(f *FamilyDef) error {
	if _, exists := r.families[f.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterFamily: family ID %q already registered", f.ID)
	}
	r.families[f.ID] = f
	return nil
}

// RegisterCorePrefix adds p to the registry.
//
// Precondition:  p must not be nil.
// Postcondition: CorePrefix(p.ID) returns (p, true); returns error if p.ID already registered.
func (r *Registry) RegisterCorePrefix(p *CorePrefixDef) error {
	if _, exists := r.prefixes[p.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterCorePrefix: prefix ID %q already registered", p.ID)
	}
	r.prefixes[p.ID] = p
	return nil
}

// RegisterCoreSuffix adds s to the registry.
//
// Precondition:  s must not be nil.
// Postcondition: CoreSuffix(s.ID) returns (s, true); returns error if s.ID already registered.
func (r *Registry) RegisterCoreSuffix(s *CoreSuffixDef) error {
	if _, exists := r.suffixes[s.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterCoreSuffix: suffix ID %q already registered", s.ID)
	}
	r.suffixes[s.ID] = s
	return nil
}

// Family returns the FamilyDef for id and whether it was found.
func (r *Registry) Family(id string) (*FamilyDef, bool) {
	f, ok := r.families[id]
	return f, ok
}

// CorePrefix returns the CorePrefixDef for id and whether it was found.
func (r *Registry) CorePrefix(id string) (*CorePrefixDef, bool) {
	p, ok := r.prefixes[id]
	return p, ok
}

// CoreSuffix returns the CoreSuffixDef for id and whether it was found.
func (r *Registry) CoreSuffix(id string) (*CoreSuffixDef, bool) {
	s, ok := r.suffixes[id]
	return s, ok
}

// FamilyIDs returns all registered family IDs in lexical order.
func (r *Registry) FamilyIDs() []string {
	return sortedKeys(r.families)
}

// CorePrefixIDs returns all registered core prefix IDs in lexical order.
func (r *Registry) CorePrefixIDs() []string {
	return sortedKeys(r.prefixes)
}

// CoreSuffixIDs returns all registered core suffix IDs in lexical order.
func (r *Registry) CoreSuffixIDs() []string {
	return sortedKeys(r.suffixes)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate cross-checks families against the rules: every content type must
// be a known material or weapon subtype, and weapon subtypes must target the
// weapon slot.
//
// Postcondition: Returns nil iff every family resolves against the rules.
func (r *Registry) Validate() error {
	var errs []error
	for _, id := range r.FamilyIDs() {
		f := r.families[id]
		for i, c := range f.Contents {
			_, isMaterial := r.rules.MaterialMults[c.Type]
			_, isSubtype := r.rules.SubtypeData[c.Type]
			switch {
			case !isMaterial && !isSubtype:
				errs = append(errs, fmt.Errorf("family %q contents[%d]: unknown type %q", id, i, c.Type))
			case isSubtype && c.Slot != SlotWeapon:
				errs = append(errs, fmt.Errorf("family %q contents[%d]: weapon subtype %q must target slot %q", id, i, c.Type, SlotWeapon))
			case isMaterial && c.Slot == SlotWeapon:
				errs = append(errs, fmt.Errorf("family %q contents[%d]: material %q cannot target slot %q", id, i, c.Type, SlotWeapon))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed: %v", errs)
	}
	return nil
}

// ContentFiles locates the YAML content a Registry is loaded from.
type ContentFiles struct {
	FamiliesDir      string
	RulesFile        string
	CorePrefixesFile string
	CoreSuffixesFile string
}

// LoadRegistry loads rules, families, core prefixes and suffixes and returns a
// validated Registry.
//
// Precondition: every path in files must be readable.
// Postcondition: Returns a Registry passing Validate, or the first error encountered.
func LoadRegistry(files ContentFiles) (*Registry, error) {
	rules, err := LoadEquipmentRules(files.RulesFile)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry(rules)

	families, err := LoadFamilies(files.FamiliesDir)
	if err != nil {
		return nil, err
	}
	prefixes, err := LoadCorePrefixes(files.CorePrefixesFile)
	if err != nil {
		return nil, err
	}
	suffixes, err := LoadCoreSuffixes(files.CoreSuffixesFile)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, f := range families {
		errs = append(errs, reg.RegisterFamily(f))
	}
	for _, p := range prefixes {
		errs = append(errs, reg.RegisterCorePrefix(p))
	}
	for _, s := range suffixes {
		errs = append(errs, reg.RegisterCoreSuffix(s))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}
