package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StartingKit names the gear a freshly created character of an archetype wears.
type StartingKit struct {
	// PrefixID is the item family the kit is generated from.
	PrefixID string `yaml:"prefix_id"`
	// ArmorSlots lists the armor slots that receive one item each.
	ArmorSlots []string `yaml:"armor_slots"`
	// WeaponSubtype is the weapon type searched for in the family contents.
	WeaponSubtype string `yaml:"weapon_subtype"`
}

// Archetype defines a character class: base attributes, per-level growth and
// the multipliers relating each attribute to the combat stats it feeds.
//
// Precondition: Validate returns nil after loading.
type Archetype struct {
	ID                 string                           `yaml:"id"`
	Name               string                           `yaml:"name"`
	Description        string                           `yaml:"description"`
	Threat             float64                          `yaml:"threat"`
	BaseAttributes     map[Attribute]float64            `yaml:"base_attributes"`
	AttributeGrowth    map[Attribute]float64            `yaml:"attribute_growth"`
	AttributeRelations map[Attribute]map[string]float64 `yaml:"attribute_relations"`
	StartingKit        StartingKit                      `yaml:"starting_kit"`
}

// Validate reports an error if the Archetype is missing required fields or
// references unknown attributes or combat stats.
//
// Precondition: a is non-nil.
// Postcondition: returns nil iff the archetype is well-formed.
func (a *Archetype) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for _, attr := range Attributes {
		if _, ok := a.BaseAttributes[attr]; !ok {
			errs = append(errs, fmt.Errorf("base_attributes.%s is required", attr))
		}
	}
	for attr := range a.BaseAttributes {
		if !IsAttribute(string(attr)) {
			errs = append(errs, fmt.Errorf("base_attributes: unknown attribute %q", attr))
		}
	}
	for attr, rate := range a.AttributeGrowth {
		if !IsAttribute(string(attr)) {
			errs = append(errs, fmt.Errorf("attribute_growth: unknown attribute %q", attr))
		}
		if rate < 0 {
			errs = append(errs, fmt.Errorf("attribute_growth.%s must be >= 0", attr))
		}
	}
	for attr, rel := range a.AttributeRelations {
		if !IsAttribute(string(attr)) {
			errs = append(errs, fmt.Errorf("attribute_relations: unknown attribute %q", attr))
		}
		for stat := range rel {
			if !IsCombatStat(stat) {
				errs = append(errs, fmt.Errorf("attribute_relations.%s: unknown combat stat %q", attr, stat))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("archetype validation failed: %v", errs)
	}
	return nil
}

// LoadArchetypes reads all .yaml files in dir, parses each as an Archetype
// and validates it.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed archetypes (may be empty slice) or a non-nil error.
func LoadArchetypes(dir string) ([]*Archetype, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	archetypes := make([]*Archetype, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var a Archetype
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("parsing archetype file %s: %w", path, err)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid archetype in %s: %w", path, err)
		}
		archetypes = append(archetypes, &a)
	}
	return archetypes, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
