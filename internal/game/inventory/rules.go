package inventory

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

// SubtypeDef holds the weapon-only multipliers for one weapon subtype.
type SubtypeDef struct {
	ValueMult float64 `yaml:"value_mult"`
	DmgMult   float64 `yaml:"dmg_mult"`
	Speed     float64 `yaml:"speed"`
}

// EquipmentRules are the flat numeric tables shared by every generator.
type EquipmentRules struct {
	RarityMults   map[Rarity]float64    `yaml:"rarity_mults"`
	MaterialMults map[string]float64    `yaml:"material_mults"`
	SubtypeData   map[string]SubtypeDef `yaml:"subtype_data"`
	// StatConversion maps every rollable stat key to its per-stat value factor.
	// Its key set is the global stat pool.
	StatConversion ruleset.StatMap `yaml:"stat_conversion"`
}

// Validate reports an error if the rules are incomplete or contain illegal values.
//
// Precondition: r is non-nil.
// Postcondition: Returns nil iff the rules are well-formed.
func (r *EquipmentRules) Validate() error {
	var errs []error
	if _, ok := r.RarityMults[RarityMundane]; !ok {
		errs = append(errs, fmt.Errorf("rarity_mults.%s is required", RarityMundane))
	}
	for rarity, m := range r.RarityMults {
		if m <= 0 {
			errs = append(errs, fmt.Errorf("rarity_mults.%s must be > 0", rarity))
		}
	}
	for mat, m := range r.MaterialMults {
		if m <= 0 {
			errs = append(errs, fmt.Errorf("material_mults.%s must be > 0", mat))
		}
		if _, clash := r.SubtypeData[mat]; clash {
			errs = append(errs, fmt.Errorf("%q is both a material and a weapon subtype", mat))
		}
	}
	for sub, d := range r.SubtypeData {
		if d.ValueMult <= 0 {
			errs = append(errs, fmt.Errorf("subtype_data.%s.value_mult must be > 0", sub))
		}
		if d.DmgMult < 0 {
			errs = append(errs, fmt.Errorf("subtype_data.%s.dmg_mult must be >= 0", sub))
		}
		if d.Speed <= 0 {
			errs = append(errs, fmt.Errorf("subtype_data.%s.speed must be > 0", sub))
		}
	}
	if len(r.StatConversion) == 0 {
		errs = append(errs, errors.New("stat_conversion must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("equipment rules validation failed: %v", errs)
	}
	return nil
}

// StatPool returns the rollable stat keys in lexical order.
func (r *EquipmentRules) StatPool() []string {
	return r.StatConversion.Keys()
}

// Conversion returns the conversion factor for key, defaulting to 1 when unlisted.
func (r *EquipmentRules) Conversion(key string) float64 {
	if v, ok := r.StatConversion[key]; ok {
		return v
	}
	return 1
}

// LoadEquipmentRules reads and validates the equipment rules file at path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns valid rules or a non-nil error.
func LoadEquipmentRules(path string) (*EquipmentRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadEquipmentRules: cannot read file %q: %w", path, err)
	}
	var r EquipmentRules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("LoadEquipmentRules: cannot parse file %q: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("LoadEquipmentRules: invalid rules in %q: %w", path, err)
	}
	return &r, nil
}
