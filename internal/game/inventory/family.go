// Package inventory provides gear and core records, socketing, the paper doll,
// backpacks, the content tables they are generated from, and the generators.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ContentEntry is one generatable piece within an item family.
type ContentEntry struct {
	Slot Slot   `yaml:"slot"`
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// FamilyDef is an item prefix template: the base value, cost modifier and the
// list of pieces it can produce.
type FamilyDef struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Family    string         `yaml:"family"`
	BaseValue float64        `yaml:"base_value"`
	CostMod   float64        `yaml:"cost_mod"`
	Contents  []ContentEntry `yaml:"contents"`
}

// Validate reports an error if the FamilyDef is missing required fields or
// contains illegal values.
//
// Precondition: f is non-nil.
// Postcondition: Returns nil iff the def is well-formed.
func (f *FamilyDef) Validate() error {
	var errs []error
	if f.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if f.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if f.BaseValue <= 0 {
		errs = append(errs, errors.New("base_value must be > 0"))
	}
	if f.CostMod < 0 {
		errs = append(errs, errors.New("cost_mod must be >= 0"))
	}
	if len(f.Contents) == 0 {
		errs = append(errs, errors.New("contents must not be empty"))
	}
	for i, c := range f.Contents {
		if !IsValidSlot(c.Slot) {
			errs = append(errs, fmt.Errorf("contents[%d]: slot %q is not a valid equipment slot", i, c.Slot))
		}
		if c.Type == "" {
			errs = append(errs, fmt.Errorf("contents[%d]: type must not be empty", i))
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("contents[%d]: name must not be empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("family validation failed: %v", errs)
	}
	return nil
}

// IndexBySlot returns the index of the first content entry targeting s.
//
// Postcondition: returns -1 when no entry matches.
func (f *FamilyDef) IndexBySlot(s Slot) int {
	for i, c := range f.Contents {
		if c.Slot == s {
			return i
		}
	}
	return -1
}

// IndexByType returns the index of the first content entry of the given type.
//
// Postcondition: returns -1 when no entry matches.
func (f *FamilyDef) IndexByType(typ string) int {
	for i, c := range f.Contents {
		if c.Type == typ {
			return i
		}
	}
	return -1
}

// LoadFamilies reads all .yaml files in dir and returns the parsed FamilyDefs.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns non-nil slice and nil error on success; all returned defs pass Validate.
func LoadFamilies(dir string) ([]*FamilyDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadFamilies: cannot read directory %q: %w", dir, err)
	}

	families := []*FamilyDef{}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadFamilies: cannot read file %q: %w", path, err)
		}
		var f FamilyDef
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("LoadFamilies: cannot parse file %q: %w", path, err)
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("LoadFamilies: invalid family in %q: %w", path, err)
		}
		families = append(families, &f)
	}
	return families, nil
}
