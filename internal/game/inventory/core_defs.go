package inventory

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// CoreStatRoles names the stat key filled by each role of a core prefix.
// Empty roles are skipped.
type CoreStatRoles struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Tertiary  string `yaml:"tertiary"`
}

// Keys returns the non-empty role stat keys in role order.
func (r CoreStatRoles) Keys() []string {
	var out []string
	for _, k := range []string{r.Primary, r.Secondary, r.Tertiary} {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// CorePrefixDef supplies a core's family and the stats it grants.
type CorePrefixDef struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name"`
	Family string        `yaml:"family"`
	Stats  CoreStatRoles `yaml:"stats"`
}

// Validate reports an error if the prefix is missing required fields.
func (p *CorePrefixDef) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if p.Family == "" {
		errs = append(errs, errors.New("family must not be empty"))
	}
	if len(p.Stats.Keys()) == 0 {
		errs = append(errs, errors.New("stats must define at least one role"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("core prefix validation failed: %v", errs)
	}
	return nil
}

// CoreSuffixDef supplies a core's base value and the families it accepts.
type CoreSuffixDef struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	BaseValue float64  `yaml:"base_value"`
	Families  []string `yaml:"families"`
}

// Validate reports an error if the suffix is missing required fields.
func (s *CoreSuffixDef) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.BaseValue <= 0 {
		errs = append(errs, errors.New("base_value must be > 0"))
	}
	if len(s.Families) == 0 {
		errs = append(errs, errors.New("families must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("core suffix validation failed: %v", errs)
	}
	return nil
}

// Accepts reports whether the suffix may combine with a prefix of the given family.
func (s *CoreSuffixDef) Accepts(family string) bool {
	return slices.Contains(s.Families, family)
}

// LoadCorePrefixes reads a YAML list of core prefixes from path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns all prefixes, each passing Validate, or a non-nil error.
func LoadCorePrefixes(path string) ([]*CorePrefixDef, error) {
	var defs []*CorePrefixDef
	if err := readYAML(path, &defs); err != nil {
		return nil, fmt.Errorf("LoadCorePrefixes: %w", err)
	}
	for i, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadCorePrefixes: invalid prefix at index %d in %q: %w", i, path, err)
		}
	}
	return defs, nil
}

// LoadCoreSuffixes reads a YAML list of core suffixes from path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns all suffixes, each passing Validate, or a non-nil error.
func LoadCoreSuffixes(path string) ([]*CoreSuffixDef, error) {
	var defs []*CoreSuffixDef
	if err := readYAML(path, &defs); err != nil {
		return nil, fmt.Errorf("LoadCoreSuffixes: %w", err)
	}
	for i, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadCoreSuffixes: invalid suffix at index %d in %q: %w", i, path, err)
		}
	}
	return defs, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cannot parse file %q: %w", path, err)
	}
	return nil
}
