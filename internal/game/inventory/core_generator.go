package inventory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gearforge/internal/game/dice"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/pkg/idgen"
)

// ErrFamilyMismatch is returned when a suffix does not accept the prefix's
// family. It wraps ErrUnresolvedTemplate.
var ErrFamilyMismatch = fmt.Errorf("core family mismatch: %w", ErrUnresolvedTemplate)

// CoreGenerator produces cores from prefix/suffix pairs.
type CoreGenerator struct {
	reg    *Registry
	ids    idgen.Generator
	logger *zap.Logger
}

// NewCoreGenerator creates a CoreGenerator.
//
// Precondition: reg and ids must not be nil. A nil logger disables logging.
func NewCoreGenerator(reg *Registry, ids idgen.Generator, logger *zap.Logger) *CoreGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoreGenerator{reg: reg, ids: ids, logger: logger}
}

// Generate builds the core named by prefixID and suffixID. Each stat role the
// prefix defines is set to suffix.BaseValue × conversion[stat]; roles naming the
// same stat overwrite rather than stack.
//
// Postcondition: on success FamilyID == prefix.Family and BaseValue == suffix.BaseValue;
// on error the core is nil and the error wraps ErrUnresolvedTemplate or ErrFamilyMismatch.
func (g *CoreGenerator) Generate(prefixID, suffixID string) (*Core, error) {
	prefix, ok := g.reg.CorePrefix(prefixID)
	if !ok {
		g.logger.Warn("core generation failed", zap.String("reason", "unknown prefix"), zap.String("prefix", prefixID))
		return nil, fmt.Errorf("generating core: unknown prefix %q: %w", prefixID, ErrUnresolvedTemplate)
	}
	suffix, ok := g.reg.CoreSuffix(suffixID)
	if !ok {
		g.logger.Warn("core generation failed", zap.String("reason", "unknown suffix"), zap.String("suffix", suffixID))
		return nil, fmt.Errorf("generating core: unknown suffix %q: %w", suffixID, ErrUnresolvedTemplate)
	}
	if !suffix.Accepts(prefix.Family) {
		g.logger.Warn("core generation failed",
			zap.String("reason", "family mismatch"),
			zap.String("prefix", prefix.Name),
			zap.String("suffix", suffix.Name),
			zap.String("family", prefix.Family),
		)
		return nil, fmt.Errorf("generating core: %s cannot match with %s: %w", prefix.Name, suffix.Name, ErrFamilyMismatch)
	}

	rules := g.reg.Rules()
	stats := ruleset.StatMap{}
	for _, key := range prefix.Stats.Keys() {
		stats[key] = suffix.BaseValue * rules.Conversion(key)
	}

	core := &Core{
		InstanceID: g.ids.Generate(),
		Name:       prefix.Name + " " + suffix.Name,
		PrefixID:   prefix.ID,
		SuffixID:   suffix.ID,
		FamilyID:   prefix.Family,
		Stats:      stats,
		BaseValue:  suffix.BaseValue,
	}
	g.logger.Debug("core generated",
		zap.String("uid", core.InstanceID),
		zap.String("name", core.Name),
	)
	return core, nil
}

// CompatiblePairs returns every (prefix, suffix) ID pair whose families match,
// ordered by prefix then suffix.
func (g *CoreGenerator) CompatiblePairs() [][2]string {
	var out [][2]string
	for _, pid := range g.reg.CorePrefixIDs() {
		p, _ := g.reg.CorePrefix(pid)
		for _, sid := range g.reg.CoreSuffixIDs() {
			s, _ := g.reg.CoreSuffix(sid)
			if s.Accepts(p.Family) {
				out = append(out, [2]string{pid, sid})
			}
		}
	}
	return out
}

// GenerateRandom generates a core from a uniformly chosen compatible pair.
//
// Postcondition: fails with ErrUnresolvedTemplate when no pair is compatible.
func (g *CoreGenerator) GenerateRandom(src dice.Source) (*Core, error) {
	pairs := g.CompatiblePairs()
	if len(pairs) == 0 {
		g.logger.Warn("core generation failed", zap.String("reason", "no compatible prefix/suffix pairs"))
		return nil, fmt.Errorf("generating core: no compatible prefix/suffix pairs: %w", ErrUnresolvedTemplate)
	}
	pair := pairs[src.Intn(len(pairs))]
	return g.Generate(pair[0], pair[1])
}
