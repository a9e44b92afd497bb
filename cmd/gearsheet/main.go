// Package main provides the gearsheet binary: it rolls a character from the
// archetype catalog and runs gear commands read from standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gearforge/internal/config"
	"github.com/cory-johannsen/gearforge/internal/game/character"
	"github.com/cory-johannsen/gearforge/internal/game/command"
	"github.com/cory-johannsen/gearforge/internal/game/dice"
	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
	"github.com/cory-johannsen/gearforge/internal/game/stats"
	"github.com/cory-johannsen/gearforge/internal/observability"
	"github.com/cory-johannsen/gearforge/internal/pkg/idgen"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and environment only")
	name := flag.String("name", "Wanderer", "character name")
	archetype := flag.String("archetype", "martyr", "archetype id")
	prompt := flag.String("prompt", "> ", "prompt printed before each command; empty = none")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalog, err := ruleset.LoadCatalog(cfg.Content.ArchetypesDir)
	if err != nil {
		logger.Fatal("loading archetypes", zap.Error(err))
	}
	reg, err := inventory.LoadRegistry(inventory.ContentFiles{
		FamiliesDir:      cfg.Content.FamiliesDir,
		RulesFile:        cfg.Content.RulesFile,
		CorePrefixesFile: cfg.Content.CorePrefixesFile,
		CoreSuffixesFile: cfg.Content.CoreSuffixesFile,
	})
	if err != nil {
		logger.Fatal("loading item content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("archetypes", len(catalog.IDs())),
		zap.Int("families", len(reg.FamilyIDs())),
		zap.Int("core_prefixes", len(reg.CorePrefixIDs())),
		zap.Int("core_suffixes", len(reg.CoreSuffixIDs())),
		zap.Duration("elapsed", time.Since(start)),
	)

	var src dice.Source
	if cfg.Generator.Seed == 0 {
		src = dice.NewCryptoSource()
	} else {
		src = dice.NewSeededSource(cfg.Generator.Seed)
	}
	src = dice.NewLoggedSource(src, logger)

	ids := idgen.NewUUID(cfg.Generator.IDPrefix)
	items := inventory.NewItemGenerator(reg, src, ids, logger)
	factory := character.NewFactory(items, ids, logger)

	ch, err := factory.Create(*name, *archetype, catalog)
	if err != nil {
		logger.Fatal("creating character", zap.Error(err))
	}

	sess := &command.Session{
		Char:          ch,
		Items:         items,
		Cores:         inventory.NewCoreGenerator(reg, ids, logger),
		Calc:          stats.NewCalculator(catalog),
		Src:           src,
		DefaultRarity: inventory.Rarity(cfg.Generator.DefaultRarity),
	}
	cmds := command.DefaultRegistry()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintln(out, command.HandleSheet(sess))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, *prompt)
		out.Flush()
		if !scanner.Scan() {
			break
		}
		text, quit := command.Execute(cmds, sess, scanner.Text())
		if text != "" {
			fmt.Fprintln(out, text)
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading commands", zap.Error(err))
	}
	logger.Info("session ended", zap.String("character", ch.ID), zap.Int("level", ch.Level()))
}
