package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/arenacalc/internal/build"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/combo"
	"github.com/udisondev/arenacalc/internal/config"
	"github.com/udisondev/arenacalc/internal/damage"
	"github.com/udisondev/arenacalc/internal/objective"
	"github.com/udisondev/arenacalc/internal/stats"
)

const ConfigPath = "config/simulator.yaml"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ARENACALC_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	slog.Info("arenacalc simulator starting", "config", cfgPath)

	cat, err := catalog.LoadDir(cfg.CatalogDir)
	if err != nil {
		return err
	}

	sc, err := config.LoadScenario(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	attacker := sc.Attacker.Combatant(cat)
	defender := sc.Defender.Combatant(cat)
	if attacker.Champion == nil || defender.Champion == nil {
		return fmt.Errorf("scenario: champion not found in catalog")
	}

	// Both sides are independent pure computations: run them in parallel.
	var atkStats, defStats stats.Computed
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		atkStats = attacker.Stats()
		return nil
	})
	g.Go(func() error {
		defStats = defender.Stats()
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	printStats(attacker.Champion.Name, atkStats)
	printStats(defender.Champion.Name, defStats)

	in := build.ComboInput(attacker, atkStats, defStats, attacker.Level, sc.Combo)
	res := combo.Run(sc.Combo.Counts, in)
	printCombo(res, defStats)

	printDerived(atkStats, defStats, attacker, sc.Minute)
	return nil
}

func printStats(name string, s stats.Computed) {
	fmt.Printf("--- %s ---\n", name)
	fmt.Printf("HP %.0f  Mana %.0f  AD %.1f (base %.1f)  AP %.1f\n",
		s.MaxHealth, s.MaxMana, s.AttackDamage, s.BaseAttackDamage, s.AbilityPower)
	fmt.Printf("Armor %.1f  MR %.1f  AS %.3f  Crit %.0f%% x%.2f\n",
		s.Armor, s.MagicResist, s.AttackSpeed, s.CritChance*100, s.CritMultiplier)
	fmt.Printf("Haste %.0f (+%.0f ult)  Lethality %.0f  MPen %.0f+%.0f%%  ArPen %.0f%%\n",
		s.AbilityHaste, s.UltimateHaste, s.Lethality,
		s.FlatMagicPen, s.PercentMagicPen*100, s.PercentArmorPen*100)
}

func printCombo(res combo.Result, def stats.Computed) {
	fmt.Println("--- combo ---")
	for _, seg := range res.Segments {
		fmt.Printf("%-24s x%-3d %10.1f\n", seg.Label, seg.Count, seg.Damage)
	}
	fmt.Printf("%-24s      %10.1f", "total", res.Total)
	if def.MaxHealth > 0 {
		fmt.Printf("  (%.0f%% of target HP)", res.Total/def.MaxHealth*100)
	}
	fmt.Println()
}

func printDerived(atk, def stats.Computed, attacker build.Combatant, minute int) {
	dps := damage.DPS(atk, def, attacker.Level, attacker.OnHitEffects())
	ehp := damage.EffectiveHP(atk)
	haste := damage.Haste(atk)

	fmt.Println("--- derived ---")
	fmt.Printf("DPS %.1f (attack %.1f, on-hit %.1f)\n", dps.Total, dps.Attack, dps.OnHit)
	fmt.Printf("EHP physical %.0f, magic %.0f\n", ehp.Physical, ehp.Magic)
	fmt.Printf("CDR equivalent %.1f%%\n", haste.CDREquivalent*100)

	for _, cd := range damage.AbilityCooldowns(attacker.Champion, nil, atk) {
		fmt.Printf("%s cooldown %.1fs -> %.1fs\n", cd.Key, cd.Base, cd.Actual)
	}

	shots := objective.TurretShots(minute, atk)
	fmt.Printf("turret shots at minute %d:", minute)
	for _, s := range shots {
		fmt.Printf(" %.0f", s)
	}
	fmt.Println()
}
