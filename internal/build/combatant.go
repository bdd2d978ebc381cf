// Package build composes the catalog records and the computational
// layers into per-combatant derived state. It is the seam the
// surrounding application drives: every edit rebuilds a Combatant value
// and recomputes everything from scratch.
package build

import (
	"github.com/udisondev/arenacalc/internal/bonus"
	"github.com/udisondev/arenacalc/internal/buildcode"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/damage"
	"github.com/udisondev/arenacalc/internal/stats"
)

// Combatant is one side's full declarative configuration.
type Combatant struct {
	Champion *catalog.Champion
	Level    int

	Items []catalog.Item
	Runes []catalog.Rune
	Page  catalog.RunePage

	// BonusValues / PassiveValues parameterize the conditional-bonus and
	// combo-passive tables, keyed by definition id. Absent keys fall back
	// to each definition's default.
	BonusValues   map[string]float64
	PassiveValues map[string]float64

	// Stacks maps stacking-item ids to their current stack count.
	Stacks map[int]int

	Generic stats.GenericBonus

	// FormGroup selects which form-dependent sub-cast variants apply.
	FormGroup string
}

// HasInfinityEdge reports whether the crit-multiplier legendary is
// among the equipped items.
func (c Combatant) HasInfinityEdge() bool {
	for i := range c.Items {
		if c.Items[i].ID == catalog.InfinityEdgeID {
			return true
		}
	}
	return false
}

func (c Combatant) championID() int {
	if c.Champion == nil {
		return 0
	}
	return c.Champion.ID
}

// Stats recomputes the combatant's flattened statistics record from
// scratch: growth curve, item and shard accumulation, rune stat blocks,
// conditional bonuses, combo-passive stats and stacking items, merged by
// the aggregator. A combatant with no champion yields the aggregated
// zero record rather than an error.
func (c Combatant) Stats() stats.Computed {
	base := stats.BaseStats(c.Champion, c.Level)

	items := stats.AccumulateItems(c.Items)
	runes := stats.AccumulateRunes(c.Runes)
	shards := stats.AccumulateShards(c.Page.ShardRows, c.Level)

	defs := bonus.ForBuild(c.championID(), c.Items, c.Page)
	conditional := bonus.Evaluate(defs, c.BonusValues, c.Level)

	passives := bonus.PassivesForBuild(c.championID(), c.Items, c.Page)
	passive := bonus.PassiveStats(passives, c.PassiveValues, c.Level)

	var stacking stats.Delta
	for i := range c.Items {
		it := &c.Items[i]
		if it.Stacking == nil {
			continue
		}
		stacking = stacking.Add(bonus.StackDelta(it, c.Stacks[it.ID]))
	}

	opts := stats.AggregateOptions{
		InfinityEdge: c.HasInfinityEdge(),
		Generic:      c.Generic,
	}
	return stats.Aggregate(base, opts, items, runes, shards, conditional, passive, stacking)
}

// Spells flattens the champion's abilities into castable spells in
// catalog-declaration order, sub-casts included and form-filtered.
func (c Combatant) Spells() []damage.Spell {
	if c.Champion == nil {
		return nil
	}
	var spells []damage.Spell
	for i := range c.Champion.Abilities {
		spells = append(spells, damage.FlattenAbility(&c.Champion.Abilities[i], c.FormGroup)...)
	}
	return spells
}

// OnHitEffects collects every on-hit and spellblade effect granted by
// the equipped items.
func (c Combatant) OnHitEffects() []catalog.OnHitEffect {
	var out []catalog.OnHitEffect
	for i := range c.Items {
		out = append(out, c.Items[i].OnHit...)
	}
	return out
}

// ComboPassives resolves the combo-specific conditional passives
// applicable to this combatant.
func (c Combatant) ComboPassives() []bonus.ComboPassive {
	return bonus.PassivesForBuild(c.championID(), c.Items, c.Page)
}

// Code serializes the combatant's identity into the compact build form.
func (c Combatant) Code() buildcode.Build {
	b := buildcode.Build{
		ChampionID: c.championID(),
		Level:      c.Level,
		Runes:      c.Page.RuneIDs(),
		ShardRows:  c.Page.ShardRows,
	}
	for i := range c.Items {
		if i >= len(b.Items) {
			break
		}
		b.Items[i] = c.Items[i].ID
	}
	return b
}

// FromCode rebuilds a combatant from a decoded build string, resolving
// ids against the catalog. Unknown item ids leave empty slots; an
// unknown champion id yields a combatant with no champion, which callers
// detect upstream.
func FromCode(cat *catalog.Catalog, b buildcode.Build) Combatant {
	c := Combatant{
		Champion: cat.Champion(b.ChampionID),
		Level:    b.Level,
		Page:     catalog.RunePageFromIDs(b.Runes, b.ShardRows),
	}
	for _, id := range b.Items {
		if id == 0 {
			continue
		}
		if it := cat.Item(id); it != nil {
			c.Items = append(c.Items, *it)
		}
	}
	for _, id := range b.Runes {
		if r := cat.Rune(id); r != nil {
			c.Runes = append(c.Runes, *r)
		}
	}
	return c
}
