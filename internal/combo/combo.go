// Package combo composes the stat and damage resolvers into a full
// combat-sequence total with a per-source breakdown.
package combo

import (
	"github.com/udisondev/arenacalc/internal/damage"
	"github.com/udisondev/arenacalc/internal/stats"
)

// Action identifiers used alongside spell ids in Counts.
const (
	ActionAttack  = "aa"
	ActionPassive = "passive"
)

// Counts maps an action identifier (spell id, "aa", "passive") to its
// repetition count. The sole mutable driver of a combo computation;
// negative counts clamp to zero.
type Counts map[string]int

func (c Counts) get(id string) int {
	n := c[id]
	if n < 0 {
		return 0
	}
	return n
}

// SkillCast is one castable spell with its configured rank and distance.
type SkillCast struct {
	Spell       damage.Spell
	Rank        int
	DistancePct float64
}

// ItemActive is a usable item effect with its use count.
type ItemActive struct {
	Name   string
	Damage float64 // mitigated per use
	Uses   int
}

// Input gathers everything one combo computation reads. All damage
// figures arrive mitigated except SkillBonuses, which are raw add-ons
// mitigated here with their target spell's damage type.
type Input struct {
	Attacker stats.Computed
	Defender stats.Computed
	Level    int

	// Skills lists the castable spells in catalog-declaration order,
	// sub-casts flattened. That order is load-bearing: HP-sensitive
	// spells are replayed in it during the second pass.
	Skills []SkillCast

	// SkillBonuses maps ability slot keys to raw per-cast add-on damage
	// from conditional passives.
	SkillBonuses map[string]float64

	Attack         damage.AttackResult
	PassiveDamage  float64 // mitigated, per proc
	Spellblade     float64 // mitigated, per proc
	SummonerDamage float64 // flat, applied once when positive
	ItemActives    []ItemActive
}

// Segment is one named slice of the combo total.
type Segment struct {
	ID     string
	Label  string
	Count  int
	Damage float64
}

// Result is the combo outcome: an unrounded total and its ordered
// breakdown by source.
type Result struct {
	Total    float64
	Segments []Segment
}

// AbilityKeyOf strips a sub-cast suffix from a spell id, returning the
// ability slot key the spell belongs to.
func AbilityKeyOf(spellID string) string {
	for i := 0; i < len(spellID); i++ {
		if spellID[i] == ':' {
			return spellID[:i]
		}
	}
	return spellID
}

// Run executes the two-phase combo algorithm.
//
// Phase 1 sums every component whose damage does not depend on the
// target's remaining health: basic attacks, non-HP-sensitive skills with
// their conditional add-ons, passive procs, spellblade procs (capped at
// min(skill casts, attack count)), summoner damage and item actives.
//
// Phase 2 then replays each HP-sensitive skill in catalog order against
// an effective current health of max HP minus the running total so far.
// One correction pass, not a fixed point: the approximation is "cast
// missing-HP abilities last", and totals must stay reproducible.
func Run(counts Counts, in Input) Result {
	var res Result
	add := func(id, label string, count int, dmg float64) {
		res.Total += dmg
		res.Segments = append(res.Segments, Segment{ID: id, Label: label, Count: count, Damage: dmg})
	}

	aaCount := counts.get(ActionAttack)
	if aaCount > 0 {
		add(ActionAttack, "Basic attacks", aaCount, in.Attack.Total*float64(aaCount))
	}

	bonusFor := func(cast SkillCast) float64 {
		raw := in.SkillBonuses[AbilityKeyOf(cast.Spell.ID)]
		if raw == 0 {
			return 0
		}
		return damage.Mitigate(raw, cast.Spell.Type, in.Attacker, in.Defender, in.Level).Total
	}

	// Phase 1: health-independent components.
	skillCasts := 0
	var deferred []int
	for i, cast := range in.Skills {
		n := counts.get(cast.Spell.ID)
		if n == 0 {
			continue
		}
		skillCasts += n
		if cast.Spell.HPSensitive() {
			deferred = append(deferred, i)
			continue
		}
		r := cast.Spell.Resolve(cast.Rank, in.Attacker, in.Defender, in.Level, cast.DistancePct)
		per := r.Total + bonusFor(cast)
		add(cast.Spell.ID, cast.Spell.Name, n, per*float64(n))
	}

	if n := counts.get(ActionPassive); n > 0 && in.PassiveDamage > 0 {
		add(ActionPassive, "Passive", n, in.PassiveDamage*float64(n))
	}

	if in.Spellblade > 0 {
		procs := skillCasts
		if aaCount < procs {
			procs = aaCount
		}
		if procs > 0 {
			add("spellblade", "Spellblade", procs, in.Spellblade*float64(procs))
		}
	}

	if in.SummonerDamage > 0 {
		add("summoner", "Summoner spells", 1, in.SummonerDamage)
	}

	for _, act := range in.ItemActives {
		uses := act.Uses
		if uses < 0 {
			uses = 0
		}
		if uses == 0 || act.Damage == 0 {
			continue
		}
		add("active:"+act.Name, act.Name, uses, act.Damage*float64(uses))
	}

	// Phase 2: replay HP-sensitive skills against the damaged target.
	for _, i := range deferred {
		cast := in.Skills[i]
		n := counts.get(cast.Spell.ID)

		target := in.Defender
		target.Health = target.MaxHealth - res.Total
		if target.Health < 0 {
			target.Health = 0
		}

		r := cast.Spell.Resolve(cast.Rank, in.Attacker, target, in.Level, cast.DistancePct)
		per := r.Total + bonusFor(cast)
		add(cast.Spell.ID, cast.Spell.Name, n, per*float64(n))
	}

	return res
}
