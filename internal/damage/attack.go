package damage

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// ExtraOnHit is a typed flat on-hit amount from outside the item system
// (conditional combo passives).
type ExtraOnHit struct {
	Amount float64
	Type   catalog.DamageType
}

// AttackOptions parameterizes basic-attack resolution.
type AttackOptions struct {
	// OnHit lists equipped item on-hit effects. Only effects whose
	// trigger is exactly "onhit" fold into attacks; spellblade effects
	// are resolved separately, once per ability cast.
	OnHit []catalog.OnHitEffect

	// Extra carries conditional on-hit damage from combo passives.
	Extra []ExtraOnHit

	// AttackCount/CritCount switch the crit model from a probabilistic
	// expectation to an exact average over AttackCount attacks of which
	// CritCount crit. Active when AttackCount > 0.
	AttackCount int
	CritCount   int
}

// AttackResult is the resolved basic-attack outcome, averaged per attack.
type AttackResult struct {
	// Raw AD before crit and mitigation.
	Raw float64
	// CritFactor is the average damage multiplier from critting.
	CritFactor float64
	// OnHitRaw is the summed unmitigated on-hit damage per attack.
	OnHitRaw float64

	// Mitigated components, per attack.
	Physical   float64
	OnHitTotal float64
	Total      float64
}

func onHitRaw(fx catalog.OnHitEffect, atk stats.Computed) float64 {
	return fx.Flat + fx.BaseADRatio*atk.BaseAttackDamage + fx.APRatio*atk.AbilityPower
}

// critFactor returns the average damage multiplier from critical strikes.
// Default model: expectation 1 + critChance × (multiplier − 1). With an
// attack sample (N attacks, K crits) it is the exact finite average
// ((N−K) + K × multiplier) / N, not a probabilistic expectation.
func critFactor(s stats.Computed, attackCount, critCount int) float64 {
	if attackCount > 0 {
		n := attackCount
		k := critCount
		if k < 0 {
			k = 0
		}
		if k > n {
			k = n
		}
		return (float64(n-k) + float64(k)*s.CritMultiplier) / float64(n)
	}
	return 1 + s.CritChance*(s.CritMultiplier-1)
}

// ResolveAttack computes the average damage of one basic attack: AD with
// the crit factor applied, mitigated as physical, plus every on-hit
// effect mitigated per its own damage type.
func ResolveAttack(atk, def stats.Computed, level int, opts AttackOptions) AttackResult {
	res := AttackResult{
		Raw:        atk.AttackDamage,
		CritFactor: critFactor(atk, opts.AttackCount, opts.CritCount),
	}

	hit := Mitigate(res.Raw*res.CritFactor, catalog.DamagePhysical, atk, def, level)
	res.Physical = hit.Total

	var onhit Result
	for _, fx := range opts.OnHit {
		if fx.Trigger != "onhit" {
			continue
		}
		raw := onHitRaw(fx, atk)
		res.OnHitRaw += raw
		onhit = onhit.Add(Mitigate(raw, fx.DamageType, atk, def, level))
	}
	for _, ex := range opts.Extra {
		res.OnHitRaw += ex.Amount
		onhit = onhit.Add(Mitigate(ex.Amount, ex.Type, atk, def, level))
	}
	res.OnHitTotal = onhit.Total

	res.Total = res.Physical + res.OnHitTotal
	return res
}

// SpellbladeProc resolves the single-proc damage of equipped spellblade
// effects. Computed once; the combo sequencer caps proc count at
// min(skill casts, attack count).
func SpellbladeProc(effects []catalog.OnHitEffect, atk, def stats.Computed, level int) float64 {
	var total float64
	for _, fx := range effects {
		if fx.Trigger != "spellblade" {
			continue
		}
		total += Mitigate(onHitRaw(fx, atk), fx.DamageType, atk, def, level).Total
	}
	return total
}
