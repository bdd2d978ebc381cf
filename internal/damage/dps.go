package damage

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// DPSResult is the closed-form sustained basic-attack damage per second.
type DPSResult struct {
	Attack float64 // mitigated average AA damage × attack speed
	OnHit  float64 // mitigated on-hit contribution × attack speed
	Total  float64
}

// DPS computes sustained auto-attack damage per second against the
// defender: the crit-expectation average attack plus the on-hit-only
// contribution, each multiplied by attack speed.
func DPS(atk, def stats.Computed, level int, onhit []catalog.OnHitEffect) DPSResult {
	aa := ResolveAttack(atk, def, level, AttackOptions{OnHit: onhit})
	res := DPSResult{
		Attack: aa.Physical * atk.AttackSpeed,
		OnHit:  aa.OnHitTotal * atk.AttackSpeed,
	}
	res.Total = res.Attack + res.OnHit
	return res
}

// EHPResult is the effective hit-pool against each damage type.
type EHPResult struct {
	Physical float64
	Magic    float64
}

// EffectiveHP computes how much raw damage of each type the record can
// absorb. Formula: hp × (1 + resistance / 100).
func EffectiveHP(s stats.Computed) EHPResult {
	return EHPResult{
		Physical: s.MaxHealth * (1 + s.Armor/100),
		Magic:    s.MaxHealth * (1 + s.MagicResist/100),
	}
}

// ReductionFraction is the share of incoming damage a resistance value
// removes. Formula: resistance / (100 + resistance).
func ReductionFraction(resistance float64) float64 {
	return resistance / (100 + resistance)
}
