// Package damage implements the mitigation, skill and attack resolution
// formulas. Every function is a pure transformation of an attacker and
// defender statistics pair; nothing here rolls dice or keeps state.
package damage

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// Result is one resolved damage instance split by type.
type Result struct {
	Physical float64
	Magic    float64
	True     float64
	Total    float64
}

// Add merges another instance into r.
func (r Result) Add(o Result) Result {
	r.Physical += o.Physical
	r.Magic += o.Magic
	r.True += o.True
	r.Total += o.Total
	return r
}

// Scale multiplies every component by f.
func (r Result) Scale(f float64) Result {
	r.Physical *= f
	r.Magic *= f
	r.True *= f
	r.Total *= f
	return r
}

// Reduction carries external resistance shred applied before the
// attacker's own penetration (ability debuffs, armor-shred passives).
type Reduction struct {
	FlatArmor    float64
	PercentArmor float64 // fraction in [0,1]
	FlatMR       float64
	PercentMR    float64
}

// lethalityScale is the level factor on flat armor penetration.
// Formula: lethality × (0.6 + 0.4 × level / 18).
func lethalityScale(level int) float64 {
	return 0.6 + 0.4*float64(stats.ClampLevel(level))/18
}

// EffectiveArmor reduces the defender's armor by, in order: flat
// reduction, percent reduction, percent penetration, then flat
// penetration derived from lethality. No floor at zero: negative
// effective armor is returned as-is and amplifies damage downstream.
func EffectiveArmor(atk, def stats.Computed, level int, red Reduction) float64 {
	armor := def.Armor
	armor -= red.FlatArmor
	armor *= 1 - red.PercentArmor
	armor *= 1 - atk.PercentArmorPen
	armor -= atk.Lethality * lethalityScale(level)
	return armor
}

// EffectiveMR reduces magic resist symmetrically: flat reduction,
// percent reduction, percent penetration, then flat penetration.
func EffectiveMR(atk, def stats.Computed, red Reduction) float64 {
	mr := def.MagicResist
	mr -= red.FlatMR
	mr *= 1 - red.PercentMR
	mr *= 1 - atk.PercentMagicPen
	mr -= atk.FlatMagicPen
	return mr
}

// resistFactor converts an effective resistance into a damage multiplier.
// Formula: 100 / (100 + resistance). Negative resistance yields a factor
// above 1, inflating damage. The curve has a pole at -100, so resistance
// clamps to -99 and the factor never exceeds 100.
func resistFactor(resistance float64) float64 {
	if resistance < -99 {
		resistance = -99
	}
	return 100 / (100 + resistance)
}

// Mitigate converts one raw outgoing damage amount into post-mitigation
// damage for its type. True damage passes through unmitigated.
func Mitigate(raw float64, typ catalog.DamageType, atk, def stats.Computed, level int) Result {
	return MitigateWith(raw, typ, atk, def, level, Reduction{})
}

// MitigateWith is Mitigate with external resistance reduction applied
// ahead of the attacker's penetration.
func MitigateWith(raw float64, typ catalog.DamageType, atk, def stats.Computed, level int, red Reduction) Result {
	var r Result
	switch typ {
	case catalog.DamagePhysical:
		r.Physical = raw * resistFactor(EffectiveArmor(atk, def, level, red))
	case catalog.DamageMagic:
		r.Magic = raw * resistFactor(EffectiveMR(atk, def, red))
	case catalog.DamageTrue:
		r.True = raw
	}
	r.Total = r.Physical + r.Magic + r.True
	return r
}
