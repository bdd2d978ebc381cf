// Package stats turns a combatant's configuration into one flattened
// combat statistics record. Everything here is a pure transformation of
// immutable inputs: partial deltas are accumulated field-wise and merged
// by Aggregate, and the whole record is recomputed from scratch on every
// configuration change.
package stats

// Computed is the central derived record: every stat the damage math
// reads, flattened into one value type.
//
// Invariants enforced by Aggregate: AttackSpeed ≤ 2.5, CritChance ∈ [0,1].
type Computed struct {
	Health    float64
	MaxHealth float64
	Mana      float64
	MaxMana   float64

	// BaseHealth/BaseAttackDamage are the growth-curve components, kept
	// so bonusHp/bonusAd scalings can be resolved after aggregation.
	BaseHealth       float64
	AttackDamage     float64
	BaseAttackDamage float64
	AbilityPower     float64

	Armor       float64
	MagicResist float64

	AttackSpeed    float64
	CritChance     float64
	CritMultiplier float64

	MoveSpeed   float64
	AttackRange float64

	AbilityHaste  float64
	UltimateHaste float64

	Lethality       float64
	FlatMagicPen    float64
	PercentMagicPen float64
	PercentArmorPen float64

	LifeSteal float64
	Omnivamp  float64
	Tenacity  float64

	HealthRegen float64
	ManaRegen   float64
}

// BonusAttackDamage returns the item/rune/bonus AD component.
func (s Computed) BonusAttackDamage() float64 {
	return s.AttackDamage - s.BaseAttackDamage
}

// BonusHealth returns the non-base health component.
func (s Computed) BonusHealth() float64 {
	return s.MaxHealth - s.BaseHealth
}

// MissingHealth returns max health minus current health, floored at 0.
func (s Computed) MissingHealth() float64 {
	if s.Health >= s.MaxHealth {
		return 0
	}
	return s.MaxHealth - s.Health
}

// Delta is a partial stat contribution from one source layer (growth,
// items, shards, conditional bonuses, free-form extras). Accumulation is
// always a field-wise sum, so merging deltas is commutative.
type Delta struct {
	Health float64
	Mana   float64

	AttackDamage float64
	AbilityPower float64

	Armor       float64
	MagicResist float64

	AttackSpeed float64
	CritChance  float64

	MoveSpeed   float64
	AttackRange float64

	AbilityHaste  float64
	UltimateHaste float64

	Lethality       float64
	FlatMagicPen    float64
	PercentMagicPen float64
	PercentArmorPen float64

	LifeSteal float64
	Omnivamp  float64
	Tenacity  float64

	HealthRegen float64
	ManaRegen   float64

	// CritChanceMultiplier is a multiplier applied to the combined crit
	// chance (character mechanics that double effective crit odds).
	// Zero means "no modifier".
	CritChanceMultiplier float64

	// FlatCritMultiplier is added to the final crit damage multiplier.
	FlatCritMultiplier float64
}

// Add returns the field-wise sum of d and o.
func (d Delta) Add(o Delta) Delta {
	d.Health += o.Health
	d.Mana += o.Mana
	d.AttackDamage += o.AttackDamage
	d.AbilityPower += o.AbilityPower
	d.Armor += o.Armor
	d.MagicResist += o.MagicResist
	d.AttackSpeed += o.AttackSpeed
	d.CritChance += o.CritChance
	d.MoveSpeed += o.MoveSpeed
	d.AttackRange += o.AttackRange
	d.AbilityHaste += o.AbilityHaste
	d.UltimateHaste += o.UltimateHaste
	d.Lethality += o.Lethality
	d.FlatMagicPen += o.FlatMagicPen
	d.PercentMagicPen += o.PercentMagicPen
	d.PercentArmorPen += o.PercentArmorPen
	d.LifeSteal += o.LifeSteal
	d.Omnivamp += o.Omnivamp
	d.Tenacity += o.Tenacity
	d.HealthRegen += o.HealthRegen
	d.ManaRegen += o.ManaRegen
	d.CritChanceMultiplier += o.CritChanceMultiplier
	d.FlatCritMultiplier += o.FlatCritMultiplier
	return d
}

// Sum accumulates any number of deltas into one.
func Sum(deltas ...Delta) Delta {
	var total Delta
	for _, d := range deltas {
		total = total.Add(d)
	}
	return total
}
