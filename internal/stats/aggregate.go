package stats

const (
	// AttackSpeedCap is the hard ceiling on attacks per second.
	AttackSpeedCap = 2.5

	// Crit damage multipliers around the Infinity Edge threshold.
	critMultiplierDefault = 1.75
	critMultiplierIE      = 2.25
	ieCritThreshold       = 0.6
)

// GenericBonus is the free-form analysis input: flat stats entered
// directly by the user for scenarios with no concrete item behind them.
type GenericBonus struct {
	AttackDamage float64 `yaml:"attack_damage"`
	AbilityPower float64 `yaml:"ability_power"`
	Health       float64 `yaml:"health"`
	Armor        float64 `yaml:"armor"`
	MagicResist  float64 `yaml:"magic_resist"`
}

func (g GenericBonus) delta() Delta {
	return Delta{
		AttackDamage: g.AttackDamage,
		AbilityPower: g.AbilityPower,
		Health:       g.Health,
		Armor:        g.Armor,
		MagicResist:  g.MagicResist,
	}
}

// AggregateOptions carries the non-additive inputs of the merge.
type AggregateOptions struct {
	// InfinityEdge marks the specific legendary equipped whose presence
	// raises the crit multiplier once crit chance reaches 60%.
	InfinityEdge bool

	Generic GenericBonus
}

// Aggregate merges the base (growth-curve) delta with any number of
// modifier deltas into the final record. Rules, in order: sum all
// sources per field; clamp crit chance to [0,1]; apply a crit-chance
// multiplier bonus if present and re-clamp; pick the crit damage
// multiplier by the Infinity Edge threshold rule and add any flat
// multiplier bonus; clamp attack speed to the cap.
//
// Deterministic: identical inputs produce bit-identical output.
func Aggregate(base Delta, opts AggregateOptions, parts ...Delta) Computed {
	total := base
	for _, p := range parts {
		total = total.Add(p)
	}
	total = total.Add(opts.Generic.delta())

	s := Computed{
		// Flat health/mana land in both current and max: at configuration
		// time there is no damage history.
		Health:    total.Health,
		MaxHealth: total.Health,
		Mana:      total.Mana,
		MaxMana:   total.Mana,

		BaseHealth:       base.Health,
		AttackDamage:     total.AttackDamage,
		BaseAttackDamage: base.AttackDamage,
		AbilityPower:     total.AbilityPower,

		Armor:       total.Armor,
		MagicResist: total.MagicResist,

		AttackSpeed: total.AttackSpeed,
		CritChance:  total.CritChance,

		MoveSpeed:   total.MoveSpeed,
		AttackRange: total.AttackRange,

		AbilityHaste:  total.AbilityHaste,
		UltimateHaste: total.UltimateHaste,

		Lethality:       total.Lethality,
		FlatMagicPen:    total.FlatMagicPen,
		PercentMagicPen: total.PercentMagicPen,
		PercentArmorPen: total.PercentArmorPen,

		LifeSteal: total.LifeSteal,
		Omnivamp:  total.Omnivamp,
		Tenacity:  total.Tenacity,

		HealthRegen: total.HealthRegen,
		ManaRegen:   total.ManaRegen,
	}

	s.CritChance = clamp01(s.CritChance)
	if total.CritChanceMultiplier > 0 {
		s.CritChance = clamp01(s.CritChance * total.CritChanceMultiplier)
	}

	if opts.InfinityEdge && s.CritChance >= ieCritThreshold {
		s.CritMultiplier = critMultiplierIE
	} else {
		s.CritMultiplier = critMultiplierDefault
	}
	s.CritMultiplier += total.FlatCritMultiplier

	if s.AttackSpeed > AttackSpeedCap {
		s.AttackSpeed = AttackSpeedCap
	}

	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
