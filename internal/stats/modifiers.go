package stats

import "github.com/udisondev/arenacalc/internal/catalog"

// FromItemStats maps an item's flat stat block into a delta.
func FromItemStats(s catalog.ItemStats) Delta {
	return Delta{
		Health:          s.Health,
		Mana:            s.Mana,
		AttackDamage:    s.AttackDamage,
		AbilityPower:    s.AbilityPower,
		Armor:           s.Armor,
		MagicResist:     s.MagicResist,
		AttackSpeed:     s.AttackSpeed,
		CritChance:      s.CritChance,
		MoveSpeed:       s.MoveSpeed,
		AbilityHaste:    s.AbilityHaste,
		UltimateHaste:   s.UltimateHaste,
		Lethality:       s.Lethality,
		FlatMagicPen:    s.FlatMagicPen,
		PercentMagicPen: s.PercentMagicPen,
		PercentArmorPen: s.PercentArmorPen,
		LifeSteal:       s.LifeSteal,
		Omnivamp:        s.Omnivamp,
		Tenacity:        s.Tenacity,
		HealthRegen:     s.HealthRegen,
		ManaRegen:       s.ManaRegen,
	}
}

// AccumulateItems sums the stat blocks of every equipped item. Order
// independent: each field is a plain sum across sources, absent fields
// count as zero, nothing is averaged or overwritten.
func AccumulateItems(items []catalog.Item) Delta {
	var total Delta
	for i := range items {
		total = total.Add(FromItemStats(items[i].Stats))
	}
	return total
}

// Fixed per-shard values for the non-scaling cells of the shard table.
const (
	shardAdaptiveForceAD = 5.4 // adaptive resolves to AD here; AP form is 9
	shardAttackSpeedVal  = 0.10
	shardAbilityHasteVal = 8
	shardMoveSpeedVal    = 10
	shardFlatHealthVal   = 65
	shardTenacityVal     = 10
)

// ResolveShard maps one shard pick to its delta. The scaling-health shard
// is level-dependent (10 × level) and must be resolved here, at
// computation time, never stored.
func ResolveShard(id catalog.ShardID, level int) Delta {
	switch id {
	case catalog.ShardAdaptiveForce:
		return Delta{AttackDamage: shardAdaptiveForceAD}
	case catalog.ShardAttackSpeed:
		return Delta{AttackSpeed: shardAttackSpeedVal}
	case catalog.ShardAbilityHaste:
		return Delta{AbilityHaste: shardAbilityHasteVal}
	case catalog.ShardMoveSpeed:
		return Delta{MoveSpeed: shardMoveSpeedVal}
	case catalog.ShardScalingHealth:
		return Delta{Health: 10 * float64(ClampLevel(level))}
	case catalog.ShardFlatHealth:
		return Delta{Health: shardFlatHealthVal}
	case catalog.ShardTenacity:
		return Delta{Tenacity: shardTenacityVal}
	}
	return Delta{}
}

// AccumulateShards resolves the three shard-row picks of a rune page.
func AccumulateShards(rows [3]int, level int) Delta {
	var total Delta
	for row, col := range rows {
		total = total.Add(ResolveShard(catalog.ShardAt(row, col), level))
	}
	return total
}

// AccumulateRunes sums the plain stat blocks of stat-granting runes.
// Runes with conditional behavior contribute through the bonus registry
// instead and carry an empty stat block here.
func AccumulateRunes(runes []catalog.Rune) Delta {
	var total Delta
	for i := range runes {
		total = total.Add(FromItemStats(runes[i].Stats))
	}
	return total
}
