package stats

import "github.com/udisondev/arenacalc/internal/catalog"

const (
	MinLevel = 1
	MaxLevel = 18
)

// ClampLevel bounds a character level to [1, 18].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// GrowthValue applies the canonical level-growth curve.
// Formula: base + growth × (level−1) × (0.7025 + 0.0175 × (level−1)).
// Level 1 returns base exactly.
func GrowthValue(g catalog.StatGrowth, level int) float64 {
	n := float64(ClampLevel(level) - 1)
	return g.Base + g.Growth*n*(0.7025+0.0175*n)
}

// BaseStats resolves a champion's growth-curve attributes at the given
// level into a partial delta. Move speed and attack range are flat; item
// and talent contributions never appear here.
func BaseStats(c *catalog.Champion, level int) Delta {
	if c == nil {
		return Delta{}
	}
	return Delta{
		Health:       GrowthValue(c.Health, level),
		Mana:         GrowthValue(c.Mana, level),
		Armor:        GrowthValue(c.Armor, level),
		MagicResist:  GrowthValue(c.MagicResist, level),
		AttackDamage: GrowthValue(c.AttackDamage, level),
		AttackSpeed:  GrowthValue(c.AttackSpeed, level),
		HealthRegen:  GrowthValue(c.HealthRegen, level),
		ManaRegen:    GrowthValue(c.ManaRegen, level),
		MoveSpeed:    c.MoveSpeed,
		AttackRange:  c.AttackRange,
	}
}
