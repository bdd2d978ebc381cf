package damage

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// HasteInfo summarizes what an ability-haste value is worth.
type HasteInfo struct {
	AbilityHaste  float64
	CDREquivalent float64 // fraction of cooldown removed
}

// Cooldown converts a base cooldown under the given ability haste.
// Formula: base × 100 / (100 + haste).
func Cooldown(base, haste float64) float64 {
	return base * 100 / (100 + haste)
}

// CDREquivalent is the cooldown fraction removed by the given haste.
// Formula: 1 − 100 / (100 + haste).
func CDREquivalent(haste float64) float64 {
	return 1 - 100/(100+haste)
}

// CCDuration applies tenacity to a crowd-control duration.
// Formula: duration × (1 − tenacity / 100).
func CCDuration(duration, tenacity float64) float64 {
	return duration * (1 - tenacity/100)
}

// Haste builds the HasteInfo summary for a statistics record.
func Haste(s stats.Computed) HasteInfo {
	return HasteInfo{
		AbilityHaste:  s.AbilityHaste,
		CDREquivalent: CDREquivalent(s.AbilityHaste),
	}
}

// AbilityCooldown is one slot's actual cooldown at a rank.
type AbilityCooldown struct {
	Key    string
	Name   string
	Base   float64
	Actual float64
}

// AbilityCooldowns resolves the actual cooldown of each of a champion's
// abilities at the given ranks. The ultimate slot benefits from ultimate
// haste on top of ability haste; ranks clamp to the cooldown array.
func AbilityCooldowns(c *catalog.Champion, ranks map[string]int, s stats.Computed) []AbilityCooldown {
	if c == nil {
		return nil
	}
	var out []AbilityCooldown
	for i := range c.Abilities {
		ab := &c.Abilities[i]
		if len(ab.Cooldowns) == 0 {
			continue
		}
		rank := ranks[ab.Key]
		if rank < 1 {
			rank = 1
		}
		if rank > len(ab.Cooldowns) {
			rank = len(ab.Cooldowns)
		}
		haste := s.AbilityHaste
		if ab.IsUltimate() {
			haste += s.UltimateHaste
		}
		base := ab.Cooldowns[rank-1]
		out = append(out, AbilityCooldown{
			Key:    ab.Key,
			Name:   ab.Name,
			Base:   base,
			Actual: Cooldown(base, haste),
		})
	}
	return out
}
