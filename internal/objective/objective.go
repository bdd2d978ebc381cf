// Package objective models non-player combat entities — lane minions and
// the defensive turret — whose reference stats vary with the match clock.
package objective

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/damage"
	"github.com/udisondev/arenacalc/internal/stats"
)

// MinionTier identifies one lane-minion kind.
type MinionTier string

const (
	MinionMelee  MinionTier = "melee"
	MinionCaster MinionTier = "caster"
	MinionCannon MinionTier = "cannon"
	MinionSuper  MinionTier = "super"
)

// Stats is the time-indexed combat profile of a non-player entity.
type Stats struct {
	Health       float64
	AttackDamage float64
	Armor        float64
	MagicResist  float64
}

// minionProfile holds spawn values and per-minute growth. Scaling starts
// once upgrades begin at minute 2 and is discretized per whole minute.
type minionProfile struct {
	base       Stats
	perMinute  Stats
	growthFrom int
}

var minionTable = map[MinionTier]minionProfile{
	MinionMelee: {
		base:       Stats{Health: 477, AttackDamage: 12, Armor: 0, MagicResist: 0},
		perMinute:  Stats{Health: 22, AttackDamage: 0.75},
		growthFrom: 2,
	},
	MinionCaster: {
		base:       Stats{Health: 296, AttackDamage: 24, Armor: 0, MagicResist: 0},
		perMinute:  Stats{Health: 7, AttackDamage: 1.5},
		growthFrom: 2,
	},
	MinionCannon: {
		base:       Stats{Health: 912, AttackDamage: 41, Armor: 0, MagicResist: 0},
		perMinute:  Stats{Health: 54, AttackDamage: 2.25},
		growthFrom: 2,
	},
	MinionSuper: {
		base:       Stats{Health: 1600, AttackDamage: 230, Armor: 30, MagicResist: -30},
		perMinute:  Stats{Health: 200, AttackDamage: 5},
		growthFrom: 2,
	},
}

func (p minionProfile) at(minute int) Stats {
	steps := minute - p.growthFrom
	if steps < 0 {
		steps = 0
	}
	n := float64(steps)
	return Stats{
		Health:       p.base.Health + p.perMinute.Health*n,
		AttackDamage: p.base.AttackDamage + p.perMinute.AttackDamage*n,
		Armor:        p.base.Armor + p.perMinute.Armor*n,
		MagicResist:  p.base.MagicResist + p.perMinute.MagicResist*n,
	}
}

// MinionStats returns a tier's stats at the given match-clock minute.
// Negative minutes clamp to 0.
func MinionStats(tier MinionTier, minute int) Stats {
	if minute < 0 {
		minute = 0
	}
	p, ok := minionTable[tier]
	if !ok {
		return Stats{}
	}
	return p.at(minute)
}

// TurretStats returns the outer turret's profile at the given minute.
// Turret AD ramps until minute 10, defenses are flat.
func TurretStats(minute int) Stats {
	if minute < 0 {
		minute = 0
	}
	ad := 162.0 + 9*float64(minute)
	if ad > 278 {
		ad = 278
	}
	return Stats{Health: 5000, AttackDamage: ad, Armor: 40, MagicResist: 40}
}

func (s Stats) computed() stats.Computed {
	return stats.Computed{
		Health:       s.Health,
		MaxHealth:    s.Health,
		AttackDamage: s.AttackDamage,
		Armor:        s.Armor,
		MagicResist:  s.MagicResist,
	}
}

// AttackDamageTo resolves one champion basic attack against the entity
// through the standard mitigation engine (no crit).
func AttackDamageTo(atk stats.Computed, target Stats, level int) float64 {
	return damage.Mitigate(atk.AttackDamage, catalog.DamagePhysical, atk, target.computed(), level).Total
}

// DamageFrom resolves one of the entity's attacks against a champion.
func DamageFrom(target Stats, def stats.Computed) float64 {
	return damage.Mitigate(target.AttackDamage, catalog.DamagePhysical, target.computed(), def, 1).Total
}

// TurretShotRamp is the per-consecutive-shot escalation on turret damage.
const TurretShotRamp = 0.4

// TurretShotsModeled caps the escalation sample.
const TurretShotsModeled = 5

// TurretShots returns the mitigated damage of the modeled consecutive
// turret shots against a champion: each shot hits 40% harder than the
// one before, capped at the modeled sample size.
func TurretShots(minute int, def stats.Computed) []float64 {
	turret := TurretStats(minute)
	shots := make([]float64, 0, TurretShotsModeled)
	for i := 0; i < TurretShotsModeled; i++ {
		raw := turret.AttackDamage * (1 + TurretShotRamp*float64(i))
		hit := damage.Mitigate(raw, catalog.DamagePhysical, turret.computed(), def, 1).Total
		shots = append(shots, hit)
	}
	return shots
}
