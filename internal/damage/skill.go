package damage

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// Spell is one castable unit: an ability or one of its sub-casts,
// flattened so the combo sequencer can treat them uniformly.
type Spell struct {
	ID         string // ability key, or "<key>:<subcast id>"
	Name       string
	BaseDamage []float64
	Type       catalog.DamageType
	Scalings   []catalog.Scaling
	Distance   *catalog.DistanceMultiplier
	Ultimate   bool
}

// SkillResult is a resolved damage outcome for one cast.
type SkillResult struct {
	ID   string
	Name string
	Type catalog.DamageType

	// Unmitigated split, kept for breakdown display.
	Base   float64
	Scaled float64
	Raw    float64 // (Base + Scaled) × distance multiplier

	// Mitigated outcome.
	Total float64

	// HPSensitive marks scalings reading the target's current or missing
	// health; the combo sequencer schedules these for a second pass.
	HPSensitive bool
}

// FlattenAbility expands an ability into its castable spells: the main
// cast (when it deals damage) plus each sub-cast. Sub-casts tagged with a
// form group other than the requested one are excluded, since variants of
// different character forms never coexist.
func FlattenAbility(ab *catalog.Ability, formGroup string) []Spell {
	if ab == nil {
		return nil
	}
	var spells []Spell
	if len(ab.BaseDamage) > 0 || len(ab.Scalings) > 0 {
		spells = append(spells, Spell{
			ID:         ab.Key,
			Name:       ab.Name,
			BaseDamage: ab.BaseDamage,
			Type:       ab.DamageType,
			Scalings:   ab.Scalings,
			Distance:   ab.Distance,
			Ultimate:   ab.IsUltimate(),
		})
	}
	for i := range ab.SubCasts {
		sc := &ab.SubCasts[i]
		if sc.FormGroup != "" && formGroup != "" && sc.FormGroup != formGroup {
			continue
		}
		spells = append(spells, Spell{
			ID:         ab.Key + ":" + sc.ID,
			Name:       sc.Name,
			BaseDamage: sc.BaseDamage,
			Type:       sc.DamageType,
			Scalings:   sc.Scalings,
			Distance:   sc.Distance,
			Ultimate:   ab.IsUltimate(),
		})
	}
	return spells
}

// HPSensitive reports whether any scaling reads the target's current or
// missing health.
func (sp Spell) HPSensitive() bool {
	for _, s := range sp.Scalings {
		if s.Stat == "targetCurrentHp" || s.Stat == "targetMissingHp" {
			return true
		}
	}
	return false
}

// scalingValue resolves one scaling-stat key against the attacker or
// defender record. Unknown keys contribute zero: the catalog may carry
// vocabulary newer than this resolver.
func scalingValue(key string, atk, def stats.Computed) float64 {
	switch key {
	case "ad":
		return atk.AttackDamage
	case "bonusAd":
		return atk.BonusAttackDamage()
	case "baseAd":
		return atk.BaseAttackDamage
	case "ap":
		return atk.AbilityPower
	case "maxHp":
		return atk.MaxHealth
	case "bonusHp":
		return atk.BonusHealth()
	case "maxMana":
		return atk.MaxMana
	case "armor":
		return atk.Armor
	case "mr":
		return atk.MagicResist
	case "lethality":
		return atk.Lethality
	case "msFlat":
		return atk.MoveSpeed
	case "targetMaxHp":
		return def.MaxHealth
	case "targetCurrentHp":
		return def.Health
	case "targetMissingHp":
		return def.MissingHealth()
	}
	return 0
}

// distanceMultiplier maps a 0-100 distance percent linearly into the
// spell's [min, max] range. Spells without one always return 1.
func (sp Spell) distanceMultiplier(pct float64) float64 {
	if sp.Distance == nil {
		return 1
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return sp.Distance.Min + (sp.Distance.Max-sp.Distance.Min)*pct/100
}

// Resolve evaluates the spell at the given rank against a defender.
// Rank is 1-based and clamps to [1, maxRank]. Base damage is the ranked
// entry; scaled damage sums ratio × resolved stat over the scalings;
// the pre-mitigation total is (base + scaled) × distance multiplier.
func (sp Spell) Resolve(rank int, atk, def stats.Computed, level int, distancePct float64) SkillResult {
	res := SkillResult{
		ID:          sp.ID,
		Name:        sp.Name,
		Type:        sp.Type,
		HPSensitive: sp.HPSensitive(),
	}

	if n := len(sp.BaseDamage); n > 0 {
		if rank < 1 {
			rank = 1
		}
		if rank > n {
			rank = n
		}
		res.Base = sp.BaseDamage[rank-1]
	}

	for _, s := range sp.Scalings {
		res.Scaled += s.Ratio * scalingValue(s.Stat, atk, def)
	}

	res.Raw = (res.Base + res.Scaled) * sp.distanceMultiplier(distancePct)
	res.Total = Mitigate(res.Raw, sp.Type, atk, def, level).Total
	return res
}
