package bonus

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// OnHitDamage is a typed flat damage amount folded into basic attacks.
type OnHitDamage struct {
	Amount float64
	Type   catalog.DamageType
}

// SkillProjection is a flat raw damage add-on keyed to one ability slot,
// applied once per cast of that ability inside a combo.
type SkillProjection struct {
	AbilityKey string
	Amount     func(value float64, atk stats.Computed) float64
}

// ComboPassive is the combo-specific bonus variant: besides an optional
// stat contribution it may project extra on-hit damage or a per-cast
// skill damage bonus. All projections are pure.
type ComboPassive struct {
	ID    string
	Label string

	Kind    Mode
	Min     float64
	Max     float64
	Default float64

	Source SourceKind
	Ref    int

	Stats      func(value float64, level int) stats.Delta
	OnHit      func(value float64, atk stats.Computed) OnHitDamage
	SkillBonus *SkillProjection
}

func (p ComboPassive) clampValue(v float64) float64 {
	d := Definition{Kind: p.Kind, Min: p.Min, Max: p.Max}
	return d.ClampValue(v)
}

func (p ComboPassive) value(values map[string]float64) float64 {
	v, ok := values[p.ID]
	if !ok {
		v = p.Default
	}
	return p.clampValue(v)
}

// PassiveStats accumulates the stat contributions of combo passives,
// parameterized by their own value map, with the standard summation.
func PassiveStats(passives []ComboPassive, values map[string]float64, level int) stats.Delta {
	var total stats.Delta
	for _, p := range passives {
		v := p.value(values)
		if v == 0 || p.Stats == nil {
			continue
		}
		total = total.Add(p.Stats(v, level))
	}
	return total
}

// PassiveOnHit collects the extra on-hit damage instances active combo
// passives add to each basic attack.
func PassiveOnHit(passives []ComboPassive, values map[string]float64, atk stats.Computed) []OnHitDamage {
	var out []OnHitDamage
	for _, p := range passives {
		v := p.value(values)
		if v == 0 || p.OnHit == nil {
			continue
		}
		out = append(out, p.OnHit(v, atk))
	}
	return out
}

// SkillBonuses maps ability slot keys to the summed flat raw damage
// active combo passives add per cast of that ability.
func SkillBonuses(passives []ComboPassive, values map[string]float64, atk stats.Computed) map[string]float64 {
	out := map[string]float64{}
	for _, p := range passives {
		v := p.value(values)
		if v == 0 || p.SkillBonus == nil {
			continue
		}
		out[p.SkillBonus.AbilityKey] += p.SkillBonus.Amount(v, atk)
	}
	return out
}

// PassivesForBuild filters the combo-passive registry like ForBuild.
func PassivesForBuild(championID int, items []catalog.Item, page catalog.RunePage) []ComboPassive {
	runeIDs := page.RuneIDs()

	var out []ComboPassive
	for _, p := range ComboRegistry {
		switch p.Source {
		case SourceChampion:
			if p.Ref == championID {
				out = append(out, p)
			}
		case SourceRune:
			for _, id := range runeIDs {
				if p.Ref == id {
					out = append(out, p)
					break
				}
			}
		case SourceItem:
			for i := range items {
				if p.Ref == items[i].ID {
					out = append(out, p)
					break
				}
			}
		}
	}
	return out
}

// Combo-passive reference ids.
const (
	ChampionVayne = 67
	ChampionJax   = 24

	RunePressTheAttack = 8005
)

// ComboRegistry holds the combo-specific conditional passives.
var ComboRegistry = []ComboPassive{
	{
		ID:      "vayne-silver-bolts",
		Label:   "Silver Bolts (every 3rd hit)",
		Kind:    ModeToggle,
		Default: 1,
		Source:  SourceChampion,
		Ref:     ChampionVayne,
		OnHit: func(v float64, atk stats.Computed) OnHitDamage {
			// One proc per three hits, averaged into every attack.
			return OnHitDamage{Amount: 20, Type: catalog.DamageTrue}
		},
	},
	{
		ID:     "jax-relentless-assault",
		Label:  "Relentless Assault stacks",
		Kind:   ModeValue,
		Max:    8,
		Source: SourceChampion,
		Ref:    ChampionJax,
		Stats: func(v float64, level int) stats.Delta {
			return stats.Delta{AttackSpeed: 0.035 * v}
		},
	},
	{
		ID:      "press-the-attack",
		Label:   "Press the Attack proc",
		Kind:    ModeToggle,
		Default: 0,
		Source:  SourceRune,
		Ref:     RunePressTheAttack,
		SkillBonus: &SkillProjection{
			AbilityKey: "Q",
			Amount: func(v float64, atk stats.Computed) float64 {
				return 40 + 0.1*atk.BonusAttackDamage()
			},
		},
	},
}
