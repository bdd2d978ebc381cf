package build

import (
	"github.com/udisondev/arenacalc/internal/bonus"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/combo"
	"github.com/udisondev/arenacalc/internal/damage"
	"github.com/udisondev/arenacalc/internal/stats"
)

// ComboConfig is the per-interaction combo intake from the UI layer:
// repetition counts, skill ranks, distance inputs and toggle state.
// Values outside catalog bounds clamp instead of erroring.
type ComboConfig struct {
	Counts      combo.Counts       `yaml:"counts"`
	Ranks       map[string]int     `yaml:"ranks"`
	DistancePct map[string]float64 `yaml:"distance_pct"`

	OnHitEnabled   bool        `yaml:"on_hit_enabled"`
	SummonerDamage float64     `yaml:"summoner_damage"`
	ItemActiveUses map[int]int `yaml:"item_active_uses"`

	// PassiveDamage is the champion passive's raw per-proc damage,
	// counted under the "passive" action. Mitigated by its declared type,
	// magic when unset.
	PassiveDamage     float64            `yaml:"passive_damage"`
	PassiveDamageType catalog.DamageType `yaml:"passive_damage_type"`

	// AttackCount/CritCount opt into the exact finite crit average.
	AttackCount int `yaml:"attack_count"`
	CritCount   int `yaml:"crit_count"`
}

// ComboInput assembles the full sequencer input for attacker against
// defender: flattened skill casts, the averaged basic attack with item
// and passive on-hit effects, the spellblade proc, item actives and the
// conditional skill add-ons.
func ComboInput(attacker Combatant, atk, def stats.Computed, level int, cfg ComboConfig) combo.Input {
	in := combo.Input{
		Attacker:       atk,
		Defender:       def,
		Level:          level,
		SkillBonuses:   map[string]float64{},
		SummonerDamage: cfg.SummonerDamage,
	}

	for _, sp := range attacker.Spells() {
		in.Skills = append(in.Skills, combo.SkillCast{
			Spell:       sp,
			Rank:        cfg.Ranks[combo.AbilityKeyOf(sp.ID)],
			DistancePct: cfg.DistancePct[sp.ID],
		})
	}

	onhit := attacker.OnHitEffects()
	passives := attacker.ComboPassives()

	opts := damage.AttackOptions{
		AttackCount: cfg.AttackCount,
		CritCount:   cfg.CritCount,
	}
	if cfg.OnHitEnabled {
		opts.OnHit = onhit
		for _, ex := range bonus.PassiveOnHit(passives, attacker.PassiveValues, atk) {
			opts.Extra = append(opts.Extra, damage.ExtraOnHit{Amount: ex.Amount, Type: ex.Type})
		}
	}
	in.Attack = damage.ResolveAttack(atk, def, level, opts)

	in.Spellblade = damage.SpellbladeProc(onhit, atk, def, level)
	in.SkillBonuses = bonus.SkillBonuses(passives, attacker.PassiveValues, atk)

	if cfg.PassiveDamage > 0 {
		typ := cfg.PassiveDamageType
		if typ == "" {
			typ = catalog.DamageMagic
		}
		in.PassiveDamage = damage.Mitigate(cfg.PassiveDamage, typ, atk, def, level).Total
	}

	for i := range attacker.Items {
		it := &attacker.Items[i]
		if it.Active == nil {
			continue
		}
		raw := it.Active.Flat + it.Active.APRatio*atk.AbilityPower
		typ := it.Active.DamageType
		if typ == "" {
			typ = catalog.DamageMagic
		}
		in.ItemActives = append(in.ItemActives, combo.ItemActive{
			Name:   it.Active.Name,
			Damage: damage.Mitigate(raw, typ, atk, def, level).Total,
			Uses:   cfg.ItemActiveUses[it.ID],
		})
	}

	return in
}
