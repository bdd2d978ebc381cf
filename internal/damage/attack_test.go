package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

func TestResolveAttack_CritExpectation(t *testing.T) {
	atk := stats.Computed{AttackDamage: 100, CritChance: 0.5, CritMultiplier: 1.75}
	r := ResolveAttack(atk, stats.Computed{}, 1, AttackOptions{})

	// 1 + 0.5 × 0.75
	assert.InDelta(t, 1.375, r.CritFactor, 1e-9)
	assert.InDelta(t, 137.5, r.Total, 1e-9)
}

func TestResolveAttack_ExactCritCountAverage(t *testing.T) {
	atk := stats.Computed{AttackDamage: 100, CritChance: 0.5, CritMultiplier: 2.0}

	// 3 attacks, 1 crit: (2 + 1×2) / 3 — exact, ignores crit chance.
	r := ResolveAttack(atk, stats.Computed{}, 1, AttackOptions{AttackCount: 3, CritCount: 1})
	assert.InDelta(t, 4.0/3.0, r.CritFactor, 1e-9)

	// Crit count clamps to the sample.
	r = ResolveAttack(atk, stats.Computed{}, 1, AttackOptions{AttackCount: 3, CritCount: 7})
	assert.InDelta(t, 2.0, r.CritFactor, 1e-9)

	r = ResolveAttack(atk, stats.Computed{}, 1, AttackOptions{AttackCount: 3, CritCount: -1})
	assert.InDelta(t, 1.0, r.CritFactor, 1e-9)
}

func TestResolveAttack_OnHitTriggerFilter(t *testing.T) {
	atk := stats.Computed{AttackDamage: 100}
	onhit := []catalog.OnHitEffect{
		{Trigger: "onhit", Flat: 60, DamageType: catalog.DamageMagic},
		{Trigger: "spellblade", BaseADRatio: 2, DamageType: catalog.DamagePhysical},
	}

	r := ResolveAttack(atk, stats.Computed{}, 1, AttackOptions{OnHit: onhit})
	assert.Equal(t, 60.0, r.OnHitRaw, "spellblade effects never fold into attacks")
	assert.Equal(t, 160.0, r.Total)
}

func TestResolveAttack_OnHitMitigatedPerType(t *testing.T) {
	atk := stats.Computed{AttackDamage: 100}
	def := stats.Computed{Armor: 100, MagicResist: 0}
	onhit := []catalog.OnHitEffect{{Trigger: "onhit", Flat: 40, DamageType: catalog.DamageMagic}}

	r := ResolveAttack(atk, def, 1, AttackOptions{OnHit: onhit})
	assert.InDelta(t, 50.0, r.Physical, 1e-9, "AD halved by armor")
	assert.InDelta(t, 40.0, r.OnHitTotal, 1e-9, "magic proc ignores armor")
}

func TestResolveAttack_ExtraOnHit(t *testing.T) {
	atk := stats.Computed{AttackDamage: 100}
	def := stats.Computed{Armor: 300, MagicResist: 300}

	r := ResolveAttack(atk, def, 1, AttackOptions{
		Extra: []ExtraOnHit{{Amount: 20, Type: catalog.DamageTrue}},
	})
	assert.InDelta(t, 20.0, r.OnHitTotal, 1e-9, "true damage extra passes through")
}

func TestSpellbladeProc(t *testing.T) {
	atk := stats.Computed{AttackDamage: 150, BaseAttackDamage: 100, AbilityPower: 60}
	effects := []catalog.OnHitEffect{
		{Trigger: "spellblade", BaseADRatio: 2, DamageType: catalog.DamagePhysical},
		{Trigger: "onhit", Flat: 1000, DamageType: catalog.DamageMagic},
	}

	got := SpellbladeProc(effects, atk, stats.Computed{}, 1)
	assert.Equal(t, 200.0, got, "only spellblade triggers count, scaled off base AD")
}

func TestDPS_AttackPlusOnHit(t *testing.T) {
	atk := stats.Computed{AttackDamage: 100, AttackSpeed: 1.5, CritMultiplier: 1.75}
	onhit := []catalog.OnHitEffect{{Trigger: "onhit", Flat: 40, DamageType: catalog.DamageMagic}}

	r := DPS(atk, stats.Computed{}, 1, onhit)
	assert.InDelta(t, 150.0, r.Attack, 1e-9)
	assert.InDelta(t, 60.0, r.OnHit, 1e-9)
	assert.InDelta(t, 210.0, r.Total, 1e-9)
}

func TestEffectiveHP(t *testing.T) {
	s := stats.Computed{MaxHealth: 2000, Armor: 100, MagicResist: 50}
	r := EffectiveHP(s)
	assert.Equal(t, 4000.0, r.Physical)
	assert.Equal(t, 3000.0, r.Magic)
}

func TestReductionFraction(t *testing.T) {
	assert.InDelta(t, 0.5, ReductionFraction(100), 1e-9)
	assert.InDelta(t, 0.0, ReductionFraction(0), 1e-9)
}
