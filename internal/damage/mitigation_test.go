package damage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

func TestMitigate_HundredArmorHalves(t *testing.T) {
	// Penetration-free 100 raw physical against 100 armor: 100 × 100/200.
	atk := stats.Computed{}
	def := stats.Computed{Armor: 100}

	r := Mitigate(100, catalog.DamagePhysical, atk, def, 18)
	assert.Equal(t, 50.0, r.Total)
	assert.Equal(t, 50.0, r.Physical)
	assert.Zero(t, r.Magic)
}

func TestMitigate_SignBehavior(t *testing.T) {
	atk := stats.Computed{}
	raw := 100.0

	// Zero effective armor: damage passes unchanged.
	r := Mitigate(raw, catalog.DamagePhysical, atk, stats.Computed{}, 1)
	assert.Equal(t, raw, r.Total)

	// Positive armor mitigates.
	r = Mitigate(raw, catalog.DamagePhysical, atk, stats.Computed{Armor: 50}, 1)
	assert.Less(t, r.Total, raw)

	// Negative effective armor amplifies: no floor at zero.
	r = Mitigate(raw, catalog.DamagePhysical, atk, stats.Computed{Armor: -20}, 1)
	assert.Greater(t, r.Total, raw)
	assert.InDelta(t, 125.0, r.Total, 1e-9) // 100 × 100/80
}

func TestMitigate_ExtremeNegativeArmorStaysFinite(t *testing.T) {
	atk := stats.Computed{}

	r := Mitigate(100, catalog.DamagePhysical, atk, stats.Computed{Armor: -100}, 1)
	assert.False(t, math.IsInf(r.Total, 1), "armor at the pole must not blow up")
	assert.InDelta(t, 10000.0, r.Total, 1e-9)

	deeper := Mitigate(100, catalog.DamagePhysical, atk, stats.Computed{Armor: -500}, 1)
	assert.Equal(t, r.Total, deeper.Total, "amplification caps past the pole")
}

func TestMitigate_TrueDamagePassesThrough(t *testing.T) {
	def := stats.Computed{Armor: 300, MagicResist: 300}
	r := Mitigate(100, catalog.DamageTrue, stats.Computed{}, def, 10)
	assert.Equal(t, 100.0, r.Total)
	assert.Equal(t, 100.0, r.True)
}

func TestEffectiveArmor_PenetrationOrder(t *testing.T) {
	// Flat reduction, percent reduction, percent pen, then lethality.
	atk := stats.Computed{PercentArmorPen: 0.3, Lethality: 18}
	def := stats.Computed{Armor: 120}
	red := Reduction{FlatArmor: 20, PercentArmor: 0.25}

	// ((120 − 20) × 0.75 × 0.7) − 18 × (0.6 + 0.4 × 18/18)
	want := (120-20)*0.75*0.7 - 18*1.0
	assert.InDelta(t, want, EffectiveArmor(atk, def, 18, red), 1e-9)
}

func TestEffectiveArmor_LethalityScalesWithLevel(t *testing.T) {
	atk := stats.Computed{Lethality: 18}
	def := stats.Computed{Armor: 100}

	// Level 1: lethality × (0.6 + 0.4/18).
	lvl1 := EffectiveArmor(atk, def, 1, Reduction{})
	assert.InDelta(t, 100-18*(0.6+0.4/18), lvl1, 1e-9)

	// Level 18: full value.
	lvl18 := EffectiveArmor(atk, def, 18, Reduction{})
	assert.InDelta(t, 82.0, lvl18, 1e-9)
	assert.Less(t, lvl18, lvl1, "lethality bites harder at high level")
}

func TestEffectiveMR_PercentThenFlat(t *testing.T) {
	atk := stats.Computed{PercentMagicPen: 0.4, FlatMagicPen: 18}
	def := stats.Computed{MagicResist: 100}

	// 100 × 0.6 − 18
	assert.InDelta(t, 42.0, EffectiveMR(atk, def, Reduction{}), 1e-9)
}

func TestMitigate_NegativeEffectiveArmorFromLethality(t *testing.T) {
	atk := stats.Computed{Lethality: 30}
	def := stats.Computed{Armor: 10}

	r := Mitigate(100, catalog.DamagePhysical, atk, def, 18)
	assert.Greater(t, r.Total, 100.0, "lethality past armor amplifies")
}

func TestResult_AddAndScale(t *testing.T) {
	r := Result{Physical: 50, Total: 50}.Add(Result{Magic: 30, Total: 30})
	assert.Equal(t, Result{Physical: 50, Magic: 30, Total: 80}, r)
	assert.Equal(t, Result{Physical: 100, Magic: 60, Total: 160}, r.Scale(2))
}
