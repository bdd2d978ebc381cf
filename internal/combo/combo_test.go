package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/damage"
	"github.com/udisondev/arenacalc/internal/stats"
)

func plainSkill(id string, base float64) SkillCast {
	return SkillCast{
		Spell: damage.Spell{
			ID:         id,
			Name:       id,
			BaseDamage: []float64{base},
			Type:       catalog.DamageTrue,
		},
		Rank: 1,
	}
}

func executeSkill(id string, base, missingRatio float64) SkillCast {
	return SkillCast{
		Spell: damage.Spell{
			ID:         id,
			Name:       id,
			BaseDamage: []float64{base},
			Type:       catalog.DamageTrue,
			Scalings:   []catalog.Scaling{{Stat: "targetMissingHp", Ratio: missingRatio}},
		},
		Rank: 1,
	}
}

func testInput() Input {
	return Input{
		Attacker: stats.Computed{AttackDamage: 100},
		Defender: stats.Computed{Health: 2000, MaxHealth: 2000},
		Level:    18,
	}
}

func TestRun_AttacksOnly(t *testing.T) {
	in := testInput()
	in.Attack = damage.AttackResult{Total: 137.5}

	res := Run(Counts{ActionAttack: 3}, in)
	assert.InDelta(t, 412.5, res.Total, 1e-9, "combo total is exactly aa × count")
	require.Len(t, res.Segments, 1)
	assert.Equal(t, 3, res.Segments[0].Count)
}

func TestRun_NegativeCountsClampToZero(t *testing.T) {
	in := testInput()
	in.Attack = damage.AttackResult{Total: 100}
	in.Skills = []SkillCast{plainSkill("Q", 50)}

	res := Run(Counts{ActionAttack: -4, "Q": -1}, in)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Segments)
}

func TestRun_SkillsTimesCounts(t *testing.T) {
	in := testInput()
	in.Skills = []SkillCast{plainSkill("Q", 100), plainSkill("W", 250)}

	res := Run(Counts{"Q": 2, "W": 1}, in)
	assert.InDelta(t, 450.0, res.Total, 1e-9)
}

func TestRun_TwoPhaseFeedback(t *testing.T) {
	in := testInput()
	in.Attack = damage.AttackResult{Total: 500}
	// Execute-style skill: 100 base + 20% of missing health.
	in.Skills = []SkillCast{executeSkill("R", 100, 0.2)}

	res := Run(Counts{ActionAttack: 2, "R": 1}, in)

	// Phase 1 deals 1000; phase 2 sees 1000 missing HP.
	want := 1000.0 + (100 + 0.2*1000)
	assert.InDelta(t, want, res.Total, 1e-9)
}

func TestRun_Phase1UnaffectedByHPSensitiveSkills(t *testing.T) {
	base := testInput()
	base.Attack = damage.AttackResult{Total: 300}
	base.Skills = []SkillCast{plainSkill("Q", 150)}
	counts := Counts{ActionAttack: 2, "Q": 1}

	without := Run(counts, base)

	withExec := base
	withExec.Skills = append([]SkillCast{}, base.Skills...)
	withExec.Skills = append(withExec.Skills, executeSkill("R", 100, 0.25))
	countsExec := Counts{ActionAttack: 2, "Q": 1, "R": 1}

	with := Run(countsExec, withExec)

	// Adding an HP-sensitive skill must leave every phase-1 segment as-is.
	require.Len(t, with.Segments, len(without.Segments)+1)
	for i, seg := range without.Segments {
		assert.Equal(t, seg, with.Segments[i], "phase-1 segment %d changed", i)
	}
	assert.Greater(t, with.Total, without.Total)
}

func TestRun_HPSensitiveOrderIsCatalogOrder(t *testing.T) {
	in := testInput()
	in.Attack = damage.AttackResult{Total: 500}
	in.Skills = []SkillCast{
		executeSkill("R", 0, 0.5),
		executeSkill("Q", 0, 0.1),
	}

	res := Run(Counts{ActionAttack: 1, "R": 1, "Q": 1}, in)

	// R replays first against 500 missing (250), then Q sees 750 missing.
	require.Len(t, res.Segments, 3)
	assert.Equal(t, "R", res.Segments[1].ID)
	assert.InDelta(t, 250.0, res.Segments[1].Damage, 1e-9)
	assert.Equal(t, "Q", res.Segments[2].ID)
	assert.InDelta(t, 75.0, res.Segments[2].Damage, 1e-9)
}

func TestRun_EffectiveHealthFloorsAtZero(t *testing.T) {
	in := testInput()
	in.Defender = stats.Computed{Health: 100, MaxHealth: 100}
	in.Attack = damage.AttackResult{Total: 500}
	in.Skills = []SkillCast{executeSkill("R", 50, 0.3)}

	res := Run(Counts{ActionAttack: 1, "R": 1}, in)

	// Running total 500 exceeds max HP 100: missing HP caps at 100.
	require.Len(t, res.Segments, 2)
	assert.InDelta(t, 50+0.3*100, res.Segments[1].Damage, 1e-9)
}

func TestRun_SpellbladeCappedByMinSkillsAttacks(t *testing.T) {
	in := testInput()
	in.Attack = damage.AttackResult{Total: 100}
	in.Skills = []SkillCast{plainSkill("Q", 10), plainSkill("W", 10)}
	in.Spellblade = 75

	// 3 skill casts vs 2 attacks: 2 procs.
	res := Run(Counts{ActionAttack: 2, "Q": 2, "W": 1}, in)
	var proc float64
	for _, seg := range res.Segments {
		if seg.ID == "spellblade" {
			proc = seg.Damage
			assert.Equal(t, 2, seg.Count)
		}
	}
	assert.InDelta(t, 150.0, proc, 1e-9)

	// No attacks: no procs at all.
	res = Run(Counts{"Q": 2, "W": 1}, in)
	for _, seg := range res.Segments {
		assert.NotEqual(t, "spellblade", seg.ID)
	}
}

func TestRun_PassiveSummonerAndActives(t *testing.T) {
	in := testInput()
	in.PassiveDamage = 40
	in.SummonerDamage = 410
	in.ItemActives = []ItemActive{
		{Name: "Titanic Crescent", Damage: 120, Uses: 2},
		{Name: "Unused", Damage: 90, Uses: 0},
	}

	res := Run(Counts{ActionPassive: 3}, in)
	assert.InDelta(t, 40*3+410+240, res.Total, 1e-9)
	require.Len(t, res.Segments, 3, "unused active contributes no segment")
}

func TestRun_SkillBonusAddOn(t *testing.T) {
	in := testInput()
	in.Skills = []SkillCast{plainSkill("Q", 100), {
		Spell: damage.Spell{ID: "Q:sub", Name: "sub", BaseDamage: []float64{10}, Type: catalog.DamageTrue},
		Rank:  1,
	}}
	in.SkillBonuses = map[string]float64{"Q": 50}

	res := Run(Counts{"Q": 2, "Q:sub": 1}, in)

	// Bonus applies per cast of both the main cast and its sub-cast.
	assert.InDelta(t, (100+50)*2+(10+50), res.Total, 1e-9)
}

func TestAbilityKeyOf(t *testing.T) {
	assert.Equal(t, "Q", AbilityKeyOf("Q"))
	assert.Equal(t, "E", AbilityKeyOf("E:wall"))
	assert.Equal(t, "aa", AbilityKeyOf("aa"))
}
