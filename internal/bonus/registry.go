package bonus

import "github.com/udisondev/arenacalc/internal/stats"

// Well-known reference ids the registry binds to. These mirror the
// content catalog's stable identifiers.
const (
	ChampionYone     = 777
	ChampionDarius   = 122
	ChampionVolibear = 106

	RuneLethalTempo    = 8008
	RuneConqueror      = 8010
	RuneGatheringStorm = 8236

	ItemMejais   = 3041
	ItemDarkSeal = 1082
	ItemHubris   = 6697
)

// Registry is the built-in conditional-bonus table. Evaluation is fully
// generic: nothing outside this file knows which champion or item a
// bonus belongs to.
var Registry = []Definition{
	{
		ID:      "yone-way-of-the-hunter",
		Label:   "Way of the Hunter (crit conversion)",
		Kind:    ModeToggle,
		Default: 1,
		Source:  SourceChampion,
		Ref:     ChampionYone,
		Calc: func(v float64, level int) stats.Delta {
			// Doubles effective crit odds; the aggregator re-clamps.
			return stats.Delta{CritChanceMultiplier: 2, FlatCritMultiplier: -0.825}
		},
	},
	{
		ID:     "darius-hemorrhage",
		Label:  "Hemorrhage stacks",
		Kind:   ModeValue,
		Max:    5,
		Source: SourceChampion,
		Ref:    ChampionDarius,
		Calc: func(v float64, level int) stats.Delta {
			// 30-230 bonus AD at full stacks, linear in level.
			full := 30 + 200*float64(stats.ClampLevel(level)-1)/17
			return stats.Delta{AttackDamage: full * v / 5}
		},
	},
	{
		ID:     "volibear-the-relentless-storm",
		Label:  "The Relentless Storm stacks",
		Kind:   ModeValue,
		Max:    4,
		Source: SourceChampion,
		Ref:    ChampionVolibear,
		Calc: func(v float64, level int) stats.Delta {
			return stats.Delta{AttackSpeed: 0.04 * v}
		},
	},
	{
		ID:      "lethal-tempo",
		Label:   "Lethal Tempo stacks",
		Kind:    ModeValue,
		Max:     6,
		Default: 0,
		Source:  SourceRune,
		Ref:     RuneLethalTempo,
		Calc: func(v float64, level int) stats.Delta {
			return stats.Delta{AttackSpeed: 0.05 * v}
		},
	},
	{
		ID:     "conqueror",
		Label:  "Conqueror stacks",
		Kind:   ModeValue,
		Max:    12,
		Source: SourceRune,
		Ref:    RuneConqueror,
		Calc: func(v float64, level int) stats.Delta {
			// 1.8-4.5 adaptive AD per stack by level.
			per := 1.8 + 2.7*float64(stats.ClampLevel(level)-1)/17
			return stats.Delta{AttackDamage: per * v}
		},
	},
	{
		ID:     "gathering-storm",
		Label:  "Gathering Storm (10-min intervals)",
		Kind:   ModeValue,
		Max:    6,
		Source: SourceRune,
		Ref:    RuneGatheringStorm,
		Calc: func(v float64, level int) stats.Delta {
			// 0, 8, 24, 48, 80, 120, 168 AD over the first six intervals.
			n := v
			return stats.Delta{AttackDamage: 4 * n * (n + 1)}
		},
	},
	{
		ID:     "hubris-eminence",
		Label:  "Eminence stacks (takedowns)",
		Kind:   ModeValue,
		Max:    60,
		Source: SourceItem,
		Ref:    ItemHubris,
		Calc: func(v float64, level int) stats.Delta {
			return stats.Delta{AttackDamage: 10 + 2*v}
		},
	},
}
