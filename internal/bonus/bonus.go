// Package bonus models conditional stat bonuses — character passives,
// talent effects, item set-bonuses and stack-based item effects — as a
// flat table of (id, input mode, pure calc function) records evaluated
// generically. One subtype per character is deliberately avoided: the
// whole catalog is data.
package bonus

import (
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// Mode says how the user parameterizes a bonus.
type Mode int

const (
	// ModeToggle is an on/off switch: value 0 (off) or 1 (on).
	ModeToggle Mode = iota
	// ModeValue is a bounded numeric input (stacks, seconds, percent).
	ModeValue
)

// SourceKind says where a bonus definition attaches.
type SourceKind int

const (
	SourceChampion SourceKind = iota
	SourceRune
	SourceItem
)

// Definition is one catalog entry of the conditional-bonus table.
// Calc must be pure: same (value, level) in, same delta out.
type Definition struct {
	ID    string
	Label string

	Kind Mode
	Min  float64
	Max  float64
	// Default is the value used when the user has not touched the input.
	Default float64

	Source SourceKind
	// Ref id-matches the definition to its source: champion id for
	// champion passives, rune id for talent effects, item id for item
	// effects.
	Ref int

	Calc func(value float64, level int) stats.Delta
}

// ClampValue bounds a user-supplied value to the definition's range.
// Toggles collapse to 0 or 1.
func (d Definition) ClampValue(v float64) float64 {
	if d.Kind == ModeToggle {
		if v != 0 {
			return 1
		}
		return 0
	}
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Evaluate runs every applicable definition against the user value map
// and accumulates the results field-wise, exactly like the item and
// shard accumulators. Definitions whose effective value is zero (toggle
// off, numeric 0) contribute nothing. Pure: no side effects.
func Evaluate(defs []Definition, values map[string]float64, level int) stats.Delta {
	var total stats.Delta
	for _, d := range defs {
		v, ok := values[d.ID]
		if !ok {
			v = d.Default
		}
		v = d.ClampValue(v)
		if v == 0 || d.Calc == nil {
			continue
		}
		total = total.Add(d.Calc(v, level))
	}
	return total
}

// StackDelta resolves a stacking item's contribution for the given stack
// count, clamped to [0, MaxStacks].
func StackDelta(it *catalog.Item, count int) stats.Delta {
	if it == nil || it.Stacking == nil {
		return stats.Delta{}
	}
	if count < 0 {
		count = 0
	}
	if count > it.Stacking.MaxStacks {
		count = it.Stacking.MaxStacks
	}
	per := stats.FromItemStats(it.Stacking.PerStack)
	var total stats.Delta
	for i := 0; i < count; i++ {
		total = total.Add(per)
	}
	return total
}

// ForBuild filters the registry down to the definitions applicable to
// one combatant: champion passives id-matched to the champion,
// generically applicable rune effects matched to selected rune ids, and
// item effects matched to equipped item ids.
func ForBuild(championID int, items []catalog.Item, page catalog.RunePage) []Definition {
	runeIDs := page.RuneIDs()

	var defs []Definition
	for _, d := range Registry {
		switch d.Source {
		case SourceChampion:
			if d.Ref == championID {
				defs = append(defs, d)
			}
		case SourceRune:
			for _, id := range runeIDs {
				if d.Ref == id {
					defs = append(defs, d)
					break
				}
			}
		case SourceItem:
			for i := range items {
				if d.Ref == items[i].ID {
					defs = append(defs, d)
					break
				}
			}
		}
	}
	return defs
}
