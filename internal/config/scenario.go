package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arenacalc/internal/build"
	"github.com/udisondev/arenacalc/internal/buildcode"
	"github.com/udisondev/arenacalc/internal/catalog"
	"github.com/udisondev/arenacalc/internal/stats"
)

// CombatantSpec declares one side of an encounter by catalog ids.
// Either Code (compact build string) or the explicit fields may be used;
// Code wins when both are present.
type CombatantSpec struct {
	Code string `yaml:"code"`

	ChampionID int   `yaml:"champion_id"`
	Level      int   `yaml:"level"`
	Items      []int `yaml:"items"`

	Runes     [8]int `yaml:"runes"`
	ShardRows [3]int `yaml:"shard_rows"`

	Bonuses  map[string]float64 `yaml:"bonuses"`
	Passives map[string]float64 `yaml:"passives"`
	Stacks   map[int]int        `yaml:"stacks"`

	Generic   stats.GenericBonus `yaml:"generic"`
	FormGroup string             `yaml:"form_group"`
}

// Combatant resolves the spec against the catalog. A compact build
// string takes precedence; a malformed one falls back to the explicit
// fields ("no build to restore"), never fails the load.
func (s CombatantSpec) Combatant(cat *catalog.Catalog) build.Combatant {
	if s.Code != "" {
		if b, err := buildcode.Decode(s.Code); err == nil {
			c := build.FromCode(cat, b)
			c.BonusValues = s.Bonuses
			c.PassiveValues = s.Passives
			c.Stacks = s.Stacks
			c.Generic = s.Generic
			c.FormGroup = s.FormGroup
			return c
		}
	}

	c := build.Combatant{
		Champion:      cat.Champion(s.ChampionID),
		Level:         s.Level,
		Page:          catalog.RunePageFromIDs(s.Runes, s.ShardRows),
		BonusValues:   s.Bonuses,
		PassiveValues: s.Passives,
		Stacks:        s.Stacks,
		Generic:       s.Generic,
		FormGroup:     s.FormGroup,
	}
	for _, id := range s.Items {
		if it := cat.Item(id); it != nil {
			c.Items = append(c.Items, *it)
		}
	}
	for _, id := range s.Runes {
		if r := cat.Rune(id); r != nil {
			c.Runes = append(c.Runes, *r)
		}
	}
	return c
}

// Scenario is one encounter description: two combatants and the
// attacker's combo configuration.
type Scenario struct {
	Attacker CombatantSpec     `yaml:"attacker"`
	Defender CombatantSpec     `yaml:"defender"`
	Combo    build.ComboConfig `yaml:"combo"`

	// Minute indexes the minion/structure reference tables.
	Minute int `yaml:"minute"`
}

// LoadScenario reads an encounter description from a YAML file.
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}
