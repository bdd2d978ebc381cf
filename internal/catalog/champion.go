package catalog

// StatGrowth holds a base value at level 1 and its per-level growth rate.
// The growth curve itself lives in the stats package.
type StatGrowth struct {
	Base   float64 `yaml:"base"`
	Growth float64 `yaml:"growth"`
}

// Champion is the immutable reference record for a playable character.
// Loaded once per session from the catalog files and never mutated.
type Champion struct {
	ID   int    `yaml:"id"`
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`

	Health       StatGrowth `yaml:"health"`
	Mana         StatGrowth `yaml:"mana"`
	Armor        StatGrowth `yaml:"armor"`
	MagicResist  StatGrowth `yaml:"magic_resist"`
	AttackDamage StatGrowth `yaml:"attack_damage"`
	AttackSpeed  StatGrowth `yaml:"attack_speed"`
	HealthRegen  StatGrowth `yaml:"health_regen"`
	ManaRegen    StatGrowth `yaml:"mana_regen"`

	// Flat attributes: no per-level growth.
	MoveSpeed   float64 `yaml:"move_speed"`
	AttackRange float64 `yaml:"attack_range"`

	Abilities []Ability `yaml:"abilities"`
}

// Ability returns the ability bound to the given slot key (Q/W/E/R/P),
// or nil if the champion has no ability on that slot.
func (c *Champion) Ability(key string) *Ability {
	for i := range c.Abilities {
		if c.Abilities[i].Key == key {
			return &c.Abilities[i]
		}
	}
	return nil
}
