package catalog

// ItemStats is the flat stat block an item grants while equipped.
// Percent-valued fields (crit chance, penetration, vamp) are fractions
// in [0,1]; attack speed is attacks-per-second added on top of the base.
type ItemStats struct {
	Health          float64 `yaml:"health"`
	Mana            float64 `yaml:"mana"`
	AttackDamage    float64 `yaml:"attack_damage"`
	AbilityPower    float64 `yaml:"ability_power"`
	Armor           float64 `yaml:"armor"`
	MagicResist     float64 `yaml:"magic_resist"`
	AttackSpeed     float64 `yaml:"attack_speed"`
	CritChance      float64 `yaml:"crit_chance"`
	MoveSpeed       float64 `yaml:"move_speed"`
	AbilityHaste    float64 `yaml:"ability_haste"`
	UltimateHaste   float64 `yaml:"ultimate_haste"`
	Lethality       float64 `yaml:"lethality"`
	FlatMagicPen    float64 `yaml:"flat_magic_pen"`
	PercentMagicPen float64 `yaml:"percent_magic_pen"`
	PercentArmorPen float64 `yaml:"percent_armor_pen"`
	LifeSteal       float64 `yaml:"life_steal"`
	Omnivamp        float64 `yaml:"omnivamp"`
	Tenacity        float64 `yaml:"tenacity"`
	HealthRegen     float64 `yaml:"health_regen"`
	ManaRegen       float64 `yaml:"mana_regen"`
}

// OnHitEffect is an item effect folded into basic attacks.
// Trigger "onhit" fires on every attack; trigger "spellblade" fires only
// on the first attack after an ability cast, at most once per cast.
// Proc damage = Flat + BaseADRatio × attacker base AD + APRatio × AP.
type OnHitEffect struct {
	Trigger     string     `yaml:"trigger"`
	Flat        float64    `yaml:"flat"`
	BaseADRatio float64    `yaml:"base_ad_ratio"`
	APRatio     float64    `yaml:"ap_ratio"`
	DamageType  DamageType `yaml:"damage_type"`
}

// ActiveEffect is a usable item effect dealing a flat damage amount.
type ActiveEffect struct {
	Name       string     `yaml:"name"`
	Flat       float64    `yaml:"flat"`
	APRatio    float64    `yaml:"ap_ratio"`
	DamageType DamageType `yaml:"damage_type"`
	Cooldown   float64    `yaml:"cooldown"`
}

// StackingEffect is a per-stack stat grant with a hard stack cap
// (Mejai's-style items). Stack counts above MaxStacks clamp.
type StackingEffect struct {
	PerStack  ItemStats `yaml:"per_stack"`
	MaxStacks int       `yaml:"max_stacks"`
}

// Item is the immutable reference record for an equippable item. Up to
// six occupy a combatant's slots; empty slots are simply absent.
type Item struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Tags        []string `yaml:"tags"` // e.g. "boots", "legendary"
	Description string   `yaml:"description"`

	Stats    ItemStats       `yaml:"stats"`
	OnHit    []OnHitEffect   `yaml:"on_hit"`
	Active   *ActiveEffect   `yaml:"active"`
	Stacking *StackingEffect `yaml:"stacking"`
}

// HasTag reports whether the item carries the given category tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InfinityEdgeID is the legendary whose presence raises the crit damage
// multiplier once combined crit chance reaches the 60% threshold.
const InfinityEdgeID = 3031
