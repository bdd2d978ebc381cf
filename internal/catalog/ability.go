package catalog

// DamageType classifies how a damage instance is mitigated.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagic    DamageType = "magic"
	DamageTrue     DamageType = "true"
)

// Scaling is one (stat, ratio) term of an ability's damage formula.
// Stat keys name either an attacker stat (ad, bonusAd, baseAd, ap, maxHp,
// bonusHp, maxMana, armor, mr, lethality) or a defender stat (targetMaxHp,
// targetCurrentHp, targetMissingHp). Keys outside that vocabulary are
// skipped by the resolver, not rejected, since catalog files may carry
// entries newer than this binary.
type Scaling struct {
	Stat  string  `yaml:"stat"`
	Ratio float64 `yaml:"ratio"`
}

// DistanceMultiplier maps a normalized 0-100 distance percent linearly
// into [Min, Max]. Abilities without one always use multiplier 1.
type DistanceMultiplier struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SubCast is an independently triggerable variant of one ability: a
// multi-stage cast, an empowered recast, or a form-dependent version.
// Variants belonging to different character forms carry a FormGroup tag
// and are mutually exclusive with variants of other groups.
type SubCast struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	BaseDamage []float64  `yaml:"base_damage"`
	DamageType DamageType `yaml:"damage_type"`
	Scalings   []Scaling  `yaml:"scalings"`
	FormGroup  string     `yaml:"form_group"`

	Distance *DistanceMultiplier `yaml:"distance"`
}

// Ability is the per-slot skill definition: per-rank base damage, a single
// damage type, an ordered scaling list and per-rank cooldown/cost arrays.
type Ability struct {
	Key        string     `yaml:"key"` // Q, W, E, R, P
	Name       string     `yaml:"name"`
	BaseDamage []float64  `yaml:"base_damage"`
	DamageType DamageType `yaml:"damage_type"`
	Scalings   []Scaling  `yaml:"scalings"`
	Cooldowns  []float64  `yaml:"cooldowns"`
	Costs      []float64  `yaml:"costs"`

	Distance *DistanceMultiplier `yaml:"distance"`
	SubCasts []SubCast           `yaml:"sub_casts"`
}

// MaxRank returns the number of ranks the ability has.
func (a *Ability) MaxRank() int {
	if n := len(a.BaseDamage); n > 0 {
		return n
	}
	return len(a.Cooldowns)
}

// IsUltimate reports whether the ability sits on the ultimate slot.
func (a *Ability) IsUltimate() bool {
	return a.Key == "R"
}
