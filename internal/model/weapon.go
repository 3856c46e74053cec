package model

// WeaponStats holds the base statistics of a weapon before any modifier
// is applied. Immutable input; the engine never mutates it after
// construction.
//
// critical_chance and status_chance are probabilities that may exceed
// 1.0: the integer part guarantees that many proc/crit tiers, the
// fractional remainder applies probabilistically to one more tier.
// They are preserved as-is through every stacking step.
type WeaponStats struct {
	Damage         float64  `json:"damage" yaml:"damage"`
	AttackSpeed    float64  `json:"attack_speed" yaml:"attack_speed"`
	Multishot      float64  `json:"multishot" yaml:"multishot"`
	CriticalChance float64  `json:"critical_chance" yaml:"critical_chance"`
	CriticalDamage float64  `json:"critical_damage" yaml:"critical_damage"`
	StatusChance   float64  `json:"status_chance" yaml:"status_chance"`
	StatusDuration float64  `json:"status_duration" yaml:"status_duration"`
	Elements       Elements `json:"elements" yaml:"elements"`
}

// DefaultWeaponStats returns WeaponStats with the documented defaults:
// all multipliers 1, chances 0, puncture as the base damage type.
func DefaultWeaponStats() WeaponStats {
	return WeaponStats{
		Damage:         1,
		AttackSpeed:    1,
		Multishot:      1,
		CriticalChance: 0,
		CriticalDamage: 1,
		StatusChance:   0,
		StatusDuration: 1,
		Elements:       Elements{Puncture: 1},
	}
}

// normalized returns a copy with zero-valued optional fields replaced by
// their defaults. Element contributions are left as given; a weapon
// without any contributes no elemental multiplier at all.
func (w WeaponStats) normalized() WeaponStats {
	if w.Damage == 0 {
		w.Damage = 1
	}
	if w.AttackSpeed == 0 {
		w.AttackSpeed = 1
	}
	if w.Multishot == 0 {
		w.Multishot = 1
	}
	if w.CriticalDamage == 0 {
		w.CriticalDamage = 1
	}
	if w.StatusDuration == 0 {
		w.StatusDuration = 1
	}
	return w
}

// Normalized exposes normalized defaults to the engine and the HTTP
// layer without mutating the original value.
func (w WeaponStats) Normalized() WeaponStats { return w.normalized() }

// ModBonus is one named static modifier: additive percentage bonuses per
// stat dimension plus element contributions. Multiple bonuses targeting
// the same dimension sum before being applied multiplicatively against
// the base stat.
type ModBonus struct {
	Name           string   `json:"name" yaml:"name"`
	MaxLevel       int      `json:"max_level,omitempty" yaml:"max_level,omitempty"`
	Damage         float64  `json:"damage,omitempty" yaml:"damage,omitempty"`
	AttackSpeed    float64  `json:"attack_speed,omitempty" yaml:"attack_speed,omitempty"`
	Multishot      float64  `json:"multishot,omitempty" yaml:"multishot,omitempty"`
	CriticalChance float64  `json:"critical_chance,omitempty" yaml:"critical_chance,omitempty"`
	CriticalDamage float64  `json:"critical_damage,omitempty" yaml:"critical_damage,omitempty"`
	StatusChance   float64  `json:"status_chance,omitempty" yaml:"status_chance,omitempty"`
	StatusDuration float64  `json:"status_duration,omitempty" yaml:"status_duration,omitempty"`
	Elements       Elements `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// InGameBuff is the transient combat-context contribution set. Fixed
// struct of named numeric fields plus one explicit element mapping —
// extensibility is kept where it is needed (elements only).
type InGameBuff struct {
	// GalvanizedShot stacks (0–3); each stack adds a flat crit-damage
	// bonus, folded in after multiplicative crit-damage stacking.
	GalvanizedShot int `json:"galvanized_shot" yaml:"galvanized_shot"`
	// GalvanizedAptitude stacks; each stack adds an additive
	// status-chance bonus.
	GalvanizedAptitude int `json:"galvanized_aptitude" yaml:"galvanized_aptitude"`
	// FinalAdditiveCD is added after all multiplicative critical-damage
	// stacking (pet crit-multiplier bonuses and the like).
	FinalAdditiveCD float64 `json:"final_additive_cd" yaml:"final_additive_cd"`
	// AttackSpeed is a flat additive bonus folded in after the
	// base×(1+mods) attack-speed combination.
	AttackSpeed float64 `json:"attack_speed" yaml:"attack_speed"`
	// NumDebuffs counts active enemy debuffs; each applies a fixed
	// percentage damage amplification, compounding multiplicatively.
	NumDebuffs int `json:"num_debuffs" yaml:"num_debuffs"`
	// FinalMultiplier is applied last, after every other multiplier.
	// Zero means unset and is treated as 1.0.
	FinalMultiplier float64  `json:"final_multiplier" yaml:"final_multiplier"`
	Elements        Elements `json:"elements" yaml:"elements"`
}
