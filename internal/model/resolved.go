package model

// ResolvedStats is the single immutable snapshot produced by the stat
// aggregator; every downstream component consumes it read-only.
//
// CriticalChance and StatusChance keep their guaranteed-tier semantics
// (values above 1.0 are valid and must not be clamped).
type ResolvedStats struct {
	BaseDamage     float64
	DamageMult     float64
	AttackSpeed    float64
	Multishot      float64
	CriticalChance float64
	CriticalDamage float64
	StatusChance   float64
	StatusDuration float64

	// DebuffAmp is the (1+perDebuffBonus)^numDebuffs amplification,
	// applied only at the final total-damage stage.
	DebuffAmp float64
	// FinalMult is applied once, as the very last scalar multiplier.
	FinalMult float64

	// Elements merges weapon, mod and buff contributions.
	Elements Elements
}
