package engine

import (
	"math"

	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// ProcProfile is the effective critical-hit distribution and
// status-proc rates derived from resolved stats. It backs both the
// deterministic expectation and the per-trial sampling in the
// simulator.
type ProcProfile struct {
	// GuaranteedCritTier is floor(critical_chance): every hit lands at
	// least this crit tier.
	GuaranteedCritTier int
	// ExtraCritChance is frac(critical_chance): the probability of one
	// additional tier.
	ExtraCritChance float64
	// CriticalDamage is the resolved per-tier crit multiplier.
	CriticalDamage float64
	// ExpectedCritMultiplier is 1 + cc×(cd−1), valid for any cc ≥ 0.
	ExpectedCritMultiplier float64

	// GuaranteedProcs is floor(status_chance) per projectile;
	// ExtraProcChance is the fractional remainder.
	GuaranteedProcs int
	ExtraProcChance float64
	// ExpectedProcsPerTrigger is multishot × status_chance: each
	// projectile rolls status independently.
	ExpectedProcsPerTrigger float64
}

// ResolveProcs derives crit and status distributions from resolved
// stats. Chances above 1.0 keep their guaranteed-tier-plus-fractional
// semantics; nothing is clamped.
func (e *Engine) ResolveProcs(rs model.ResolvedStats) ProcProfile {
	cc := rs.CriticalChance
	sc := rs.StatusChance

	critTier := math.Floor(cc)
	procTier := math.Floor(sc)

	return ProcProfile{
		GuaranteedCritTier:     int(critTier),
		ExtraCritChance:        cc - critTier,
		CriticalDamage:         rs.CriticalDamage,
		ExpectedCritMultiplier: 1 + cc*(rs.CriticalDamage-1),

		GuaranteedProcs:         int(procTier),
		ExtraProcChance:         sc - procTier,
		ExpectedProcsPerTrigger: rs.Multishot * sc,
	}
}

// TierMultiplier returns the damage multiplier of crit tier n:
// 1 + n×(cd−1). Tier 0 is a normal hit.
func (p ProcProfile) TierMultiplier(n int) float64 {
	return 1 + float64(n)*(p.CriticalDamage-1)
}
