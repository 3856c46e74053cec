package engine

import "github.com/sigmazhou/warframe-damage-calculator/internal/model"

// Compute combines resolved stats, the faction-adjusted elemental
// profile and the proc profile into deterministic single-hit and
// steady-state DPS figures.
//
//	single_hit = base × damage_mult × elemental_mult × crit_mult
//	direct_dps = single_hit × multishot × attack_speed × debuff_amp × final_mult
//	dot_dps    = Σ over DOT-capable types of the steady-state ticking damage
//	total_dps  = direct_dps + dot_dps
//
// Nothing is rounded here; rounding belongs to the serialization
// boundary.
func (e *Engine) Compute(rs model.ResolvedStats, elem ElementalOutput, procs ProcProfile) model.Damage {
	singleHit := rs.BaseDamage * rs.DamageMult * elem.Multiplier * procs.ExpectedCritMultiplier
	directDPS := singleHit * rs.Multishot * rs.AttackSpeed * rs.DebuffAmp * rs.FinalMult

	d := model.Damage{
		SingleHit: singleHit,
		DirectDPS: directDPS,
		DotDPS:    e.dotDPS(rs, elem, procs),
	}
	d.TotalDPS = d.DirectDPS + d.DotDPS
	return d
}

// dotDPS is the steady-state damage-over-time rate. For each
// DOT-capable element type: procs of that type per second (status procs
// per trigger × trigger rate × the type's share of elemental damage)
// times the total ticking damage of one proc (tick fraction of the
// non-elemental hit damage, boosted by the type's own contribution,
// over the status-duration-scaled window).
func (e *Engine) dotDPS(rs model.ResolvedStats, elem ElementalOutput, procs ProcProfile) float64 {
	if elem.Total <= 0 || rs.StatusChance <= 0 {
		return 0
	}

	// Non-elemental hit damage feeding each tick, with the final-stage
	// amps applied the same way the direct path applies them.
	hitBase := rs.BaseDamage * rs.DamageMult * procs.ExpectedCritMultiplier * rs.DebuffAmp * rs.FinalMult
	procsPerSecond := procs.ExpectedProcsPerTrigger * rs.AttackSpeed

	// Fixed element order keeps the floating-point sum bit-stable
	// across calls; map order would not.
	var total float64
	for _, elemType := range model.AllElements {
		dot, capable := e.cfg.DotTable[elemType]
		if !capable {
			continue
		}
		contrib := elem.Contributions[elemType]
		if contrib <= 0 {
			continue
		}
		share := contrib / elem.Total
		perProc := dot.TickFraction * hitBase * (1 + contrib) *
			dot.TickRate * dot.BaseDuration * rs.StatusDuration
		total += procsPerSecond * share * perProc
	}
	return total
}
