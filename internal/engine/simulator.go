package engine

import (
	"math"
	"math/rand/v2"

	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// Simulate runs numSims independent engagement trials of the given
// duration and aggregates min/avg/max DPS statistics across them.
//
// Each trial samples per-shot, per-projectile crit tiers and status
// procs from the proc profile using the injected random source. The
// random source is request-scoped, never shared globally, so repeated
// requests draw fresh randomness while tests can pass a fixed-seed
// source. Trials run sequentially on one goroutine; aggregate
// statistics do not depend on trial order.
func (e *Engine) Simulate(rs model.ResolvedStats, elem ElementalOutput, procs ProcProfile, duration float64, numSims int, rng *rand.Rand) model.SimulationResult {
	result := model.SimulationResult{
		NumSimulations: numSims,
		Duration:       duration,
	}
	if numSims <= 0 || duration <= 0 {
		return result
	}

	direct := make([]float64, numSims)
	dot := make([]float64, numSims)
	total := make([]float64, numSims)
	for i := 0; i < numSims; i++ {
		d, o := e.runTrial(rs, elem, procs, duration, rng)
		direct[i] = d / duration
		dot[i] = o / duration
		total[i] = direct[i] + dot[i]
	}

	result.DirectDPS = summarize(direct)
	result.DotDPS = summarize(dot)
	result.TotalDPS = summarize(total)
	return result
}

// runTrial simulates one engagement window and returns accumulated
// direct and DOT damage. Fractional shot and projectile counts round
// probabilistically so the expected rate matches the resolved stats
// exactly.
func (e *Engine) runTrial(rs model.ResolvedStats, elem ElementalOutput, procs ProcProfile, duration float64, rng *rand.Rand) (direct, dot float64) {
	if rs.AttackSpeed <= 0 {
		return 0, 0
	}

	// Final-stage amps apply identically to every projectile; elemental
	// scaling is applied to the direct total at the end of the trial.
	pelletBase := rs.BaseDamage * rs.DamageMult * rs.DebuffAmp * rs.FinalMult

	shots := probabilisticCount(duration*rs.AttackSpeed, rng)
	for shot := 0; shot < shots; shot++ {
		shotTime := float64(shot) / rs.AttackSpeed
		pellets := probabilisticCount(rs.Multishot, rng)
		for p := 0; p < pellets; p++ {
			tier := procs.GuaranteedCritTier
			if rng.Float64() < procs.ExtraCritChance {
				tier++
			}
			hit := pelletBase * procs.TierMultiplier(tier)
			direct += hit

			nprocs := procs.GuaranteedProcs
			if rng.Float64() < procs.ExtraProcChance {
				nprocs++
			}
			for i := 0; i < nprocs; i++ {
				elemType, contrib, ok := sampleElement(elem, rng)
				if !ok {
					continue
				}
				cfg, capable := e.cfg.DotTable[elemType]
				if !capable {
					continue
				}
				// Only the portion of the DOT window inside the trial
				// counts; truncate at the boundary.
				window := math.Min(cfg.BaseDuration*rs.StatusDuration, duration-shotTime)
				if window <= 0 {
					continue
				}
				dot += cfg.TickFraction * hit * (1 + contrib) * cfg.TickRate * window
			}
		}
	}

	return direct * elem.Multiplier, dot
}

// sampleElement draws one element type weighted by its damage
// contribution. Iterates the fixed element order so the cumulative walk
// is deterministic for a given random draw.
func sampleElement(elem ElementalOutput, rng *rand.Rand) (model.Element, float64, bool) {
	if elem.Total <= 0 {
		return "", 0, false
	}
	roll := rng.Float64() * elem.Total
	var cumulative float64
	for _, e := range model.AllElements {
		v := elem.Contributions[e]
		if v <= 0 {
			continue
		}
		cumulative += v
		if roll <= cumulative {
			return e, v, true
		}
	}
	// Floating-point slack: attribute to the last contributing type.
	for i := len(model.AllElements) - 1; i >= 0; i-- {
		if v := elem.Contributions[model.AllElements[i]]; v > 0 {
			return model.AllElements[i], v, true
		}
	}
	return "", 0, false
}

// probabilisticCount rounds a fractional rate to an integer count:
// the integer part is guaranteed, the remainder rolls once.
func probabilisticCount(v float64, rng *rand.Rand) int {
	n := math.Floor(v)
	if rng.Float64() < v-n {
		n++
	}
	return int(n)
}

func summarize(vals []float64) model.MetricStats {
	stats := model.MetricStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range vals {
		sum += v
		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
	}
	stats.Avg = sum / float64(len(vals))
	return stats
}
