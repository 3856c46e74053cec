// Package riven resolves procedurally-rolled mod configurations into
// final numeric stat values. The roll-value math is data-entry tooling
// for the UI; the engine only ever sees the resolved numbers, folded
// into ordinary static mod bonuses.
package riven

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a roll configuration outside the allowed
// 2–3 positive / 0–1 negative stat counts. Rejected here, before the
// engine ever receives a riven contribution.
var ErrInvalidConfig = errors.New("invalid riven configuration")

// Stat is one named stat on a riven roll. Negative stats carry
// Negative=true; BaseValue is the stat's unrolled magnitude.
type Stat struct {
	Name      string  `json:"name" yaml:"name"`
	BaseValue float64 `json:"base_value" yaml:"base_value"`
	Negative  bool    `json:"negative,omitempty" yaml:"negative,omitempty"`
}

// RollConfig is a rolled riven: a weapon-type key, the weapon's
// disposition scalar and the stat set.
type RollConfig struct {
	WeaponType  string  `json:"weapon_type" yaml:"weapon_type"`
	Disposition float64 `json:"disposition" yaml:"disposition"`
	Stats       []Stat  `json:"stats" yaml:"stats"`
}

// Roll is the resolved value range of one stat: the average roll plus
// the ±10% min/max variants.
type Roll struct {
	Name  string  `json:"name"`
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Value float64 `json:"value"` // avg; the figure folded into mod bonuses
}

// multiplier table keyed by (positiveCount, hasNegative).
type rollKey struct {
	positives   int
	hasNegative bool
}

type rollMult struct {
	positive float64
	negative float64
}

var multiplierTable = map[rollKey]rollMult{
	{2, false}: {positive: 0.99},
	{2, true}:  {positive: 1.2375, negative: -0.495},
	{3, false}: {positive: 0.75},
	{3, true}:  {positive: 0.9375, negative: -0.75},
}

// Resolve turns a roll configuration into final numeric values per
// stat: avg = base × multiplier × disposition, min = avg × 0.9,
// max = avg × 1.1. Configurations outside the 2–3 positive / 0–1
// negative constraint fail with ErrInvalidConfig.
func Resolve(cfg RollConfig) ([]Roll, error) {
	if cfg.Disposition <= 0 {
		return nil, fmt.Errorf("%w: disposition must be positive, got %v", ErrInvalidConfig, cfg.Disposition)
	}

	var positives, negatives int
	for _, s := range cfg.Stats {
		if s.Negative {
			negatives++
		} else {
			positives++
		}
	}
	if positives < 2 || positives > 3 {
		return nil, fmt.Errorf("%w: need 2-3 positive stats, got %d", ErrInvalidConfig, positives)
	}
	if negatives > 1 {
		return nil, fmt.Errorf("%w: at most 1 negative stat, got %d", ErrInvalidConfig, negatives)
	}

	mult := multiplierTable[rollKey{positives, negatives == 1}]
	rolls := make([]Roll, 0, len(cfg.Stats))
	for _, s := range cfg.Stats {
		m := mult.positive
		if s.Negative {
			m = mult.negative
		}
		avg := s.BaseValue * m * cfg.Disposition
		rolls = append(rolls, Roll{
			Name:  s.Name,
			Avg:   avg,
			Min:   avg * 0.9,
			Max:   avg * 1.1,
			Value: avg,
		})
	}
	return rolls, nil
}

// FoldStats sums resolved roll values into the flat stat-key map shared
// with catalog imports. Roll values are percentages; catalog bonuses
// are fractions, hence the /100.
func FoldStats(rolls []Roll) map[string]float64 {
	stats := make(map[string]float64, len(rolls))
	for _, r := range rolls {
		stats[r.Name] += r.Value / 100
	}
	return stats
}
