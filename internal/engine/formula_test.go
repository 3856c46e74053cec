package engine

import (
	"testing"

	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

func TestCompute_ZeroCritZeroStatusIdentity(t *testing.T) {
	e := New(DefaultConfig())

	rs := model.ResolvedStats{
		BaseDamage:     100,
		DamageMult:     2,
		AttackSpeed:    1.5,
		Multishot:      2,
		CriticalDamage: 2,
		DebuffAmp:      1,
		FinalMult:      1,
		Elements:       model.Elements{model.Impact: 1},
	}
	elem := AggregateElements(rs.Elements, nil)
	procs := e.ResolveProcs(rs)

	d := e.Compute(rs, elem, procs)

	// no crit, no status: single hit is pure base × mult × elemental
	approxEqual(t, "SingleHit", d.SingleHit, 100*2*2, 1e-12)
	approxEqual(t, "DirectDPS", d.DirectDPS, 400*2*1.5, 1e-12)
	if d.DotDPS != 0 {
		t.Errorf("DotDPS = %v, want 0 with zero status chance", d.DotDPS)
	}
	approxEqual(t, "TotalDPS", d.TotalDPS, d.DirectDPS, 1e-15)
}

func TestCompute_TotalIsDirectPlusDot(t *testing.T) {
	e := New(DefaultConfig())

	rs := model.ResolvedStats{
		BaseDamage:     35,
		DamageMult:     3.2,
		AttackSpeed:    2.2,
		Multishot:      2.8,
		CriticalChance: 0.89,
		CriticalDamage: 5.4,
		StatusChance:   0.43,
		StatusDuration: 1.3,
		DebuffAmp:      1.21,
		FinalMult:      1.5,
		Elements:       model.Elements{model.Heat: 1.5, model.Toxin: 0.6, model.Impact: 1},
	}
	elem := AggregateElements(rs.Elements, nil)
	procs := e.ResolveProcs(rs)

	d := e.Compute(rs, elem, procs)
	if d.TotalDPS != d.DirectDPS+d.DotDPS {
		t.Errorf("TotalDPS = %v, want DirectDPS+DotDPS = %v", d.TotalDPS, d.DirectDPS+d.DotDPS)
	}
	if d.DotDPS <= 0 {
		t.Errorf("DotDPS = %v, want positive with heat and toxin present", d.DotDPS)
	}
}

func TestCompute_DotSteadyState(t *testing.T) {
	e := New(DefaultConfig())

	rs := model.ResolvedStats{
		BaseDamage:     100,
		DamageMult:     1,
		AttackSpeed:    1,
		Multishot:      1,
		CriticalChance: 0,
		CriticalDamage: 2,
		StatusChance:   0.5,
		StatusDuration: 1,
		DebuffAmp:      1,
		FinalMult:      1,
		Elements:       model.Elements{model.Heat: 1},
	}
	elem := AggregateElements(rs.Elements, nil)
	procs := e.ResolveProcs(rs)

	d := e.Compute(rs, elem, procs)

	// one proc type: 0.5 procs/s, each worth 0.5 × 100 × (1+1) × 6 ticks
	approxEqual(t, "DotDPS", d.DotDPS, 0.5*(0.5*100*2*6), 1e-12)
	approxEqual(t, "DirectDPS", d.DirectDPS, 200, 1e-12)
	approxEqual(t, "TotalDPS", d.TotalDPS, 500, 1e-12)
}

func TestCompute_NonDotElementsContributeNoDot(t *testing.T) {
	e := New(DefaultConfig())

	rs := model.ResolvedStats{
		BaseDamage:     100,
		DamageMult:     1,
		AttackSpeed:    1,
		Multishot:      1,
		CriticalDamage: 2,
		StatusChance:   1,
		StatusDuration: 1,
		DebuffAmp:      1,
		FinalMult:      1,
		Elements:       model.Elements{model.Radiation: 2, model.Magnetic: 1},
	}
	elem := AggregateElements(rs.Elements, nil)
	procs := e.ResolveProcs(rs)

	d := e.Compute(rs, elem, procs)
	if d.DotDPS != 0 {
		t.Errorf("DotDPS = %v, want 0 for radiation and magnetic only", d.DotDPS)
	}
}

func TestCompute_StatusDurationScalesDot(t *testing.T) {
	e := New(DefaultConfig())

	base := model.ResolvedStats{
		BaseDamage:     100,
		DamageMult:     1,
		AttackSpeed:    1,
		Multishot:      1,
		CriticalDamage: 2,
		StatusChance:   0.5,
		StatusDuration: 1,
		DebuffAmp:      1,
		FinalMult:      1,
		Elements:       model.Elements{model.Toxin: 1},
	}
	elem := AggregateElements(base.Elements, nil)

	d1 := e.Compute(base, elem, e.ResolveProcs(base))

	scaled := base
	scaled.StatusDuration = 2
	d2 := e.Compute(scaled, elem, e.ResolveProcs(scaled))

	approxEqual(t, "scaled DotDPS", d2.DotDPS, 2*d1.DotDPS, 1e-12)
	approxEqual(t, "DirectDPS unchanged", d2.DirectDPS, d1.DirectDPS, 1e-15)
}

func TestCompute_SlashTicksAtLowerFraction(t *testing.T) {
	e := New(DefaultConfig())

	mk := func(elem model.Element) model.Damage {
		rs := model.ResolvedStats{
			BaseDamage:     100,
			DamageMult:     1,
			AttackSpeed:    1,
			Multishot:      1,
			CriticalDamage: 2,
			StatusChance:   0.5,
			StatusDuration: 1,
			DebuffAmp:      1,
			FinalMult:      1,
			Elements:       model.Elements{elem: 1},
		}
		agg := AggregateElements(rs.Elements, nil)
		return e.Compute(rs, agg, e.ResolveProcs(rs))
	}

	heat := mk(model.Heat)
	slash := mk(model.Slash)
	approxEqual(t, "slash/heat ratio", slash.DotDPS/heat.DotDPS, 0.35/0.5, 1e-12)
}
