package engine

import "github.com/sigmazhou/warframe-damage-calculator/internal/model"

// ElementalOutput is the normalized elemental damage profile: merged
// per-type contributions, their sum, the aggregate multiplier and the
// proportional per-type breakdown used for reporting.
type ElementalOutput struct {
	// Contributions are the summed raw per-type contributions
	// (faction-adjusted once ApplyFaction has run).
	Contributions model.Elements `json:"contributions"`
	// Total is the sum of all contributions.
	Total float64 `json:"total"`
	// Multiplier is 1 + Total. Exactly 1 when nothing contributes.
	Multiplier float64 `json:"multiplier"`
	// Breakdown is each type's proportional share of Total. When Total
	// is zero it reports the default physical type alone, for display
	// only; nothing reaches the multiplier.
	Breakdown map[model.Element]float64 `json:"breakdown"`
}

// AggregateElements totals elemental/physical contributions from the
// weapon and from buffs into per-type weights and an aggregate
// multiplier. Same-type contributions sum directly; combined types are
// accepted as already-resolved inputs.
func AggregateElements(weapon, extra model.Elements) ElementalOutput {
	return elementalOutput(model.MergeElements(weapon, extra))
}

func elementalOutput(contrib model.Elements) ElementalOutput {
	out := ElementalOutput{
		Contributions: contrib,
		Total:         contrib.Total(),
	}
	out.Multiplier = 1 + out.Total
	if out.Total == 0 {
		// Damage unaffected; chart the default physical type alone.
		out.Multiplier = 1
		out.Breakdown = map[model.Element]float64{model.Puncture: 1}
		return out
	}
	out.Breakdown = make(map[model.Element]float64, len(contrib))
	for _, e := range model.AllElements {
		if v, ok := contrib[e]; ok {
			out.Breakdown[e] = v / out.Total
		}
	}
	return out
}
