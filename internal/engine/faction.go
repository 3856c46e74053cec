package engine

import "github.com/sigmazhou/warframe-damage-calculator/internal/model"

// factionTable maps each faction to its per-element multiplier
// overrides. Unlisted element types multiply by 1; FactionNone is the
// identity table. Adding a faction to the external catalog requires
// adding an entry here.
var factionTable = map[model.Faction]map[model.Element]float64{
	model.FactionNone: {},
	model.FactionGrineer: {
		model.Impact:    1.5,
		model.Corrosive: 1.5,
	},
	model.FactionCorpus: {
		model.Puncture: 1.5,
		model.Magnetic: 1.5,
	},
	model.FactionTridolon: {
		model.Radiation: 1.5,
		model.Cold:      1.5,
	},
}

// FactionMultipliers returns the override table for a faction. Unknown
// factions behave as FactionNone.
func FactionMultipliers(f model.Faction) map[model.Element]float64 {
	if t, ok := factionTable[f]; ok {
		return t
	}
	return factionTable[model.FactionNone]
}

// ApplyFaction applies faction-specific multiplicative adjustments to
// the per-type contributions and recomputes the total elemental
// multiplier and breakdown from the adjusted values. Applied once,
// after element aggregation, before the formula stage.
func ApplyFaction(elem ElementalOutput, faction model.Faction) ElementalOutput {
	overrides := FactionMultipliers(faction)
	if len(overrides) == 0 {
		return elem
	}
	adjusted := make(model.Elements, len(elem.Contributions))
	for e, v := range elem.Contributions {
		if mult, ok := overrides[e]; ok {
			v *= mult
		}
		adjusted[e] = v
	}
	return elementalOutput(adjusted)
}
