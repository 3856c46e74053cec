package model

// Element is one damage type in the fixed enumerated set.
// Combined types (blast, corrosive, ...) are accepted as direct numeric
// inputs already resolved by the caller; the engine never derives them
// from elemental pairs.
type Element string

const (
	// Physical damage types
	Impact   Element = "impact"
	Puncture Element = "puncture"
	Slash    Element = "slash"

	// Basic elemental damage types
	Cold        Element = "cold"
	Electricity Element = "electricity"
	Heat        Element = "heat"
	Toxin       Element = "toxin"

	// Combined elemental damage types
	Blast     Element = "blast"
	Corrosive Element = "corrosive"
	Gas       Element = "gas"
	Magnetic  Element = "magnetic"
	Radiation Element = "radiation"
	Viral     Element = "viral"

	// Special damage types
	Void    Element = "void"
	Tau     Element = "tau"
	TrueDmg Element = "true_dmg"
)

// AllElements lists every element type in a stable order.
// Used for validation and for deterministic iteration in the simulator.
var AllElements = []Element{
	Impact, Puncture, Slash,
	Cold, Electricity, Heat, Toxin,
	Blast, Corrosive, Gas, Magnetic, Radiation, Viral,
	Void, Tau, TrueDmg,
}

var elementSet = func() map[Element]struct{} {
	m := make(map[Element]struct{}, len(AllElements))
	for _, e := range AllElements {
		m[e] = struct{}{}
	}
	return m
}()

// ValidElement reports whether e belongs to the fixed element set.
func ValidElement(e Element) bool {
	_, ok := elementSet[e]
	return ok
}

// IsPhysical reports whether e is a physical damage type.
func (e Element) IsPhysical() bool {
	return e == Impact || e == Puncture || e == Slash
}

// Elements maps element types to raw damage contributions
// (fractions of base damage).
type Elements map[Element]float64

// Clone returns an independent copy.
func (el Elements) Clone() Elements {
	out := make(Elements, len(el))
	for k, v := range el {
		out[k] = v
	}
	return out
}

// MergeElements sums contributions across sources. Same-type values
// add directly; zero entries are dropped.
func MergeElements(sources ...Elements) Elements {
	out := make(Elements)
	for _, src := range sources {
		for k, v := range src {
			if v == 0 {
				continue
			}
			out[k] += v
		}
	}
	return out
}

// Total returns the sum of all contributions. Accumulates in the fixed
// element order, not map order, so repeated sums over the same
// contributions are bit-identical.
func (el Elements) Total() float64 {
	var total float64
	for _, e := range AllElements {
		total += el[e]
	}
	return total
}
