package model

import (
	"fmt"
	"strings"
)

// Faction is the target categorization that modifies specific elemental
// damage multipliers. The faction catalog is externally owned; adding a
// faction requires a matching engine multiplier-table entry.
type Faction string

const (
	FactionNone     Faction = "none"
	FactionGrineer  Faction = "grineer"
	FactionCorpus   Faction = "corpus"
	FactionTridolon Faction = "tridolon"
)

// Factions lists the known factions in a stable order.
var Factions = []Faction{FactionNone, FactionGrineer, FactionCorpus, FactionTridolon}

// ParseFaction parses a faction string case-insensitively. The empty
// string parses as FactionNone.
func ParseFaction(s string) (Faction, error) {
	if s == "" {
		return FactionNone, nil
	}
	f := Faction(strings.ToLower(s))
	for _, known := range Factions {
		if f == known {
			return f, nil
		}
	}
	return FactionNone, fmt.Errorf("unknown faction %q", s)
}

// EnemyProfile identifies the target of a calculation. Immutable per
// calculation.
type EnemyProfile struct {
	Faction Faction `json:"faction" yaml:"faction"`
}
