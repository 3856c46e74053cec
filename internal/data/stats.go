package data

import (
	"fmt"

	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// statKeys maps external stat identifiers (database rows, riven stat
// names, legacy catalog exports) onto ModBonus dimensions. fire_rate is
// the historical alias for attack_speed; melee_damage is plain base
// damage.
var statKeys = map[string]func(*model.ModBonus, float64){
	"damage":          func(m *model.ModBonus, v float64) { m.Damage += v },
	"melee_damage":    func(m *model.ModBonus, v float64) { m.Damage += v },
	"attack_speed":    func(m *model.ModBonus, v float64) { m.AttackSpeed += v },
	"fire_rate":       func(m *model.ModBonus, v float64) { m.AttackSpeed += v },
	"multishot":       func(m *model.ModBonus, v float64) { m.Multishot += v },
	"critical_chance": func(m *model.ModBonus, v float64) { m.CriticalChance += v },
	"critical_damage": func(m *model.ModBonus, v float64) { m.CriticalDamage += v },
	"status_chance":   func(m *model.ModBonus, v float64) { m.StatusChance += v },
	"status_duration": func(m *model.ModBonus, v float64) { m.StatusDuration += v },
}

// elementKeys maps "<element>_damage" identifiers onto element
// contributions.
var elementKeys = func() map[string]model.Element {
	m := make(map[string]model.Element, len(model.AllElements))
	for _, e := range model.AllElements {
		m[string(e)+"_damage"] = e
	}
	return m
}()

// BonusFromStats builds a ModBonus from a flat stat-key → value map.
// Bare element names are accepted alongside the *_damage aliases.
// Unknown keys fail: stat rows reaching this point have already passed
// identifier validation, so a miss is a data error worth surfacing.
func BonusFromStats(name string, stats map[string]float64) (model.ModBonus, error) {
	bonus := model.ModBonus{Name: name, Elements: model.Elements{}}
	for key, value := range stats {
		if apply, ok := statKeys[key]; ok {
			apply(&bonus, value)
			continue
		}
		if e, ok := elementKeys[key]; ok {
			bonus.Elements[e] += value
			continue
		}
		if e := model.Element(key); model.ValidElement(e) {
			bonus.Elements[e] += value
			continue
		}
		return model.ModBonus{}, fmt.Errorf("mod %q: unknown stat key %q", name, key)
	}
	if len(bonus.Elements) == 0 {
		bonus.Elements = nil
	}
	return bonus, nil
}
