package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// ErrMalformedInput marks numeric input the engine refuses to compute
// on: non-finite values, or negatives where the stat dimension does not
// allow them. Rejected before any stage runs; no partial computation.
var ErrMalformedInput = errors.New("malformed input")

// Resolve merges base weapon stats, static modifier contributions and
// transient buff contributions into one resolved stat set.
//
// Pure function: multiplicative dimensions are base × (1 + Σ additive
// percentage contributions); flat-additive dimensions (final_additive_cd,
// the buff attack-speed bonus, galvanized stacks) are folded in after
// their multiplicative stack. num_debuffs and final_multiplier are
// reserved for the final total-damage stage and carried through
// untouched otherwise.
func (e *Engine) Resolve(weapon model.WeaponStats, mods []model.ModBonus, buffs model.InGameBuff) (model.ResolvedStats, error) {
	weapon = weapon.Normalized()

	if err := validateWeapon(weapon); err != nil {
		return model.ResolvedStats{}, err
	}
	for _, m := range mods {
		if err := validateFinite(m.Name,
			m.Damage, m.AttackSpeed, m.Multishot,
			m.CriticalChance, m.CriticalDamage,
			m.StatusChance, m.StatusDuration); err != nil {
			return model.ResolvedStats{}, err
		}
		if err := validateElements(m.Elements); err != nil {
			return model.ResolvedStats{}, err
		}
	}
	if err := validateBuffs(buffs); err != nil {
		return model.ResolvedStats{}, err
	}

	var sum struct {
		damage, attackSpeed, multishot float64
		critChance, critDamage         float64
		statusChance, statusDuration   float64
	}
	elementSources := make([]model.Elements, 0, len(mods)+2)
	elementSources = append(elementSources, weapon.Elements)
	for _, m := range mods {
		sum.damage += m.Damage
		sum.attackSpeed += m.AttackSpeed
		sum.multishot += m.Multishot
		sum.critChance += m.CriticalChance
		sum.critDamage += m.CriticalDamage
		sum.statusChance += m.StatusChance
		sum.statusDuration += m.StatusDuration
		if len(m.Elements) > 0 {
			elementSources = append(elementSources, m.Elements)
		}
	}
	elementSources = append(elementSources, buffs.Elements)

	sum.statusChance += float64(buffs.GalvanizedAptitude) * e.cfg.GalvanizedAptitudeStatusBonus

	critDamage := weapon.CriticalDamage * (1 + sum.critDamage)
	critDamage += float64(buffs.GalvanizedShot) * e.cfg.GalvanizedShotCritBonus
	critDamage += buffs.FinalAdditiveCD

	finalMult := buffs.FinalMultiplier
	if finalMult == 0 {
		finalMult = 1
	}

	rs := model.ResolvedStats{
		BaseDamage:     weapon.Damage,
		DamageMult:     1 + sum.damage,
		AttackSpeed:    weapon.AttackSpeed*(1+sum.attackSpeed) + buffs.AttackSpeed,
		Multishot:      weapon.Multishot * (1 + sum.multishot),
		CriticalChance: weapon.CriticalChance * (1 + sum.critChance),
		CriticalDamage: critDamage,
		StatusChance:   weapon.StatusChance * (1 + sum.statusChance),
		StatusDuration: weapon.StatusDuration * (1 + sum.statusDuration),
		DebuffAmp:      math.Pow(1+e.cfg.PerDebuffBonus, float64(buffs.NumDebuffs)),
		FinalMult:      finalMult,
		Elements:       model.MergeElements(elementSources...),
	}

	if rs.CriticalChance < 0 || rs.StatusChance < 0 {
		return model.ResolvedStats{}, fmt.Errorf("%w: negative resolved chance (crit %v, status %v)",
			ErrMalformedInput, rs.CriticalChance, rs.StatusChance)
	}
	return rs, nil
}

func validateWeapon(w model.WeaponStats) error {
	if err := validateFinite("weapon",
		w.Damage, w.AttackSpeed, w.Multishot,
		w.CriticalChance, w.CriticalDamage,
		w.StatusChance, w.StatusDuration); err != nil {
		return err
	}
	if w.CriticalChance < 0 || w.StatusChance < 0 {
		return fmt.Errorf("%w: weapon chance fields must be non-negative", ErrMalformedInput)
	}
	if w.AttackSpeed < 0 || w.Multishot < 0 || w.Damage < 0 {
		return fmt.Errorf("%w: weapon rate fields must be non-negative", ErrMalformedInput)
	}
	return validateElements(w.Elements)
}

func validateBuffs(b model.InGameBuff) error {
	if err := validateFinite("in_game_buffs",
		b.FinalAdditiveCD, b.AttackSpeed, b.FinalMultiplier); err != nil {
		return err
	}
	if b.GalvanizedShot < 0 || b.GalvanizedShot > 3 {
		return fmt.Errorf("%w: galvanized_shot stacks must be in [0,3], got %d",
			ErrMalformedInput, b.GalvanizedShot)
	}
	if b.GalvanizedAptitude < 0 || b.NumDebuffs < 0 {
		return fmt.Errorf("%w: buff stack counts must be non-negative", ErrMalformedInput)
	}
	return validateElements(b.Elements)
}

func validateElements(el model.Elements) error {
	for e, v := range el {
		if !model.ValidElement(e) {
			return fmt.Errorf("%w: unknown element type %q", ErrMalformedInput, e)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: element %q is not finite", ErrMalformedInput, e)
		}
	}
	return nil
}

func validateFinite(where string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %s", ErrMalformedInput, where)
		}
	}
	return nil
}
