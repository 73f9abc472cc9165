package main

// ValueProfile is a chef's contribution to a site's output multiplier, in percent.
type ValueProfile struct {
	Flat          float64                `json:"flat"`
	CritExpected  float64                `json:"critExpected"`
	CategoryBonus [numCategories]float64 `json:"categoryBonus"`
}

// EffectiveGain is the category-independent part of the profile.
func (v ValueProfile) EffectiveGain() float64 {
	return v.Flat + v.CritExpected
}

// CategoryValue is the chef's total gain on a site of category cat.
func (v ValueProfile) CategoryValue(cat Category) float64 {
	return v.EffectiveGain() + v.CategoryBonus[cat]
}

// Valuate computes a chef's value profile from its innate skill, equip,
// socketed ambers and (when unlocked) ultimate. Missing pieces contribute 0.
func Valuate(chef *Chef) ValueProfile {
	var v ValueProfile
	if chef == nil {
		return v
	}

	for _, eff := range chef.SpecialSkillEffect {
		if eff.Condition != CondScopeSelf {
			continue
		}
		if eff.Type == EffMaterialGain {
			v.Flat += eff.Value
		}
		if cat, ok := categoryOfGain(eff.Type); ok {
			v.CategoryBonus[cat] += eff.Value
		}
	}

	if eq := chef.Equip; eq != nil {
		for _, eff := range eq.Effect {
			if eff.Type == EffMaterialGain {
				if eq.Crit != nil && eff.Value == eq.Crit.Bonus {
					v.CritExpected += eq.Crit.Chance * eff.Value
				} else {
					v.Flat += eff.Value
				}
			}
			if cat, ok := categoryOfGain(eff.Type); ok {
				v.CategoryBonus[cat] += eff.Value
			}
		}
	}

	for _, eff := range diskEffects(&chef.Disk) {
		if eff.Type == EffMaterialGain {
			v.Flat += eff.Value
		}
		if cat, ok := categoryOfGain(eff.Type); ok {
			v.CategoryBonus[cat] += eff.Value
		}
	}

	// Ultimates are single-proc: only the first positive gain counts.
	if chef.UltimateUnlocked && chef.Ultimate != nil {
		for _, eff := range chef.Ultimate.Effect {
			if eff.Type == EffMaterialGain && eff.Value > 0 {
				v.CritExpected += chef.Ultimate.CritChance * eff.Value
				break
			}
		}
	}

	return v
}

// diskEffects returns the effects of every populated socket at the disk's
// current level.
func diskEffects(d *Disk) []SkillEffect {
	if d.Level <= 0 {
		return nil
	}
	var out []SkillEffect
	for _, amber := range d.Ambers {
		if amber.Data == nil || d.Level > len(amber.Data.AllEffect) {
			continue
		}
		out = append(out, amber.Data.AllEffect[d.Level-1]...)
	}
	return out
}
