package main

import (
	"fmt"
	"math"
)

// unlimitedSkill is a skill total no site can gate on.
const unlimitedSkill = math.MaxInt32

// BlockedMaterial is a site resource the crew lacks the skill to gather.
type BlockedMaterial struct {
	Name  string `json:"name"`
	Skill int    `json:"skill"`
}

func (b BlockedMaterial) String() string {
	return fmt.Sprintf("%s(%d)", b.Name, b.Skill)
}

// SiteSnapshot holds per-pass constants of a site at its configured tier.
type SiteSnapshot struct {
	BaseRateAll float64
	MaxSkill    int
	Hours       float64
}

// Hours is the configured duration tier in hours, 0 if the tier is missing.
func (s *Site) Hours() float64 {
	if s.TimeIdx < 0 || s.TimeIdx >= len(s.Time) {
		return 0
	}
	return float64(s.Time[s.TimeIdx]) / 3600
}

// RateAtSkill returns the mean base output per hour reachable with the given
// total skill, plus the materials that skill cannot unlock.
func (s *Site) RateAtSkill(totalSkill int) (float64, []BlockedMaterial) {
	var total float64
	var blocked []BlockedMaterial
	for _, mat := range s.Materials {
		if mat.Skill > totalSkill {
			blocked = append(blocked, BlockedMaterial{Name: mat.Name, Skill: mat.Skill})
			continue
		}
		if s.TimeIdx >= 0 && s.TimeIdx < len(mat.Quantity) {
			q := mat.Quantity[s.TimeIdx]
			total += float64(q[0]+q[1]) / 2
		}
	}
	hours := s.Hours()
	if hours <= 0 {
		return 0, blocked
	}
	return total / hours, blocked
}

// MaxSkill is the highest skill requirement among the site's materials.
func (s *Site) MaxSkill() int {
	best := 0
	for _, mat := range s.Materials {
		if mat.Skill > best {
			best = mat.Skill
		}
	}
	return best
}

// Snapshot computes the site's per-pass constants.
func (s *Site) Snapshot() SiteSnapshot {
	rate, _ := s.RateAtSkill(unlimitedSkill)
	return SiteSnapshot{BaseRateAll: rate, MaxSkill: s.MaxSkill(), Hours: s.Hours()}
}

// enhancedRate applies a crew's total percent gain to a base rate.
func enhancedRate(base, totalGain float64) float64 {
	return base * (1 + totalGain/100)
}
