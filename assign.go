package main

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Member is a chef together with its value profile for the current pass.
type Member struct {
	Chef  *Chef
	Value ValueProfile
}

func (m Member) MarshalJSON() ([]byte, error) {
	out := struct {
		ChefID        int                `json:"chefId"`
		Name          string             `json:"name"`
		Points        [numCategories]int `json:"points"`
		EffectiveGain float64            `json:"effectiveGain"`
		Value         ValueProfile       `json:"value"`
	}{Value: m.Value, EffectiveGain: m.Value.EffectiveGain()}
	if m.Chef != nil {
		out.ChefID, out.Name, out.Points = m.Chef.ChefID, m.Chef.Name, m.Chef.Points
	}
	return json.Marshal(out)
}

func (m Member) points(cat Category) int { return m.Chef.Points[cat] }

func (m Member) gain(cat Category) float64 { return m.Value.CategoryValue(cat) }

// Assignment is the crew chosen for one site and the output it achieves.
type Assignment struct {
	Site        *Site             `json:"-"`
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	CrewSize    int               `json:"crewSize"`
	Hours       float64           `json:"hours"`
	Crew        []Member          `json:"crew"`
	TotalGain   float64           `json:"totalGain"`
	TotalSkill  int               `json:"totalSkill"`
	MaxSkill    int               `json:"maxSkill"`
	BaseRateAll float64           `json:"baseRateAll"`
	BaseRate    float64           `json:"baseRate"`
	Rate        float64           `json:"rate"`
	Blocked     []BlockedMaterial `json:"blocked,omitempty"`
	Swaps       int               `json:"swaps"`
}

// Deficit is how many skill points the crew is short of unlocking every
// material; 0 when the site is fully unlocked.
func (a *Assignment) Deficit() int {
	if d := a.MaxSkill - a.TotalSkill; d > 0 {
		return d
	}
	return 0
}

// SkillOK reports whether every material on the site is gatherable.
func (a *Assignment) SkillOK() bool { return a.Deficit() == 0 }

// crewTotals sums category value and skill points over a crew.
func crewTotals(crew []Member, cat Category) (gain float64, skill int) {
	for _, m := range crew {
		gain += m.gain(cat)
		skill += m.points(cat)
	}
	return gain, skill
}

// ── Assignment engine ───────────────────────────────────────────────

type assigner struct {
	available []Member
	verbose   bool
}

// AssignSites staffs sites in the given order from pool. Chefs placed on a
// site are unavailable to later sites. It returns one Assignment per site
// and the chefs left over, in their final pool order.
func AssignSites(sites []*Site, pool []Member, verbose bool) ([]Assignment, []Member) {
	a := &assigner{available: slices.Clone(pool), verbose: verbose}
	out := make([]Assignment, 0, len(sites))
	for _, site := range sites {
		out = append(out, a.assignSite(site))
	}
	return out, a.available
}

func (a *assigner) assignSite(site *Site) Assignment {
	cat := site.Category
	snap := site.Snapshot()

	// 1. rank by category value
	slices.SortStableFunc(a.available, func(x, y Member) int {
		gx, gy := x.gain(cat), y.gain(cat)
		switch {
		case gx > gy:
			return -1
		case gx < gy:
			return 1
		}
		return 0
	})

	// 2. greedy fill
	n := min(site.CrewSize, len(a.available))
	crew := slices.Clone(a.available[:n])
	a.available = slices.Delete(a.available, 0, n)

	// 3. repair toward the skill gate
	swaps := 0
	for swaps < site.CrewSize {
		totalGain, totalSkill := crewTotals(crew, cat)
		if totalSkill >= snap.MaxSkill {
			break
		}
		ti, ai, ok := a.bestRepairSwap(site, crew, totalGain, totalSkill)
		if !ok {
			break
		}
		if a.verbose {
			fmt.Fprintf(logw(), "[repair] %s: %s(%d) -> %s(%d)\n", site.Name,
				crew[ti].Chef.Name, crew[ti].points(cat),
				a.available[ai].Chef.Name, a.available[ai].points(cat))
		}
		crew[ti], a.available[ai] = a.available[ai], crew[ti]
		swaps++
	}

	// 4. finalize
	totalGain, totalSkill := crewTotals(crew, cat)
	base, blocked := site.RateAtSkill(totalSkill)
	return Assignment{
		Site:        site,
		Name:        site.Name,
		Category:    cat,
		CrewSize:    site.CrewSize,
		Hours:       snap.Hours,
		Crew:        crew,
		TotalGain:   totalGain,
		TotalSkill:  totalSkill,
		MaxSkill:    snap.MaxSkill,
		BaseRateAll: snap.BaseRateAll,
		BaseRate:    base,
		Rate:        enhancedRate(base, totalGain),
		Blocked:     blocked,
		Swaps:       swaps,
	}
}

// bestRepairSwap searches (crew member, pool chef) pairs where the pool chef
// has strictly more skill points, so every candidate raises the skill sum.
// The first candidate is accepted even when it lowers the rate; later ones
// replace it only with a strictly higher rate. The result is the
// highest-rate skill-raising swap, earliest on ties.
func (a *assigner) bestRepairSwap(site *Site, crew []Member, totalGain float64, totalSkill int) (ti, ai int, ok bool) {
	cat := site.Category
	base, _ := site.RateAtSkill(totalSkill)
	bestRate := enhancedRate(base, totalGain)

	bestT, bestA := -1, -1
	for t := range crew {
		tSkill, tVal := crew[t].points(cat), crew[t].gain(cat)
		for i := range a.available {
			aSkill := a.available[i].points(cat)
			if aSkill <= tSkill {
				continue
			}
			newSkill := totalSkill - tSkill + aSkill
			newGain := totalGain - tVal + a.available[i].gain(cat)
			newBase, _ := site.RateAtSkill(newSkill)
			if r := enhancedRate(newBase, newGain); r > bestRate || bestT < 0 {
				bestRate = r
				bestT, bestA = t, i
			}
		}
	}
	if bestT < 0 {
		return 0, 0, false
	}
	return bestT, bestA, true
}
