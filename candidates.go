package main

import (
	"slices"
	"strings"
)

const greenSlot = "绿"

// CandidateCategory is one category a candidate could serve.
type CandidateCategory struct {
	Category  Category `json:"category"`
	Points    int      `json:"points"`
	SiteNames []string `json:"siteNames"`
}

// Candidate is an unassigned chef worth investing in: it has empty green
// sockets and usable points for an active category.
type Candidate struct {
	Entry        Member              `json:"chef"`
	Name         string              `json:"name"`
	GreenTotal   int                 `json:"greenTotal"`
	GreenEmpty   int                 `json:"greenEmpty"`
	SlotMaxLevel int                 `json:"slotMaxLevel"`
	Categories   []CandidateCategory `json:"categories"`
	Potential    int                 `json:"potential"`
}

// greenSlots counts green sockets in a slot descriptor such as
// "红|绿|绿<br>最高5级" and how many of them hold no amber.
func greenSlots(chef *Chef) (total, empty int) {
	if chef.DiskDesc == "" {
		return 0, 0
	}
	head, _, _ := strings.Cut(chef.DiskDesc, "<br>")
	for i, color := range strings.Split(head, "|") {
		if color != greenSlot {
			continue
		}
		total++
		if i >= len(chef.Disk.Ambers) || chef.Disk.Ambers[i].Data == nil {
			empty++
		}
	}
	return total, empty
}

// RankCandidates scores leftover chefs by current points plus what filling
// every empty green socket at max level could add, for categories that have
// at least one active site.
func RankCandidates(leftover []Member, assignments []Assignment, cfg Config) []Candidate {
	var sitesByCat [numCategories][]string
	for i := range assignments {
		cat := assignments[i].Category
		sitesByCat[cat] = append(sitesByCat[cat], assignments[i].Name)
	}

	var out []Candidate
	for _, m := range leftover {
		total, empty := greenSlots(m.Chef)
		if empty == 0 {
			continue
		}
		maxLevel := m.Chef.Disk.MaxLevel
		if maxLevel <= 0 {
			maxLevel = cfg.DefaultDiskMaxLevel
		}

		c := Candidate{
			Entry:        m,
			Name:         m.Chef.Name,
			GreenTotal:   total,
			GreenEmpty:   empty,
			SlotMaxLevel: maxLevel,
		}
		for _, cat := range allCategories {
			pts := m.points(cat)
			if pts < cfg.CandidateMinPoints || len(sitesByCat[cat]) == 0 {
				continue
			}
			c.Categories = append(c.Categories, CandidateCategory{
				Category:  cat,
				Points:    pts,
				SiteNames: sitesByCat[cat],
			})
			if pot := pts + empty*(maxLevel+1); pot > c.Potential {
				c.Potential = pot
			}
		}
		if len(c.Categories) == 0 {
			continue
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if a.Potential != b.Potential {
			return b.Potential - a.Potential
		}
		ga, gb := a.Entry.Value.EffectiveGain(), b.Entry.Value.EffectiveGain()
		switch {
		case ga > gb:
			return -1
		case ga < gb:
			return 1
		}
		return 0
	})
	if cfg.CandidateLimit > 0 && len(out) > cfg.CandidateLimit {
		out = out[:cfg.CandidateLimit]
	}
	return out
}
