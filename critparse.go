package main

import (
	"regexp"
	"strconv"
)

// Item and ultimate descriptions carry their crit parameters only as prose,
// e.g. "采集时有20%概率额外获得50%素材". These helpers turn that text into
// structured values once, at load time, so valuation never reads text.

var (
	equipCritRe    = regexp.MustCompile(`(\d+)%概率.*?(\d+)%素材`)
	percentFirstRe = regexp.MustCompile(`(\d+)%`)
)

// parseEquipCrit extracts the (chance, bonus) clause from an item's
// description. Returns nil when the text has none.
func parseEquipCrit(disp string) *CritClause {
	if disp == "" {
		return nil
	}
	m := equipCritRe.FindStringSubmatch(disp)
	if m == nil {
		return nil
	}
	chance, err1 := strconv.Atoi(m[1])
	bonus, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return nil
	}
	return &CritClause{Chance: float64(chance) / 100, Bonus: float64(bonus)}
}

// parseUltimateCritChance returns the first percentage in an ultimate's
// description as a probability, or 0.
func parseUltimateCritChance(disp string) float64 {
	m := percentFirstRe.FindStringSubmatch(disp)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return float64(n) / 100
}
