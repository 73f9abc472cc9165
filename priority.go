package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// defaultPriorityOrder puts scarce, low-throughput sites first so they get
// the best chefs.
var defaultPriorityOrder = []string{"池塘", "牧场", "猪圈", "森林", "菜地", "菜棚", "鸡舍", "作坊"}

// PriorityOrder is the caller-owned sequence in which sites are staffed.
// Methods never modify the receiver.
type PriorityOrder []string

// DefaultPriorityOrder returns a fresh copy of the built-in order.
func DefaultPriorityOrder() PriorityOrder {
	return slices.Clone(defaultPriorityOrder)
}

// Promote swaps entry i with its predecessor. Out-of-range i (including 0)
// returns an unchanged copy.
func (p PriorityOrder) Promote(i int) PriorityOrder {
	out := slices.Clone(p)
	if i <= 0 || i >= len(out) {
		return out
	}
	out[i], out[i-1] = out[i-1], out[i]
	return out
}

// Index returns the position of name, or -1.
func (p PriorityOrder) Index(name string) int {
	return slices.Index(p, name)
}

// SortSites orders sites by their position in p. Sites not in p go last,
// keeping their relative order.
func (p PriorityOrder) SortSites(sites []*Site) {
	rank := make(map[string]int, len(p))
	for i, name := range p {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}
	pos := func(s *Site) int {
		if r, ok := rank[s.Name]; ok {
			return r
		}
		return len(p)
	}
	slices.SortStableFunc(sites, func(a, b *Site) int { return pos(a) - pos(b) })
}

// ── Site name resolution ────────────────────────────────────────────

// UnknownSiteError reports a site name that matched nothing, with the
// closest known names.
type UnknownSiteError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownSiteError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown site %q", e.Name)
	}
	return fmt.Sprintf("unknown site %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

// ResolveSite maps user input to a known site name: exact match first, then
// a unique prefix, then the closest name within a small edit distance.
func ResolveSite(input string, known []string) (string, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return "", &UnknownSiteError{Name: input}
	}
	if slices.Contains(known, in) {
		return in, nil
	}

	var prefixHits []string
	for _, name := range known {
		if strings.HasPrefix(name, in) {
			prefixHits = append(prefixHits, name)
		}
	}
	if len(prefixHits) == 1 {
		return prefixHits[0], nil
	}

	type cand struct {
		name string
		dist int
	}
	var cands []cand
	for _, name := range known {
		d := levenshtein.ComputeDistance(in, name)
		if d <= editLimit(name) {
			cands = append(cands, cand{name, d})
		}
	}
	slices.SortStableFunc(cands, func(a, b cand) int { return a.dist - b.dist })
	if len(cands) == 1 || (len(cands) > 1 && cands[0].dist < cands[1].dist) {
		return cands[0].name, nil
	}

	err := &UnknownSiteError{Name: input}
	for _, c := range cands {
		err.Suggestions = append(err.Suggestions, c.name)
	}
	if len(err.Suggestions) == 0 {
		err.Suggestions = prefixHits
	}
	return "", err
}

// editLimit scales the allowed edit distance with name length, counted in runes.
func editLimit(name string) int {
	switch n := len([]rune(name)); {
	case n <= 2:
		return 1
	case n <= 6:
		return 2
	default:
		return 3
	}
}

// ParseOrder resolves a comma-separated list of site names into a full
// priority order: the listed sites first, then the remaining entries of base.
func ParseOrder(list string, base PriorityOrder, known []string) (PriorityOrder, error) {
	var out PriorityOrder
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		name, err := ResolveSite(part, known)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	for _, name := range base {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// resolveOrder applies a comma-separated order list and then each promoted
// site name, in sequence, to base.
func resolveOrder(base PriorityOrder, orderList string, promotes []string, known []string) (PriorityOrder, error) {
	order := base
	if orderList != "" {
		var err error
		if order, err = ParseOrder(orderList, base, known); err != nil {
			return nil, err
		}
	}
	for _, p := range promotes {
		name, err := ResolveSite(p, known)
		if err != nil {
			return nil, err
		}
		order = order.Promote(order.Index(name))
	}
	return order, nil
}
