package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

// randomGame builds a game with every default site and n chefs with random
// points and gains.
func randomGame(rng *rand.Rand, n int) *GameData {
	cfg := DefaultConfig()
	gd := &GameData{}
	for _, sc := range cfg.Sites {
		site := Site{
			Name:     sc.Name,
			Category: sc.Category,
			Time:     []int{3600, 7200, 14400, 28800, 43200},
			TimeIdx:  sc.TimeIdx,
			CrewSize: sc.CrewSize,
		}
		for m := 0; m < 4; m++ {
			lo := rng.IntN(20)
			site.Materials = append(site.Materials, SiteMaterial{
				Name:     fmt.Sprintf("%s-%d", sc.Name, m),
				Skill:    m * rng.IntN(15),
				Quantity: [][2]int{{1, 1}, {2, 2}, {3, 3}, {lo, lo + 10}, {lo * 2, lo*2 + 10}},
			})
		}
		gd.Sites = append(gd.Sites, site)
	}
	for i := 0; i < n; i++ {
		c := Chef{ChefID: i + 1, Name: fmt.Sprintf("chef%d", i+1), Got: rng.IntN(10) > 0}
		for _, cat := range allCategories {
			c.Points[cat] = rng.IntN(15)
		}
		c.SpecialSkillEffect = []SkillEffect{selfGain(float64(rng.IntN(30)))}
		gd.Chefs = append(gd.Chefs, c)
	}
	return gd
}

func TestOptimizeNoData(t *testing.T) {
	cfg := DefaultConfig()
	for name, gd := range map[string]*GameData{
		"nil":      nil,
		"no chefs": {Sites: []Site{*hourSite("牧场", CatMeat, 1, 1, 0)}},
		"no sites": {Chefs: []Chef{*pointsChef(1, "a", CatMeat, 1)}},
	} {
		res := Optimize(gd, DefaultPriorityOrder(), cfg)
		if res.Status != StatusNoData {
			t.Errorf("%s: status %v, want no_data", name, res.Status)
		}
		if !errors.Is(res.Err(), ErrNoData) {
			t.Errorf("%s: Err() = %v, want ErrNoData", name, res.Err())
		}
	}
}

func TestOptimizeNoEligibleWorkers(t *testing.T) {
	unowned := *pointsChef(1, "未得", CatMeat, 3)
	unowned.Got = false
	specialist := *pointsChef(2, "专精", CatMeat, 13)
	gd := &GameData{
		Chefs: []Chef{unowned, specialist},
		Sites: []Site{*hourSite("牧场", CatMeat, 2, 1, 0)},
	}
	res := Optimize(gd, DefaultPriorityOrder(), DefaultConfig())
	if res.Status != StatusNoEligibleWorkers {
		t.Fatalf("status %v, want no_eligible_workers", res.Status)
	}
	if !errors.Is(res.Err(), ErrNoEligibleWorkers) {
		t.Errorf("Err() = %v", res.Err())
	}
	if res.Owned != 1 || res.PoolSize != 0 {
		t.Errorf("owned=%d pool=%d, want 1 and 0", res.Owned, res.PoolSize)
	}

	cfg := DefaultConfig()
	cfg.IncludeSpecialists = true
	res = Optimize(gd, DefaultPriorityOrder(), cfg)
	if res.Status != StatusOK || res.PoolSize != 1 {
		t.Fatalf("with specialists: status %v pool %d, want ok and 1", res.Status, res.PoolSize)
	}
	if res.Assignments[0].Crew[0].Chef.ChefID != 2 {
		t.Errorf("crew = %v, want the specialist", res.Assignments[0].Crew)
	}
}

func TestOptimizeSpecialistThresholdInclusive(t *testing.T) {
	gd := &GameData{
		Chefs: []Chef{*pointsChef(1, "十二", CatFish, 12)},
		Sites: []Site{*hourSite("池塘", CatFish, 1, 1, 0)},
	}
	if res := Optimize(gd, DefaultPriorityOrder(), DefaultConfig()); res.PoolSize != 1 {
		t.Fatalf("chef at the threshold excluded: pool %d", res.PoolSize)
	}
}

func TestOptimizeOrdersSites(t *testing.T) {
	gd := randomGame(rand.New(rand.NewPCG(1, 2)), 40)
	order := DefaultPriorityOrder().Promote(7)
	res := Optimize(gd, order, DefaultConfig())
	if !slices.Equal(res.Order, order) {
		t.Fatalf("order = %v, want %v", res.Order, order)
	}
	for i, a := range res.Assignments {
		if a.Name != order[i] {
			t.Errorf("assignment %d = %s, want %s", i, a.Name, order[i])
		}
	}
}

func TestOptimizeProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	cfg := DefaultConfig()
	for round := 0; round < 25; round++ {
		gd := randomGame(rng, 10+rng.IntN(40))
		order := DefaultPriorityOrder()
		for k := rng.IntN(5); k > 0; k-- {
			order = order.Promote(1 + rng.IntN(len(order)-1))
		}

		res := Optimize(gd, order, cfg)
		if res.Status != StatusOK {
			continue
		}

		// pool conservation
		seen := make(map[int]bool)
		assigned := 0
		for _, a := range res.Assignments {
			for _, m := range a.Crew {
				if seen[m.Chef.ChefID] {
					t.Fatalf("round %d: chef %d assigned twice", round, m.Chef.ChefID)
				}
				seen[m.Chef.ChefID] = true
				assigned++
			}
		}
		for _, m := range res.Leftover {
			if seen[m.Chef.ChefID] {
				t.Fatalf("round %d: chef %d both assigned and left over", round, m.Chef.ChefID)
			}
		}
		if assigned+len(res.Leftover) != res.PoolSize {
			t.Fatalf("round %d: %d assigned + %d leftover != pool %d",
				round, assigned, len(res.Leftover), res.PoolSize)
		}

		// blocked consistency
		for _, a := range res.Assignments {
			blocked := make(map[string]bool)
			for _, b := range a.Blocked {
				blocked[b.Name] = true
			}
			for _, mat := range a.Site.Materials {
				if want := mat.Skill > a.TotalSkill; blocked[mat.Name] != want {
					t.Errorf("round %d %s: %s(%d) blocked=%v with skill %d",
						round, a.Name, mat.Name, mat.Skill, blocked[mat.Name], a.TotalSkill)
				}
			}
			if (a.Deficit() > 0) != (len(a.Blocked) > 0) {
				t.Errorf("round %d %s: deficit %d but %d blocked", round, a.Name, a.Deficit(), len(a.Blocked))
			}
		}

		// idempotent re-run
		again := Optimize(gd, order, cfg)
		if !reflect.DeepEqual(res.Assignments, again.Assignments) {
			t.Fatalf("round %d: re-run produced different assignments", round)
		}
		if res.RunID == again.RunID {
			t.Errorf("round %d: run IDs repeat", round)
		}
	}
}

func TestSessionPromote(t *testing.T) {
	gd := randomGame(rand.New(rand.NewPCG(3, 4)), 30)
	s := NewSession(gd, DefaultConfig())
	if s.Last() != nil {
		t.Fatalf("Last before first run = %v", s.Last())
	}
	first := s.Run(false)
	before := slices.Clone(first.Order)

	if res := s.Promote(0); !slices.Equal(res.Order, before) {
		t.Errorf("Promote(0) order = %v, want %v", res.Order, before)
	}
	if res := s.Promote(0); !reflect.DeepEqual(res.Assignments, first.Assignments) {
		t.Errorf("Promote(0) changed assignments")
	}

	res := s.Promote(3)
	for i := range before {
		want := before[i]
		switch i {
		case 2:
			want = before[3]
		case 3:
			want = before[2]
		}
		if res.Order[i] != want {
			t.Errorf("after Promote(3) order[%d] = %s, want %s", i, res.Order[i], want)
		}
	}
	if !slices.Equal(s.Order(), res.Order) {
		t.Errorf("session order %v, result order %v", s.Order(), res.Order)
	}

	reset := s.Run(true)
	if !slices.Equal(reset.Order, DefaultPriorityOrder()) {
		t.Errorf("reset order = %v, want default", reset.Order)
	}
	if s.Last() != reset {
		t.Errorf("Last does not return the latest result")
	}
}

func TestSessionSetIncludeSpecialists(t *testing.T) {
	gd := &GameData{
		Chefs: []Chef{*pointsChef(1, "专精", CatMeat, 20), *pointsChef(2, "普通", CatMeat, 3)},
		Sites: []Site{*hourSite("牧场", CatMeat, 2, 1, 0)},
	}
	s := NewSession(gd, DefaultConfig())
	if res := s.SetIncludeSpecialists(true); res != nil {
		t.Fatalf("toggle before first run returned %v, want nil", res)
	}
	if !s.Config().IncludeSpecialists {
		t.Fatalf("toggle not recorded")
	}
	if res := s.Run(false); res.PoolSize != 2 {
		t.Fatalf("pool %d, want 2 with specialists", res.PoolSize)
	}
	if res := s.SetIncludeSpecialists(false); res == nil || res.PoolSize != 1 {
		t.Fatalf("after toggle off: %+v, want pool 1", res)
	}
}

func TestSessionCustomDefaultOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultOrder = PriorityOrder{"作坊"}
	s := NewSession(nil, cfg)
	if !slices.Equal(s.Order(), PriorityOrder{"作坊"}) {
		t.Fatalf("order = %v", s.Order())
	}
	if res := s.Run(false); res.Status != StatusNoData {
		t.Fatalf("status %v, want no_data", res.Status)
	}
	if !slices.Equal(s.Order(), PriorityOrder{"作坊"}) {
		t.Fatalf("failed run replaced the order: %v", s.Order())
	}
}
