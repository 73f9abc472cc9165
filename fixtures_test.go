package main

// Shared builders for hand-made chefs, sites and pools.

func pointsChef(id int, name string, cat Category, pts int) *Chef {
	c := &Chef{ChefID: id, Name: name, Got: true}
	c.Points[cat] = pts
	return c
}

// gainMember wraps a chef with a flat gain so its category value is known
// without going through Valuate.
func gainMember(c *Chef, flat float64) Member {
	return Member{Chef: c, Value: ValueProfile{Flat: flat}}
}

// hourSite builds a one-hour site whose materials each yield qty per hour
// and require the given skill.
func hourSite(name string, cat Category, crew int, qty int, skills ...int) *Site {
	s := &Site{Name: name, Category: cat, Time: []int{3600}, CrewSize: crew}
	for i, sk := range skills {
		s.Materials = append(s.Materials, SiteMaterial{
			Name:     name + string(rune('A'+i)),
			Skill:    sk,
			Quantity: [][2]int{{qty, qty}},
		})
	}
	return s
}

func crewIDs(a Assignment) map[int]bool {
	ids := make(map[int]bool, len(a.Crew))
	for _, m := range a.Crew {
		ids[m.Chef.ChefID] = true
	}
	return ids
}
