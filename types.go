package main

import "fmt"

// Category is one of the four material families a site and its workers' skill points belong to.
type Category int

const (
	CatMeat Category = iota
	CatVegetable
	CatCreation
	CatFish
	numCategories
)

// allCategories lists categories in display order.
var allCategories = [numCategories]Category{CatMeat, CatVegetable, CatCreation, CatFish}

func (c Category) String() string {
	switch c {
	case CatMeat:
		return "Meat"
	case CatVegetable:
		return "Vegetable"
	case CatCreation:
		return "Creation"
	case CatFish:
		return "Fish"
	}
	return "Unknown"
}

// ShortName is the single-character label used in the game UI.
func (c Category) ShortName() string {
	switch c {
	case CatMeat:
		return "肉"
	case CatVegetable:
		return "菜"
	case CatCreation:
		return "面"
	case CatFish:
		return "鱼"
	}
	return "?"
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	cat, ok := parseCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", b)
	}
	*c = cat
	return nil
}

func parseCategory(s string) (Category, bool) {
	switch s {
	case "Meat", "meat":
		return CatMeat, true
	case "Vegetable", "vegetable", "Veg", "veg":
		return CatVegetable, true
	case "Creation", "creation":
		return CatCreation, true
	case "Fish", "fish":
		return CatFish, true
	}
	return 0, false
}

type EffType int

const (
	EffNone EffType = iota
	// Material output gain, percent
	EffMaterialGain
	// Per-category output gain, percent (contiguous for categoryOfGain)
	EffMaterialMeat
	EffMaterialVegetable
	EffMaterialCreation
	EffMaterialFish
	// Per-category skill points (contiguous for categoryOfPoints)
	EffMeat
	EffVegetable
	EffCreation
	EffFish
)

// categoryOfGain maps Material_<Category> effects to their category.
func categoryOfGain(t EffType) (Category, bool) {
	if t >= EffMaterialMeat && t <= EffMaterialFish {
		return Category(t - EffMaterialMeat), true
	}
	return 0, false
}

// categoryOfPoints maps skill-point effects (Meat, Vegetable, ...) to their category.
func categoryOfPoints(t EffType) (Category, bool) {
	if t >= EffMeat && t <= EffFish {
		return Category(t - EffMeat), true
	}
	return 0, false
}

type CalType int

const (
	CalNone CalType = iota
	CalAbs
	CalPercent
)

type CondScope int

const (
	CondScopeNone CondScope = iota
	CondScopeSelf
	CondScopePartial
	CondScopeNext
	CondScopeGlobal
)

func parseEffType(s string) EffType {
	switch s {
	case "Material_Gain":
		return EffMaterialGain
	case "Material_Meat":
		return EffMaterialMeat
	case "Material_Vegetable":
		return EffMaterialVegetable
	case "Material_Creation":
		return EffMaterialCreation
	case "Material_Fish":
		return EffMaterialFish
	case "Meat":
		return EffMeat
	case "Vegetable":
		return EffVegetable
	case "Creation":
		return EffCreation
	case "Fish":
		return EffFish
	}
	return EffNone
}

func parseCalType(s string) CalType {
	switch s {
	case "Abs":
		return CalAbs
	case "Percent":
		return CalPercent
	}
	return CalNone
}

func parseCondScope(s string) CondScope {
	switch s {
	case "Self":
		return CondScopeSelf
	case "Partial":
		return CondScopePartial
	case "Next":
		return CondScopeNext
	case "Global":
		return CondScopeGlobal
	}
	return CondScopeNone
}

type SkillEffect struct {
	Type      EffType
	Cal       CalType
	Value     float64
	Condition CondScope
}

// CritClause is a chance-based bonus: with probability Chance (0..1) the
// effect whose value equals Bonus applies.
type CritClause struct {
	Chance float64
	Bonus  float64
}

type Equip struct {
	EquipID int
	Name    string
	Effect  []SkillEffect
	Crit    *CritClause // nil when the item has no crit clause
}

type AmberData struct {
	AmberID   int
	Name      string
	AllEffect [][]SkillEffect // allEffect[level-1]
}

type Amber struct {
	Data *AmberData // nil = empty socket
}

type Disk struct {
	Level    int
	MaxLevel int // 0 when unknown
	Ambers   []Amber
}

// Ultimate is a worker's ultimate ability. CritChance is the proc chance
// (0..1) read from its description, 0 when none is stated.
type Ultimate struct {
	Effect     []SkillEffect
	CritChance float64
}

// Chef is a worker that can be assigned to a gathering site.
type Chef struct {
	ChefID int
	Name   string
	Rarity int
	Got    bool

	// Points are per-category skill points, already including equip and
	// socket point bonuses.
	Points [numCategories]int

	SpecialSkillEffect []SkillEffect
	Equip              *Equip
	Disk               Disk
	DiskDesc           string // slot descriptor, e.g. "红|绿|绿<br>最高5级"

	Ultimate         *Ultimate
	UltimateUnlocked bool
}

// MaxPoints returns the chef's best single-category skill points.
func (c *Chef) MaxPoints() int {
	best := 0
	for _, p := range c.Points {
		if p > best {
			best = p
		}
	}
	return best
}

type SiteMaterial struct {
	Name     string
	Skill    int
	Quantity [][2]int // quantity[timeIdx] = {low, high}
}

// Site is a gathering location with its static resource table and the
// configured duration tier and crew size for a pass.
type Site struct {
	Name      string
	Category  Category
	Time      []int // seconds per duration tier
	Materials []SiteMaterial
	TimeIdx   int
	CrewSize  int
}

// GameData is everything the optimizer consumes from the loading step.
type GameData struct {
	Chefs []Chef
	Sites []Site
}
