package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

type skillEntry struct {
	desc    string
	effects []SkillEffect
}

type diskInfo struct {
	maxLevel int
	info     []int // slot types
}

type amberInfo struct {
	id            int
	name          string
	typ           int
	skill         []int
	amplification int
}

type gameCache struct {
	chefs    []Chef
	sites    []Site
	equipMap map[int]*Equip

	skillMap map[int]*skillEntry
	diskMap  map[int]*diskInfo
	amberMap map[int]*amberInfo

	chefDisk map[int]int // chefID -> raw disk ID
}

func buildSkillTable(dataJSON string) map[int]*skillEntry {
	m := make(map[int]*skillEntry)
	gjson.Get(dataJSON, "skills").ForEach(func(_, v gjson.Result) bool {
		id := int(v.Get("skillId").Int())
		var effects []SkillEffect
		v.Get("effect").ForEach(func(_, e gjson.Result) bool {
			effects = append(effects, parseSkillEffect(e))
			return true
		})
		m[id] = &skillEntry{desc: v.Get("desc").String(), effects: effects}
		return true
	})
	return m
}

func parseSkillEffect(e gjson.Result) SkillEffect {
	return SkillEffect{
		Type:      parseEffType(e.Get("type").String()),
		Cal:       parseCalType(e.Get("cal").String()),
		Value:     e.Get("value").Float(),
		Condition: parseCondScope(e.Get("condition").String()),
	}
}

// resolveSkills concatenates the effects and descriptions of the given skill IDs.
func resolveSkills(sm map[int]*skillEntry, ids []int) (effects []SkillEffect, desc string) {
	var b strings.Builder
	for _, id := range ids {
		s, ok := sm[id]
		if !ok {
			continue
		}
		effects = append(effects, s.effects...)
		b.WriteString(s.desc)
		b.WriteString("<br>")
	}
	return effects, b.String()
}

// LoadRawData reads the game data and player archive files and returns the
// chefs and configured sites ready for optimization.
func LoadRawData(dataPath, archivePath string, cfg Config) (*GameData, error) {
	rawBytes, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dataPath, err)
	}
	archBytes, err := os.ReadFile(archivePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", archivePath, err)
	}
	return loadFromStrings(string(rawBytes), string(archBytes), cfg)
}

func loadFromStrings(dataJSON, archJSON string, cfg Config) (*GameData, error) {
	if !gjson.Valid(dataJSON) {
		return nil, fmt.Errorf("game data: invalid JSON")
	}
	if !gjson.Valid(archJSON) {
		return nil, fmt.Errorf("archive: invalid JSON")
	}
	gc := buildGameCache(dataJSON, cfg)
	applyArchive(gc, archJSON)
	if cfg.Verbose {
		fmt.Fprintf(logw(), "[load] chefs=%d sites=%d equips=%d ambers=%d\n",
			len(gc.chefs), len(gc.sites), len(gc.equipMap), len(gc.amberMap))
	}
	return &GameData{Chefs: gc.chefs, Sites: gc.sites}, nil
}

func buildGameCache(dataJSON string, cfg Config) *gameCache {
	sm := buildSkillTable(dataJSON)

	diskMap := make(map[int]*diskInfo)
	gjson.Get(dataJSON, "disks").ForEach(func(_, v gjson.Result) bool {
		diskMap[int(v.Get("diskId").Int())] = &diskInfo{
			maxLevel: int(v.Get("maxLevel").Int()),
			info:     readIntSlice(v.Get("info")),
		}
		return true
	})

	amberMap := make(map[int]*amberInfo)
	gjson.Get(dataJSON, "ambers").ForEach(func(_, v gjson.Result) bool {
		id := int(v.Get("amberId").Int())
		amberMap[id] = &amberInfo{
			id:            id,
			name:          v.Get("name").String(),
			typ:           int(v.Get("type").Int()),
			skill:         readIntSlice(v.Get("skill")),
			amplification: int(v.Get("amplification").Int()),
		}
		return true
	})

	equipMap := make(map[int]*Equip)
	gjson.Get(dataJSON, "equips").ForEach(func(_, v gjson.Result) bool {
		if v.Get("name").String() == "" {
			return true
		}
		effects, disp := resolveSkills(sm, readIntSlice(v.Get("skill")))
		id := int(v.Get("equipId").Int())
		equipMap[id] = &Equip{
			EquipID: id,
			Name:    v.Get("name").String(),
			Effect:  effects,
			Crit:    parseEquipCrit(disp),
		}
		return true
	})

	var chefs []Chef
	chefDisk := make(map[int]int)
	gjson.Get(dataJSON, "chefs").ForEach(func(_, v gjson.Result) bool {
		if v.Get("name").String() == "" {
			return true
		}
		id := int(v.Get("chefId").Int())

		var special []SkillEffect
		if skillID := int(v.Get("skill").Int()); skillID != 0 {
			special, _ = resolveSkills(sm, []int{skillID})
		}

		var ult *Ultimate
		if ids := readIntSlice(v.Get("ultimateSkillList")); len(ids) > 0 {
			effects, disp := resolveSkills(sm, ids)
			ult = &Ultimate{Effect: effects, CritChance: parseUltimateCritChance(disp)}
		}

		diskID := int(v.Get("disk").Int())
		chefDisk[id] = diskID
		disk := Disk{Level: 1}
		if d, ok := diskMap[diskID]; ok {
			disk.MaxLevel = d.maxLevel
			disk.Ambers = make([]Amber, len(d.info))
		}

		chef := Chef{
			ChefID:             id,
			Name:               v.Get("name").String(),
			Rarity:             int(v.Get("rarity").Int()),
			SpecialSkillEffect: special,
			Disk:               disk,
			DiskDesc:           v.Get("diskDesc").String(),
			Ultimate:           ult,
		}
		chef.Points[CatMeat] = int(v.Get("meat").Int())
		chef.Points[CatVegetable] = int(v.Get("veg").Int())
		chef.Points[CatCreation] = int(v.Get("creation").Int())
		chef.Points[CatFish] = int(v.Get("fish").Int())
		chefs = append(chefs, chef)
		return true
	})

	var sites []Site
	gjson.Get(dataJSON, "maps").ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		sc, ok := cfg.siteConfig(name)
		if !ok {
			return true
		}
		site := Site{
			Name:     name,
			Category: sc.Category,
			Time:     readIntSlice(v.Get("time")),
			TimeIdx:  sc.TimeIdx,
			CrewSize: sc.CrewSize,
		}
		v.Get("materials").ForEach(func(_, m gjson.Result) bool {
			mat := SiteMaterial{Name: m.Get("name").String(), Skill: int(m.Get("skill").Int())}
			m.Get("quantity").ForEach(func(_, q gjson.Result) bool {
				arr := q.Array()
				var pair [2]int
				if len(arr) > 0 {
					pair[0] = int(arr[0].Int())
					pair[1] = pair[0]
				}
				if len(arr) > 1 {
					pair[1] = int(arr[1].Int())
				}
				mat.Quantity = append(mat.Quantity, pair)
				return true
			})
			site.Materials = append(site.Materials, mat)
			return true
		})
		sites = append(sites, site)
		return true
	})

	return &gameCache{
		chefs:    chefs,
		sites:    sites,
		equipMap: equipMap,
		skillMap: sm,
		diskMap:  diskMap,
		amberMap: amberMap,
		chefDisk: chefDisk,
	}
}

func readIntSlice(v gjson.Result) []int {
	if !v.Exists() || !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]int, len(arr))
	for i, item := range arr {
		out[i] = int(item.Int())
	}
	return out
}

func isYes(s string) bool { return s == "是" || s == "true" }

func applyArchive(gc *gameCache, archJSON string) {
	type archCh struct {
		got, ult string
		equip    int
		dlv      int
		ambers   []int
	}
	archChefs := make(map[int]archCh)
	gjson.Get(archJSON, "msg.chefs").ForEach(func(_, v gjson.Result) bool {
		archChefs[int(v.Get("id").Int())] = archCh{
			got:    v.Get("got").String(),
			ult:    v.Get("ult").String(),
			equip:  int(v.Get("equip").Int()),
			dlv:    int(v.Get("dlv").Int()),
			ambers: readIntSlice(v.Get("ambers")),
		}
		return true
	})

	for i := range gc.chefs {
		c := &gc.chefs[i]
		ac, ok := archChefs[c.ChefID]
		if !ok {
			continue
		}
		c.Got = isYes(ac.got)
		c.UltimateUnlocked = ac.ult == "是"
		if eq, ok := gc.equipMap[ac.equip]; ok && ac.equip != 0 {
			c.Equip = eq
		}
		switch {
		case ac.dlv <= 0:
		case c.Disk.MaxLevel > 0 && ac.dlv > c.Disk.MaxLevel:
			c.Disk.Level = c.Disk.MaxLevel
		default:
			c.Disk.Level = ac.dlv
		}
		socketAmbers(gc, c, ac.ambers)
		addPointBonuses(c)
	}
}

// socketAmbers places archive amber IDs into the chef's disk slots. An amber
// goes into the slot at its own position when the slot type matches,
// otherwise into the first free slot of its type.
func socketAmbers(gc *gameCache, c *Chef, ids []int) {
	info := gc.diskMap[gc.chefDisk[c.ChefID]]
	if info == nil || len(ids) == 0 {
		return
	}
	var pending []*amberInfo
	for si, id := range ids {
		amb, ok := gc.amberMap[id]
		if id == 0 || !ok {
			continue
		}
		if si < len(c.Disk.Ambers) && si < len(info.info) && info.info[si] == amb.typ && c.Disk.Ambers[si].Data == nil {
			c.Disk.Ambers[si].Data = amberData(gc.skillMap, amb)
			continue
		}
		pending = append(pending, amb)
	}
	for _, amb := range pending {
		for si := range c.Disk.Ambers {
			if si < len(info.info) && info.info[si] == amb.typ && c.Disk.Ambers[si].Data == nil {
				c.Disk.Ambers[si].Data = amberData(gc.skillMap, amb)
				break
			}
		}
	}
}

// amberData expands an amber's base effects into its five level tiers.
func amberData(sm map[int]*skillEntry, amb *amberInfo) *AmberData {
	base, _ := resolveSkills(sm, amb.skill)
	all := make([][]SkillEffect, 5)
	for lvl := 1; lvl <= 5; lvl++ {
		levelEffects := make([]SkillEffect, len(base))
		for i, e := range base {
			levelEffects[i] = e
			levelEffects[i].Value = e.Value + float64((lvl-1)*amb.amplification)
		}
		all[lvl-1] = levelEffects
	}
	return &AmberData{AmberID: amb.id, Name: amb.name, AllEffect: all}
}

// addPointBonuses folds absolute category-point effects from the equip and
// socketed ambers into the chef's skill points.
func addPointBonuses(c *Chef) {
	var effects []SkillEffect
	if c.Equip != nil {
		effects = append(effects, c.Equip.Effect...)
	}
	effects = append(effects, diskEffects(&c.Disk)...)
	for _, eff := range effects {
		if eff.Cal != CalAbs {
			continue
		}
		if cat, ok := categoryOfPoints(eff.Type); ok {
			c.Points[cat] += int(eff.Value)
		}
	}
}
