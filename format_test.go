package main

import (
	"strings"
	"testing"
)

func smallGame() *GameData {
	candidate := *slotChef(9, "红|绿|绿<br>最高5级", 5)
	candidate.Name = "候补"
	candidate.Points[CatMeat] = 4
	return &GameData{
		Chefs: []Chef{
			*pointsChef(1, "阿牛", CatMeat, 6),
			*pointsChef(2, "阿渔", CatFish, 3),
			candidate,
		},
		Sites: []Site{
			*hourSite("牧场", CatMeat, 1, 1200, 0, 5),
			*hourSite("池塘", CatFish, 1, 10, 0, 8),
		},
	}
}

func TestFormatResultPlain(t *testing.T) {
	res := Optimize(smallGame(), DefaultPriorityOrder(), DefaultConfig())
	out := FormatResult(res, false, -1)

	for _, want := range []string{
		"1. 池塘", "2. 牧场",
		"阿渔(3, 0.0%)",
		"不足", "不可采: 池塘B(8)",
		"2,400.00", "2,410.00",
		"候补", "牧场 肉=4",
		"合计:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain report contains escape codes")
	}
}

func TestFormatResultStatus(t *testing.T) {
	if out := FormatResult(&Result{Status: StatusNoData}, false, -1); !strings.Contains(out, "未加载") {
		t.Errorf("no-data report = %q", out)
	}
	if out := FormatResult(&Result{Status: StatusNoEligibleWorkers}, false, -1); !strings.Contains(out, "未找到") {
		t.Errorf("no-workers report = %q", out)
	}
}

func TestFormatResultCursor(t *testing.T) {
	res := Optimize(smallGame(), DefaultPriorityOrder(), DefaultConfig())
	out := FormatResult(res, false, 1)
	if !strings.Contains(out, "> 2. 牧场") {
		t.Errorf("cursor marker missing on site 2:\n%s", out)
	}
	if strings.Contains(out, "> 1. 池塘") {
		t.Errorf("cursor marker on unselected site:\n%s", out)
	}
}

func TestFmtGainMarksCrit(t *testing.T) {
	m := Member{Chef: &Chef{}, Value: ValueProfile{Flat: 5, CritExpected: 10}}
	if got := fmtGain(m, CatMeat); got != "15%*" {
		t.Errorf("fmtGain = %q, want 15%%*", got)
	}
	m.Value.CritExpected = 0
	if got := fmtGain(m, CatMeat); got != "5.0%" {
		t.Errorf("fmtGain = %q, want 5.0%%", got)
	}
}
