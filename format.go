package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// reportStyles holds the styles for one rendering; the zero value renders plain text.
type reportStyles struct {
	title   lipgloss.Style
	body    lipgloss.Style
	warn    lipgloss.Style
	rate    lipgloss.Style
	hint    lipgloss.Style
	box     lipgloss.Style
	current lipgloss.Style
}

func newReportStyles(styled bool) reportStyles {
	if !styled {
		plain := lipgloss.NewStyle()
		return reportStyles{plain, plain, plain, plain, plain, plain, plain}
	}
	return reportStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		body:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		rate:  lipgloss.NewStyle().Bold(true),
		hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),
		current: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D35E")),
	}
}

func fmtRate(v float64) string { return humanize.FormatFloat("#,###.##", v) }

// fmtGain renders a chef's percent gain; crit-derived values are marked with *.
func fmtGain(m Member, cat Category) string {
	val := m.Value.CategoryValue(cat)
	if m.Value.CritExpected > 0 {
		return fmt.Sprintf("%.0f%%*", val)
	}
	return fmt.Sprintf("%.1f%%", val)
}

// formatAssignment renders one site block. cursor marks the selected site in
// the interactive view.
func formatAssignment(st reportStyles, a *Assignment, idx int, cursor bool) string {
	var b strings.Builder

	marker := "  "
	if cursor {
		marker = st.current.Render("> ")
	}
	head := fmt.Sprintf("%d. %s (%sh, %d人) 点数: %d/%d", idx+1, a.Name,
		humanize.Ftoa(a.Hours), a.CrewSize, a.TotalSkill, a.MaxSkill)
	b.WriteString(marker + st.title.Render(head))
	if !a.SkillOK() {
		b.WriteString(" " + st.warn.Render("不足"))
	}
	b.WriteString("\n")

	parts := make([]string, len(a.Crew))
	for i, m := range a.Crew {
		parts[i] = fmt.Sprintf("%s(%d, %s)", m.Chef.Name, m.points(a.Category), fmtGain(m, a.Category))
	}
	b.WriteString(st.body.Render(fmt.Sprintf("加成: %s = %.1f%%", strings.Join(parts, " + "), a.TotalGain)))
	b.WriteString("\n")

	if len(a.Blocked) > 0 {
		names := make([]string, len(a.Blocked))
		for i, bm := range a.Blocked {
			names[i] = bm.String()
		}
		b.WriteString(st.warn.Render("不可采: " + strings.Join(names, ", ")))
		b.WriteString("\n")
		b.WriteString(st.body.Render(fmt.Sprintf("可采基础: %s/h (全部: %s)", fmtRate(a.BaseRate), fmtRate(a.BaseRateAll))))
	} else {
		b.WriteString(st.body.Render(fmt.Sprintf("基础: %s/h", fmtRate(a.BaseRate))))
	}
	b.WriteString(st.body.Render(fmt.Sprintf(" × (1 + %.1f%%) = ", a.TotalGain)))
	b.WriteString(st.rate.Render(fmtRate(a.Rate) + "/h"))
	return b.String()
}

func formatCandidates(st reportStyles, cands []Candidate) string {
	var b strings.Builder
	b.WriteString(st.title.Render("候选") + st.hint.Render(" (绿槽潜力按满级玉估算)"))
	for _, c := range cands {
		perSlot := c.SlotMaxLevel + 1
		rarity := "?"
		if r := c.Entry.Chef.Rarity; r > 0 {
			rarity = fmt.Sprint(r)
		}
		gain := fmt.Sprintf("%.1f%%", c.Entry.Value.EffectiveGain())
		if c.Entry.Value.CritExpected > 0 {
			gain = fmt.Sprintf("%.0f%%*", c.Entry.Value.EffectiveGain())
		}
		var targets []string
		for _, cc := range c.Categories {
			targets = append(targets, fmt.Sprintf("%s %s=%d", strings.Join(cc.SiteNames, "/"), cc.Category.ShortName(), cc.Points))
		}
		line := fmt.Sprintf("%s (%s星, %s, %d绿%d空×%d=%d) → %s",
			c.Name, rarity, gain, c.GreenTotal, c.GreenEmpty, perSlot, c.GreenEmpty*perSlot,
			strings.Join(targets, ", "))
		b.WriteString("\n" + st.body.Render(line))
	}
	return b.String()
}

// FormatResult renders a pass as a text report. cursor selects a site for
// the interactive view; pass -1 for none.
func FormatResult(res *Result, styled bool, cursor int) string {
	st := newReportStyles(styled)
	switch res.Status {
	case StatusNoData:
		return st.warn.Render("未加载游戏数据或未导入存档")
	case StatusNoEligibleWorkers:
		return st.warn.Render("未找到已拥有的厨师，请先导入存档")
	}

	var blocks []string
	blocks = append(blocks, st.hint.Render("排列顺序 = 厨师分配优先级"))
	for i := range res.Assignments {
		blocks = append(blocks, st.box.Render(formatAssignment(st, &res.Assignments[i], i, i == cursor)))
	}
	if len(res.Candidates) > 0 {
		blocks = append(blocks, st.box.Render(formatCandidates(st, res.Candidates)))
	}
	blocks = append(blocks, st.hint.Render(fmt.Sprintf("合计: %s/h  * 含暴击期望 (暴击概率 × 额外素材%%)", fmtRate(res.TotalRate))))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
