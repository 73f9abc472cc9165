package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tuiKeys struct {
	Up          key.Binding
	Down        key.Binding
	Promote     key.Binding
	Reset       key.Binding
	Specialists key.Binding
	Quit        key.Binding
}

var defaultTUIKeys = tuiKeys{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select down")),
	Promote:     key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "promote")),
	Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset order")),
	Specialists: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle specialists")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tuiModel drives a Session interactively: select a site, promote it one
// step, and see the re-run immediately.
type tuiModel struct {
	session  *Session
	res      *Result
	cursor   int
	keys     tuiKeys
	viewport viewport.Model
	ready    bool
	styled   bool
}

func newTUIModel(s *Session, styled bool) *tuiModel {
	m := &tuiModel{session: s, keys: defaultTUIKeys, styled: styled}
	m.res = s.Run(false)
	return m
}

func (m *tuiModel) Init() tea.Cmd { return nil }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(1, msg.Height-2)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		n := len(m.res.Assignments)
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < n-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Promote):
			if m.cursor > 0 {
				m.res = m.session.Promote(m.cursor)
				m.cursor--
			}
		case key.Matches(msg, m.keys.Reset):
			m.res = m.session.Run(true)
			m.cursor = 0
		case key.Matches(msg, m.keys.Specialists):
			m.res = m.session.SetIncludeSpecialists(!m.session.Config().IncludeSpecialists)
			m.cursor = min(m.cursor, max(0, len(m.res.Assignments)-1))
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m *tuiModel) refresh() {
	if m.ready {
		m.viewport.SetContent(FormatResult(m.res, m.styled, m.cursor))
	}
}

func (m *tuiModel) View() string {
	if !m.ready {
		return "loading..."
	}
	toggle := "off"
	if m.session.Config().IncludeSpecialists {
		toggle = "on"
	}
	help := fmt.Sprintf("%s  %s  %s  %s  %s (%s)  %s",
		helpText(m.keys.Up), helpText(m.keys.Down), helpText(m.keys.Promote),
		helpText(m.keys.Reset), helpText(m.keys.Specialists), toggle, helpText(m.keys.Quit))
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(help)
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func helpText(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

// runTUI blocks until the user quits.
func runTUI(s *Session, styled bool) error {
	p := tea.NewProgram(newTUIModel(s, styled), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
