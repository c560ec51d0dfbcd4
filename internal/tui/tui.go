// Package tui is the terminal front end for a game session. It owns no
// game rules: every line of input goes through the game orchestrator and
// every line of output comes back from it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptoconquerors/realm-api/internal/orchestrators/game"
)

var (
	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	realmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

type model struct {
	svc     game.Service
	session *game.Session

	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	err       error
}

// NewModel builds the session view around an already-created session.
func NewModel(svc game.Service, session *game.Session) model {
	ti := textinput.New()
	ti.Placeholder = "wallet address"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		svc:       svc,
		session:   session,
		textInput: ti,
	}
	m.gameLog = realmStyle.Render(strings.Join(session.Greeting(), "\n")) + "\n\n"
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type commandResultMsg struct {
	lines []string
	quit  bool
	err   error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.textInput.Value()
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()

			logWidth := m.logWidth()
			m.gameLog += playerStyle.Width(logWidth).Render("> "+line) + "\n\n"
			m.viewport.SetContent(m.gameLog)
			m.viewport.GotoBottom()
			return m, m.execute(line)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()

	case commandResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.gameLog += errorStyle.Render("The realm flickers: "+msg.err.Error()) + "\n\n"
		} else {
			m.gameLog += realmStyle.Width(m.logWidth()).Render(strings.Join(msg.lines, "\n")) + "\n\n"
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		if msg.quit {
			return m, tea.Quit
		}
		m.textInput.Placeholder = m.placeholder()
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	mainView := m.viewport.View()
	if m.session.Ready() {
		mainView = lipgloss.JoinHorizontal(lipgloss.Top, mainView, m.renderSidebar())
	}

	help := helpStyle.Render("Type 'help' for commands. Ctrl+C to leave the realm.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) logWidth() int {
	w := int(float64(m.width) * 0.75)
	if w < 20 {
		return 20
	}
	return w
}

func (m model) placeholder() string {
	if m.session.Ready() {
		return "what do you do?"
	}
	return m.textInput.Placeholder
}

func (m model) renderSidebar() string {
	p := m.session.Profile()
	if p == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("CHARACTER") + "\n")
	fmt.Fprintf(&sb, "%s of House %s\nLevel %d\n\n", p.Name, p.House, p.Level)

	sb.WriteString(titleStyle.Render("STATS") + "\n")
	fmt.Fprintf(&sb, "HP: %d/%d\nGold: %d\nAttack: %d\nDefense: %d\n\n",
		p.HP, p.MaxHP, p.Gold, p.Attack, p.Defense)

	if p.CurrentDistrict != "" {
		sb.WriteString(titleStyle.Render("DISTRICT") + "\n")
		fmt.Fprintf(&sb, "%s (%d%%)\n", p.CurrentDistrict, p.DistrictProgress)
		if name, hp, ok := m.session.Battle(); ok {
			fmt.Fprintf(&sb, "Fighting %s (%d HP)\n", name, hp)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(titleStyle.Render("INVENTORY") + "\n")
	if len(p.Inventory) == 0 {
		sb.WriteString("(empty)\n")
	} else {
		for _, item := range p.Inventory {
			sb.WriteString("- " + item + "\n")
		}
	}

	if online := m.session.OnlinePlayers(); len(online) > 0 {
		sb.WriteString("\n" + titleStyle.Render("ONLINE") + "\n")
		for _, presence := range online {
			name := presence.Name
			if name == "" {
				name = presence.Wallet
			}
			sb.WriteString(name + "\n")
		}
	}

	sidebarWidth := int(float64(m.width) * 0.23)
	return sidebarStyle.Width(sidebarWidth).Height(m.viewport.Height).Render(sb.String())
}

func (m model) execute(line string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.svc.Execute(context.Background(), &game.ExecuteInput{
			Session: m.session,
			Line:    line,
		})
		if err != nil {
			return commandResultMsg{err: err}
		}
		return commandResultMsg{lines: out.Lines, quit: out.Quit}
	}
}

// Run drives one player session to completion. The presence heartbeat runs
// alongside the program and stops when it exits.
func Run(svc game.Service) error {
	session := svc.NewSession()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go game.NewPublisher(svc, session, game.HeartbeatInterval).Run(ctx)

	p := tea.NewProgram(NewModel(svc, session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
