// Package tui is an interactive terminal front end for the evaluator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/riichi/mahjong"
)

const (
	paneLog = iota
	paneInput
)

const helpText = `Enter a hand such as 123m456p789s11122z (0 is a red five).
Commands: seat <wind>, wind <wind|off>, closed <on|off>, riichi <on|off>, clear, help, quit`

// Model is the bubbletea model: a scrolling log of evaluations, a context
// sidebar and an input line.
type Model struct {
	evaluator *mahjong.Evaluator
	logger    *log.Logger

	player    mahjong.PlayerInfo
	roundWind *mahjong.Seat

	logViewport viewport.Model
	input       textinput.Model
	entries     []string
	focusedPane int

	width       int
	height      int
	initialized bool
	quitting    bool
}

// New creates a model evaluating with ev. The player starts in the east seat
// with a closed hand.
func New(ev *mahjong.Evaluator, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Placeholder = "Hand or command (help for a list)"
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusColor).Bold(true)

	return &Model{
		evaluator:   ev,
		logger:      logger.WithPrefix("tui"),
		player:      mahjong.PlayerInfo{Seat: mahjong.SeatEast, IsHandClosed: true},
		logViewport: vp,
		input:       ti,
		entries:     []string{InfoStyle.Render(helpText)},
		focusedPane: paneInput,
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ev *mahjong.Evaluator, logger *log.Logger) error {
	_, err := tea.NewProgram(New(ev, logger), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == paneLog {
				m.focusedPane = paneInput
				m.input.Focus()
			} else {
				m.focusedPane = paneLog
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == paneInput {
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if m.submit(line) {
					m.quitting = true
					return m, tea.Quit
				}
				m.logViewport.SetContent(m.renderLog())
				m.logViewport.GotoBottom()
			}
		case "home", "g":
			if m.focusedPane == paneLog {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == paneLog {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == paneInput {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit handles one input line and reports whether the user asked to quit.
func (m *Model) submit(line string) bool {
	if line == "" {
		return false
	}
	fields := strings.Fields(strings.ToLower(line))
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "help":
		m.addEntry(InfoStyle.Render(helpText))
	case "clear":
		m.entries = nil
	case "seat":
		seat, err := mahjong.ParseSeat(arg)
		if err != nil {
			m.addEntry(ErrorStyle.Render(err.Error()))
			return false
		}
		m.player.Seat = seat
		m.addEntry(InfoStyle.Render("seat is now " + seat.String()))
	case "wind":
		if arg == "off" {
			m.roundWind = nil
			m.addEntry(InfoStyle.Render("round wind cleared"))
			return false
		}
		wind, err := mahjong.ParseSeat(arg)
		if err != nil {
			m.addEntry(ErrorStyle.Render(err.Error()))
			return false
		}
		m.roundWind = &wind
		m.addEntry(InfoStyle.Render("round wind is now " + wind.String()))
	case "closed", "riichi":
		on, ok := parseToggle(arg)
		if !ok {
			m.addEntry(ErrorStyle.Render(fmt.Sprintf("usage: %s on|off", fields[0])))
			return false
		}
		if fields[0] == "closed" {
			m.player.IsHandClosed = on
			if !on {
				m.player.CalledRiichi = false
			}
		} else {
			m.player.CalledRiichi = on
			if on {
				m.player.IsHandClosed = true
			}
		}
		m.addEntry(InfoStyle.Render(fmt.Sprintf("%s %s", fields[0], arg)))
	default:
		m.evaluate(line)
	}
	return false
}

func parseToggle(s string) (on, ok bool) {
	switch s {
	case "on", "yes", "true":
		return true, true
	case "off", "no", "false":
		return false, true
	}
	return false, false
}

func (m *Model) evaluate(line string) {
	hand, err := mahjong.ParseHand(line)
	if err != nil {
		m.addEntry(ErrorStyle.Render(err.Error()))
		return
	}

	var table *mahjong.TableInfo
	if m.roundWind != nil {
		table = &mahjong.TableInfo{RoundWind: *m.roundWind}
	}
	player := m.player
	res, err := m.evaluator.Evaluate(hand, &player, table)
	if err != nil {
		m.addEntry(HandStyle.Render(hand.String()) + "  " + ErrorStyle.Render(err.Error()))
		return
	}
	m.logger.Debug("Evaluated", "hand", hand, "winning", res.Winning, "han", res.Han())

	if !res.Winning {
		m.addEntry(HandStyle.Render(hand.String()) + "  " + ErrorStyle.Render("incomplete"))
		return
	}

	var b strings.Builder
	b.WriteString(HandStyle.Render(hand.String()))
	b.WriteString("  ")
	b.WriteString(SuccessStyle.Render(fmt.Sprintf("complete (%s), %d han", res.Shape, res.Han())))
	if len(res.Yaku) == 0 {
		b.WriteString("\n  " + InfoStyle.Render("no yaku"))
	}
	for _, y := range res.Yaku {
		b.WriteString("\n  " + YakuStyle.Render(fmt.Sprintf("%s (%d)", y.Name, y.Han)))
	}
	m.addEntry(b.String())
}

func (m *Model) addEntry(s string) {
	m.entries = append(m.entries, s)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputContent := m.input.View() + "\n" + InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit")
	inputHeight := lipgloss.Height(inputContent)
	inputPane := paneStyle(m.focusedPane == paneInput, max(m.width-2, 1), inputHeight).Render(inputContent)

	sidebar := m.renderSidebar()
	sidebarWidth := max(lipgloss.Width(sidebar), 24)
	paneHeight := max(m.height-inputHeight-4, 1)
	sidebarPane := paneStyle(false, sidebarWidth, paneHeight).Render(sidebar)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	m.logViewport.SetContent(m.renderLog())
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	logPane := paneStyle(m.focusedPane == paneLog, logWidth, paneHeight).Render(m.logViewport.View())

	top := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, top, inputPane)
}

func paneStyle(focused bool, width, height int) lipgloss.Style {
	border := blurColor
	if focused {
		border = focusColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Height(height)
}

func (m *Model) renderLog() string {
	return strings.Join(m.entries, "\n")
}

func (m *Model) renderSidebar() string {
	wind := "none"
	if m.roundWind != nil {
		wind = m.roundWind.String()
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Context "))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Seat:   %s\n", m.player.Seat)
	fmt.Fprintf(&b, "Dealer: %t\n", m.player.IsDealer())
	fmt.Fprintf(&b, "Closed: %t\n", m.player.IsHandClosed)
	fmt.Fprintf(&b, "Riichi: %t\n", m.player.CalledRiichi)
	fmt.Fprintf(&b, "Wind:   %s\n\n", wind)
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d yaku enabled", m.evaluator.Catalogue().Len())))
	return b.String()
}
