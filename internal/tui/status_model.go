package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"punchlog/internal/dateutil"
	"punchlog/internal/engine"
)

// StatusModel is the live attendance view. The engine holds no timers; this
// model re-reads it once per second, which is what keeps the clock moving.
type StatusModel struct {
	width  int
	height int

	engine  *engine.Engine
	status  engine.TodayStatus
	summary engine.Summary

	keys keyMap
	help help.Model
}

type keyMap struct {
	CheckIn  key.Binding
	CheckOut key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CheckIn, k.CheckOut, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.CheckIn, k.CheckOut, k.Quit}}
}

// statusTickMsg is sent every second to refresh the view
type statusTickMsg struct{}

// NewStatusModel creates the live status TUI model
func NewStatusModel(eng *engine.Engine) StatusModel {
	now := time.Now()
	return StatusModel{
		engine:  eng,
		status:  eng.TodayStatus(now),
		summary: eng.Summary(now),
		keys: keyMap{
			CheckIn:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "check in")),
			CheckOut: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "check out")),
			Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
		},
		help: help.New(),
	}
}

// Init starts the refresh ticker
func (m StatusModel) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// Update handles messages
func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		m.refresh()
		return m, statusTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.CheckIn):
			m.engine.CheckIn(time.Now())
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.CheckOut):
			m.engine.CheckOut(time.Now())
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *StatusModel) refresh() {
	now := time.Now()
	m.status = m.engine.TodayStatus(now)
	m.summary = m.engine.Summary(now)
}

// View renders the status TUI
func (m StatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.help.View(m.keys))
	contentHeight := m.height - 2

	if m.width < 90 {
		// Narrow view: today panel only, full width
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTodayPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTodayPanel(leftWidth, contentHeight),
		"  ",
		m.renderMonthPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		helpBar,
	)
}

// renderTodayPanel renders the left panel: worked time and target delta
func (m StatusModel) renderTodayPanel(width, height int) string {
	var components []string

	headerText := "⏱  OFF THE CLOCK"
	if m.status.CheckedIn {
		headerText = "⏱  ON THE CLOCK"
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(headerText))

	components = append(components, m.renderBigClock(width))

	var checkInText string
	switch {
	case m.status.CheckInAt != nil && m.status.CheckedIn:
		checkInText = fmt.Sprintf("Checked in at %s", m.status.CheckInAt.Format("15:04:05"))
	case m.status.CheckInAt != nil:
		checkInText = fmt.Sprintf("Checked out (in at %s)", m.status.CheckInAt.Format("15:04:05"))
	default:
		checkInText = "Not checked in today"
	}
	checkInStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, checkInStyle.Render(checkInText))

	deltaColor := ColorSuccess
	deltaLabel := "ahead of target"
	if m.status.AheadBehindMs < 0 {
		deltaColor = ColorError
		deltaLabel = "behind target"
	}
	deltaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(deltaColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components,
		deltaStyle.Render(fmt.Sprintf("%s %s", m.status.AheadBehindFormatted, deltaLabel)))

	content := strings.Join(components, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderMonthPanel renders the right panel: month at a glance
func (m StatusModel) renderMonthPanel(width, height int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render(time.Now().Format("January 2006")))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	lineStyle := lipgloss.NewStyle().Align(lipgloss.Center).Width(width - 8)

	line := func(label, value string) {
		b.WriteString(lineStyle.Render(labelStyle.Render(label+": ") + valueStyle.Render(value)))
		b.WriteString("\n")
	}

	line("Worked", dateutil.FormatDuration(m.summary.Month.TotalMs))
	line("Month target", dateutil.FormatDuration(m.summary.Month.TargetMs))
	line("Working days", fmt.Sprintf("%d elapsed, %d present",
		m.summary.WorkingDaysElapsed, m.summary.PresentWorkingDays))
	line("Absent this month", fmt.Sprintf("%d", m.summary.TotalAbsentDaysMonth))
	line("Absent this year", fmt.Sprintf("%d", m.summary.TotalAbsentDaysYear))
	line("Avg daily hours", fmt.Sprintf("%.2f", m.summary.AverageDailyHours))

	b.WriteString("\n")
	deltaColor := ColorSuccess
	if m.summary.CumulativeAheadBehindMs < 0 {
		deltaColor = ColorError
	}
	deltaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(deltaColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width - 8)
	sign := "+"
	delta := m.summary.CumulativeAheadBehindMs
	if delta < 0 {
		sign = "-"
		delta = -delta
	}
	b.WriteString(deltaStyle.Render(fmt.Sprintf("Cumulative %s%s", sign, dateutil.FormatDuration(delta))))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// renderBigClock renders the worked time as an ASCII art clock
func (m StatusModel) renderBigClock(width int) string {
	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	timeStr := dateutil.FormatDurationHMS(m.status.WorkedMs)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var rendered []string
	for i := 0; i < 5; i++ {
		centered := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(clockStyle.Render(lines[i].String()))
		rendered = append(rendered, centered)
	}
	return strings.Join(rendered, "\n")
}

// RunStatusTUI runs the live status view
func RunStatusTUI(eng *engine.Engine) error {
	p := tea.NewProgram(NewStatusModel(eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
