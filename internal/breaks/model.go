package breaks

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/werk/internal/models"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	quit key.Binding
}

var defaultKeymap = keymap{
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
}

func newStyles(t models.BreakType) styles {
	accent := lipgloss.Color("#12EAEA")
	if t == models.LongBreak {
		accent = lipgloss.Color("#C492B1")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D")),
		hint:      lipgloss.NewStyle().Faint(true),
	}
}

// model is the bubbletea countdown shown during a foreground break.
type model struct {
	end        time.Time
	style      styles
	clock      btimer.Model
	progress   progress.Model
	help       help.Model
	breakType  models.BreakType
	message    string
	timeFormat string
	total      time.Duration
	completed  bool
}

func newModel(
	d time.Duration,
	t models.BreakType,
	message string,
	twentyFourHour bool,
) *model {
	timeFormat := "03:04:05 PM"
	if twentyFourHour {
		timeFormat = "15:04:05"
	}

	return &model{
		end:        time.Now().Add(d),
		style:      newStyles(t),
		clock:      btimer.NewWithInterval(d, time.Second),
		progress:   progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
		breakType:  t,
		message:    message,
		timeFormat: timeFormat,
		total:      d,
	}
}

func (m *model) Init() tea.Cmd {
	return m.clock.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case btimer.TickMsg, btimer.StartStopMsg:
		m.clock, cmd = m.clock.Update(msg)

		return m, cmd

	case btimer.TimeoutMsg:
		m.completed = true

		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (m *model) formatTimeRemaining() string {
	secs := int(m.clock.Timeout.Round(time.Second).Seconds())

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (m *model) View() string {
	if m.completed {
		return ""
	}

	var s strings.Builder

	title := "Short break"
	if m.breakType == models.LongBreak {
		title = "Long break"
	}

	s.WriteString(m.style.title.Render(title))
	s.WriteString(" ")
	s.WriteString(m.style.hint.Render("until " + m.end.Format(m.timeFormat)))

	if m.message != "" {
		s.WriteString("\n\n" + m.style.secondary.Render(m.message))
	}

	percent := 0.0
	if m.total > 0 {
		percent = 1 - float64(m.clock.Timeout)/float64(m.total)
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.main.Render(m.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return m.style.base.Render(s.String())
}
