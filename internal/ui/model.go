package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/skysense/internal/weather"
)

const frameInterval = 250 * time.Millisecond

// Runner starts and completes searches against the latest-result slot.
type Runner interface {
	Begin() uint64
	Complete(ctx context.Context, token uint64, query string) (weather.Outcome, bool)
}

// Model is the bubbletea renderer. It only shows outcomes that reach it
// through the slot subscription, so a superseded search never paints.
type Model struct {
	runner  Runner
	updates <-chan weather.Outcome
	timeout time.Duration
	rng     *rand.Rand

	width  int
	height int

	input   textinput.Model
	spinner spinner.Model
	loading bool
	pending uint64

	outcome *weather.Outcome
	scene   Scene
}

// NewModel creates the renderer. updates is a slot subscription; awaiting
// is set when a start-up search is already on its way.
func NewModel(runner Runner, updates <-chan weather.Outcome, timeout time.Duration, awaiting bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Search city (e.g. New Delhi)..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		runner:  runner,
		updates: updates,
		timeout: timeout,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		input:   ti,
		spinner: sp,
		loading: awaiting,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForOutcome(m.updates), tickScene())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.pending = m.runner.Begin()
			m.loading = true
			return m, tea.Batch(m.search(m.pending, query), m.spinner.Tick)
		}

	case outcomeMsg:
		if m.outcome == nil || msg.outcome.Token > m.outcome.Token {
			o := msg.outcome
			m.outcome = &o
			theme := weather.ThemePartlyCloudy
			if o.Record != nil {
				theme = o.Record.Theme
			}
			m.scene = NewScene(theme, m.rng)
			if o.Token >= m.pending {
				m.loading = false
			}
		}
		return m, waitForOutcome(m.updates)

	case searchDoneMsg:
		if msg.token == m.pending {
			m.loading = false
		}
		return m, nil

	case sceneTickMsg:
		m.scene = m.scene.Step()
		return m, tickScene()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) search(token uint64, query string) tea.Cmd {
	runner, timeout := m.runner, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, published := runner.Complete(ctx, token, query)
		return searchDoneMsg{token: token, published: published}
	}
}

func waitForOutcome(updates <-chan weather.Outcome) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		o, ok := <-updates
		if !ok {
			return nil
		}
		return outcomeMsg{outcome: o}
	}
}

func tickScene() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return sceneTickMsg(t)
	})
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SkySense"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	theme := weather.ThemePartlyCloudy
	if m.outcome != nil && m.outcome.Record != nil {
		theme = m.outcome.Record.Theme
	}
	scene := sceneStyle(theme).Render(m.scene.Render())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, scene, paneStyle.Render(m.details())))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: search • esc/ctrl+c: quit"))
	return b.String()
}

func (m Model) details() string {
	if m.outcome == nil {
		if m.loading {
			return cityStyle.Render("Loading…")
		}
		return cityStyle.Render("Search for a city")
	}
	o := m.outcome

	var b strings.Builder
	b.WriteString(cityStyle.Render(o.LocationName))
	b.WriteString("\n")

	rec := o.Record
	if rec == nil {
		b.WriteString(tempStyle.Render("--°C"))
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(o.Message))
		return b.String()
	}

	b.WriteString(tempStyle.Render(fmt.Sprintf("%d°C", rec.TemperatureC)))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(o.Message))
	b.WriteString("\n\n")
	b.WriteString(row("Humidity", rec.HumidityPct.String()+"%"))
	b.WriteString(row("Precip", rec.PrecipProbPct.String()+"%"))
	b.WriteString(row("Wind", fmt.Sprintf("%d km/h", rec.WindSpeedKmh)))
	b.WriteString(labelStyle.Render("AQI") + badgeFor(rec.AQI).render(rec.AQI) + "\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Last updated: " + rec.FetchedAt.Local().Format(time.DateTime)))
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
