package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/skysense/internal/weather"
)

type fakeRunner struct {
	next    uint64
	queries []string
}

func (f *fakeRunner) Begin() uint64 {
	f.next++
	return f.next
}

func (f *fakeRunner) Complete(_ context.Context, token uint64, query string) (weather.Outcome, bool) {
	f.queries = append(f.queries, query)
	return weather.Outcome{Token: token, Query: query}, true
}

func doneOutcome(token uint64, name string, theme weather.Theme) weather.Outcome {
	rec := &weather.DisplayRecord{
		Location:      weather.Location{DisplayName: name},
		TemperatureC:  21,
		WindSpeedKmh:  9,
		HumidityPct:   weather.Some(48),
		PrecipProbPct: weather.Unavailable(),
		AQI:           weather.Some(63),
		Theme:         theme,
		ThemeLabel:    "Rain",
		WeatherCode:   61,
		FetchedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	return weather.Outcome{
		Token:        token,
		State:        weather.StateDone,
		LocationName: name,
		Message:      rec.Description(),
		Record:       rec,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitialView(t *testing.T) {
	m := NewModel(&fakeRunner{}, nil, time.Second, false)
	if !strings.Contains(m.View(), "Search for a city") {
		t.Errorf("idle view missing prompt:\n%s", m.View())
	}

	m = NewModel(&fakeRunner{}, nil, time.Second, true)
	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("awaiting view missing loading text:\n%s", m.View())
	}
}

func TestModelWindowSize(t *testing.T) {
	m := NewModel(&fakeRunner{}, nil, time.Second, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}

func TestModelQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewModel(&fakeRunner{}, nil, time.Second, false)
		_, cmd := update(t, m, tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command did not quit", key)
		}
	}
}

func TestModelEnterEmptyQuery(t *testing.T) {
	runner := &fakeRunner{}
	m := NewModel(runner, nil, time.Second, false)
	m.input.SetValue("   ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.loading || runner.next != 0 {
		t.Errorf("empty query started a search (loading=%v, tokens=%d)", m.loading, runner.next)
	}
}

func TestModelEnterStartsSearch(t *testing.T) {
	runner := &fakeRunner{}
	m := NewModel(runner, nil, time.Second, false)
	m.input.SetValue("  Lisbon ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.loading || m.pending != 1 {
		t.Fatalf("search not started (loading=%v, pending=%d)", m.loading, m.pending)
	}

	done := m.search(m.pending, "Lisbon")()
	msg, ok := done.(searchDoneMsg)
	if !ok || msg.token != 1 || !msg.published {
		t.Fatalf("search cmd returned %#v", done)
	}
	if len(runner.queries) != 1 || runner.queries[0] != "Lisbon" {
		t.Errorf("queries = %v", runner.queries)
	}

	m, _ = update(t, m, msg)
	if m.loading {
		t.Errorf("still loading after the pending search finished")
	}
}

func TestModelIgnoresStaleOutcome(t *testing.T) {
	m := NewModel(&fakeRunner{}, nil, time.Second, false)

	m, _ = update(t, m, outcomeMsg{outcome: doneOutcome(2, "Oslo, Norway", weather.ThemeSnow)})
	m, _ = update(t, m, outcomeMsg{outcome: doneOutcome(1, "Rome, Italy", weather.ThemeClear)})

	if m.outcome.LocationName != "Oslo, Norway" {
		t.Errorf("stale outcome replaced newer one: %q", m.outcome.LocationName)
	}
	if m.scene.theme != weather.ThemeSnow {
		t.Errorf("scene theme = %s, want snow", m.scene.theme)
	}
}

func TestModelOutcomeStopsLoadingOnlyWhenCurrent(t *testing.T) {
	runner := &fakeRunner{}
	m := NewModel(runner, nil, time.Second, false)
	m.input.SetValue("Oslo")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.pending != 2 {
		t.Fatalf("pending = %d, want 2", m.pending)
	}

	m, _ = update(t, m, outcomeMsg{outcome: doneOutcome(1, "Oslo, Norway", weather.ThemeSnow)})
	if !m.loading {
		t.Errorf("an older outcome stopped the loading indicator")
	}
	m, _ = update(t, m, outcomeMsg{outcome: doneOutcome(2, "Oslo, Norway", weather.ThemeSnow)})
	if m.loading {
		t.Errorf("current outcome did not stop the loading indicator")
	}
}

func TestModelDetails(t *testing.T) {
	m := NewModel(&fakeRunner{}, nil, time.Second, false)
	m, _ = update(t, m, outcomeMsg{outcome: doneOutcome(1, "Oslo, Norway", weather.ThemeRain)})

	view := m.View()
	for _, want := range []string{"Oslo, Norway", "21°C", "Rain • code 61", "48%", "--%", "9 km/h", "63", "Moderate", "Last updated"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelFailureDetails(t *testing.T) {
	m := NewModel(&fakeRunner{}, nil, time.Second, false)
	o := weather.NewOutcome(1, "Atlantis", nil, weather.ErrNotFound, time.Now())
	m, _ = update(t, m, outcomeMsg{outcome: o})

	view := m.View()
	for _, want := range []string{"Unknown location", "--°C", "No results for that city"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if m.scene.theme != weather.ThemePartlyCloudy {
		t.Errorf("failure scene theme = %s", m.scene.theme)
	}
}

func TestWaitForOutcome(t *testing.T) {
	if waitForOutcome(nil) != nil {
		t.Errorf("nil channel should yield no command")
	}

	ch := make(chan weather.Outcome, 1)
	ch <- weather.Outcome{Token: 3}
	msg, ok := waitForOutcome(ch)().(outcomeMsg)
	if !ok || msg.outcome.Token != 3 {
		t.Errorf("waitForOutcome returned %#v", msg)
	}

	close(ch)
	if got := waitForOutcome(ch)(); got != nil {
		t.Errorf("closed channel returned %#v", got)
	}
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		aqi  weather.OptionalInt
		want string
	}{
		{weather.Unavailable(), ""},
		{weather.Some(0), "Good"},
		{weather.Some(50), "Good"},
		{weather.Some(51), "Moderate"},
		{weather.Some(150), "Unhealthy for sensitive groups"},
		{weather.Some(200), "Unhealthy"},
		{weather.Some(301), "Very unhealthy"},
	}
	for _, tt := range tests {
		if got := badgeFor(tt.aqi).label; got != tt.want {
			t.Errorf("badgeFor(%v) = %q, want %q", tt.aqi, got, tt.want)
		}
	}
}
