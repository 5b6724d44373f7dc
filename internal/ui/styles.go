package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/skysense/internal/weather"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#6C757D")
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorBorder  = lipgloss.Color("#4A90E2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	cityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	tempStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)
)

// themeColors tints the scene pane per theme.
var themeColors = map[weather.Theme]lipgloss.Color{
	weather.ThemeClear:        lipgloss.Color("#FFD93D"),
	weather.ThemePartlyCloudy: lipgloss.Color("#87CEEB"),
	weather.ThemeFog:          lipgloss.Color("#B0B7BF"),
	weather.ThemeRain:         lipgloss.Color("#4A90E2"),
	weather.ThemeSnow:         lipgloss.Color("#E8F4FF"),
	weather.ThemeThunderstorm: lipgloss.Color("#9B59B6"),
}

func sceneStyle(theme weather.Theme) lipgloss.Style {
	c, ok := themeColors[theme]
	if !ok {
		c = colorMuted
	}
	return paneStyle.
		BorderForeground(c).
		Foreground(c)
}

// aqiBadge is the US AQI severity bucket used for the badge colour.
type aqiBadge struct {
	label string
	fg    lipgloss.Color
	bg    lipgloss.Color
}

func badgeFor(aqi weather.OptionalInt) aqiBadge {
	if !aqi.Available {
		return aqiBadge{label: "", fg: lipgloss.Color("#FFFFFF"), bg: lipgloss.Color("#3A3F44")}
	}
	switch v := aqi.Value; {
	case v <= 50:
		return aqiBadge{"Good", lipgloss.Color("#0B6623"), lipgloss.Color("#9BE3AE")}
	case v <= 100:
		return aqiBadge{"Moderate", lipgloss.Color("#5A3E00"), lipgloss.Color("#FFE08A")}
	case v <= 150:
		return aqiBadge{"Unhealthy for sensitive groups", lipgloss.Color("#6B2A00"), lipgloss.Color("#FFC876")}
	case v <= 200:
		return aqiBadge{"Unhealthy", lipgloss.Color("#5A0000"), lipgloss.Color("#FF9F82")}
	default:
		return aqiBadge{"Very unhealthy", lipgloss.Color("#FFFFFF"), lipgloss.Color("#D32F2F")}
	}
}

func (b aqiBadge) render(aqi weather.OptionalInt) string {
	s := lipgloss.NewStyle().
		Foreground(b.fg).
		Background(b.bg).
		Padding(0, 1).
		Render(aqi.String())
	if b.label == "" {
		return s
	}
	return s + " " + valueStyle.Render(b.label)
}
