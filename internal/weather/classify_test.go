package weather

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		code  int
		theme Theme
		label string
	}{
		{0, ThemeClear, "Clear"},
		{1, ThemePartlyCloudy, "Partly cloudy"},
		{2, ThemePartlyCloudy, "Partly cloudy"},
		{3, ThemePartlyCloudy, "Partly cloudy"},
		{45, ThemeFog, "Fog"},
		{48, ThemeFog, "Fog"},
		{51, ThemeRain, "Rain"},
		{61, ThemeRain, "Rain"},
		{67, ThemeRain, "Rain"},
		{80, ThemeRain, "Rain"},
		{82, ThemeRain, "Rain"},
		{71, ThemeSnow, "Snow"},
		{75, ThemeSnow, "Snow"},
		{77, ThemeSnow, "Snow"},
		{85, ThemeSnow, "Snow"},
		{86, ThemeSnow, "Snow"},
		{95, ThemeThunderstorm, "Thunderstorm"},
		{99, ThemeThunderstorm, "Thunderstorm"},
		{200, ThemePartlyCloudy, "Cloudy"},
		{100, ThemePartlyCloudy, "Cloudy"},
		{4, ThemePartlyCloudy, "Cloudy"},
		{50, ThemePartlyCloudy, "Cloudy"},
		{68, ThemePartlyCloudy, "Cloudy"},
		{84, ThemePartlyCloudy, "Cloudy"},
		{94, ThemePartlyCloudy, "Cloudy"},
		{-1, ThemePartlyCloudy, "Cloudy"},
	}

	for _, tt := range tests {
		got := Classify(tt.code)
		if got.Theme != tt.theme || got.Label != tt.label {
			t.Errorf("Classify(%d) = %s/%q, want %s/%q", tt.code, got.Theme, got.Label, tt.theme, tt.label)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	known := map[Theme]bool{
		ThemeClear:        true,
		ThemePartlyCloudy: true,
		ThemeFog:          true,
		ThemeRain:         true,
		ThemeSnow:         true,
		ThemeThunderstorm: true,
	}

	for code := 0; code <= 99; code++ {
		c := Classify(code)
		if !known[c.Theme] {
			t.Errorf("Classify(%d) theme %q is not a known theme", code, c.Theme)
		}
		if c.Label == "" {
			t.Errorf("Classify(%d) has empty label", code)
		}
	}
}
