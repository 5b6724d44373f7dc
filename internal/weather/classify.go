package weather

const maxWMOCode = 99

// Classification is the result of mapping a weather code to a theme.
type Classification struct {
	Theme Theme  `json:"theme"`
	Label string `json:"label"`
}

// Classify maps a WMO weather code to a theme and label. It is total:
// every code not covered by an explicit range is "Cloudy". WMO codes stop
// at 99, so the thunderstorm range is 95-99 and anything above falls back.
func Classify(code int) Classification {
	switch {
	case code == 0:
		return Classification{ThemeClear, "Clear"}
	case code >= 1 && code <= 3:
		return Classification{ThemePartlyCloudy, "Partly cloudy"}
	case code >= 45 && code <= 48:
		return Classification{ThemeFog, "Fog"}
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return Classification{ThemeRain, "Rain"}
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return Classification{ThemeSnow, "Snow"}
	case code >= 95 && code <= maxWMOCode:
		return Classification{ThemeThunderstorm, "Thunderstorm"}
	default:
		return Classification{ThemePartlyCloudy, "Cloudy"}
	}
}
