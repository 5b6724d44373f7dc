package weather

import "math"

// Normalize aligns the current observation with both hourly series and
// produces a DisplayRecord. FetchedAt is left for the caller to stamp.
//
// Humidity and precipitation are read only on an exact timestamp match.
// AQI falls back to the first hour of the air series when there is no match.
func Normalize(loc Location, current CurrentObservation, weatherSeries HourlySeries, airSeries *HourlySeries) DisplayRecord {
	rec := DisplayRecord{
		Location:      loc,
		TemperatureC:  round(current.TemperatureC),
		WindSpeedKmh:  round(current.WindSpeedKmh),
		HumidityPct:   Unavailable(),
		PrecipProbPct: Unavailable(),
		AQI:           Unavailable(),
		WeatherCode:   current.WeatherCode,
		AsOf:          current.Time,
	}

	if i := indexOf(weatherSeries.Times, current.Time); i >= 0 {
		rec.HumidityPct = weatherSeries.at(FieldRelativeHumidity, i)
		rec.PrecipProbPct = weatherSeries.at(FieldPrecipProbability, i)
	}

	if airSeries != nil {
		if j := indexOf(airSeries.Times, current.Time); j >= 0 {
			rec.AQI = airSeries.at(FieldUSAQI, j)
		} else if len(airSeries.Values[FieldUSAQI]) > 0 {
			rec.AQI = airSeries.at(FieldUSAQI, 0)
		}
	}

	c := Classify(current.WeatherCode)
	rec.Theme = c.Theme
	rec.ThemeLabel = c.Label
	return rec
}

// at reads a rounded value from column field at index i.
func (s HourlySeries) at(field string, i int) OptionalInt {
	col, ok := s.Values[field]
	if !ok || i < 0 || i >= len(col) || col[i] == nil {
		return Unavailable()
	}
	return Some(round(*col[i]))
}

// indexOf returns the first exact match of ts in times, or -1.
func indexOf(times []string, ts string) int {
	for i, t := range times {
		if t == ts {
			return i
		}
	}
	return -1
}

// round is half away from zero.
func round(v float64) int {
	return int(math.Round(v))
}
