package weather

import (
	"encoding/json"
	"strconv"
	"time"
)

// Theme is the coarse visual category derived from a provider weather code.
type Theme string

const (
	ThemeClear        Theme = "clear"
	ThemePartlyCloudy Theme = "partlyCloudy"
	ThemeFog          Theme = "fog"
	ThemeRain         Theme = "rain"
	ThemeSnow         Theme = "snow"
	ThemeThunderstorm Theme = "thunderstorm"
)

// Hourly series field names as the Open-Meteo APIs return them.
const (
	FieldTemperature       = "temperature_2m"
	FieldRelativeHumidity  = "relativehumidity_2m"
	FieldPrecipProbability = "precipitation_probability"
	FieldUSAQI             = "us_aqi"
	FieldPM25              = "pm2_5"
	FieldPM10              = "pm10"
)

// Location is a geocoded place produced by a Resolver.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
	CountryCode string  `json:"countryCode,omitempty"`
}

// CurrentObservation is the provider's "current weather" block.
// Time is kept as the provider's local ISO string; it is the alignment
// key into the hourly series.
type CurrentObservation struct {
	Time         string
	TemperatureC float64
	WindSpeedKmh float64
	WeatherCode  int
}

// HourlySeries is a parallel set of timestamps and numeric columns.
// A nil entry in a column means the provider had no value for that hour.
type HourlySeries struct {
	Times  []string
	Values map[string][]*float64
}

// Forecast is the Weather Fetcher's response. Current is nil when the
// provider omitted current conditions.
type Forecast struct {
	Current *CurrentObservation
	Hourly  HourlySeries
}

// OptionalInt is a rounded display value that may be explicitly unavailable.
type OptionalInt struct {
	Value     int
	Available bool
}

// Some returns an available OptionalInt.
func Some(v int) OptionalInt {
	return OptionalInt{Value: v, Available: true}
}

// Unavailable returns the explicit "no value" marker.
func Unavailable() OptionalInt {
	return OptionalInt{}
}

func (o OptionalInt) String() string {
	if !o.Available {
		return "--"
	}
	return strconv.Itoa(o.Value)
}

// MarshalJSON encodes unavailable values as null.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Available {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Unavailable()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// DisplayRecord is the only object handed to the rendering layer.
type DisplayRecord struct {
	Location      Location    `json:"location"`
	TemperatureC  int         `json:"temperatureC"`
	WindSpeedKmh  int         `json:"windSpeedKmh"`
	HumidityPct   OptionalInt `json:"humidityPct"`
	PrecipProbPct OptionalInt `json:"precipProbPct"`
	AQI           OptionalInt `json:"aqi"`
	Theme         Theme       `json:"theme"`
	ThemeLabel    string      `json:"themeLabel"`
	WeatherCode   int         `json:"weatherCode"`
	AsOf          string      `json:"asOf"`      // provider-local observation time
	FetchedAt     time.Time   `json:"fetchedAt"` // wall clock, UTC
}

// Description is the one-line summary shown under the temperature.
func (r DisplayRecord) Description() string {
	return r.ThemeLabel + " • code " + strconv.Itoa(r.WeatherCode)
}
