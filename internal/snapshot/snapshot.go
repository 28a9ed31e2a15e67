// Package snapshot holds the single immutable data record every instrument
// on the dashboard reads. It is loaded exactly once at startup and replaced
// wholesale, never patched.
package snapshot

import (
	"time"
)

// Weather conditions understood by the mascot view. Anything else is
// treated as "sunny".
const (
	ConditionSunny  = "sunny"
	ConditionRain   = "rain"
	ConditionCloudy = "cloudy"
	ConditionCold   = "cold"
)

// Metro crowd density bands.
const (
	DensityLow    = "low"
	DensityMedium = "medium"
	DensityHigh   = "high"
)

// Per-field defaults applied when a field is missing or malformed, and the
// values of the whole-snapshot fallback when the fetch fails outright.
const (
	DefaultAQI           = 160
	DefaultTemp          = 24.0
	DefaultCondition     = ConditionSunny
	DefaultSpeedKMH      = 25.0
	DefaultMetroDensity  = DensityMedium
	DefaultNewsSentiment = 0.7
	DefaultFlightCount   = 8
)

// DisplayTimezone is the fixed zone used for the "last updated" string.
const DisplayTimezone = "Asia/Kolkata"

type Weather struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
}

type Traffic struct {
	SpeedKMH float64 `json:"speed_kmh"`
}

// Snapshot is the one durable entity of the dashboard. Immutable after
// construction; engines receive it by pointer and never write back.
type Snapshot struct {
	AQI           int       `json:"aqi"`
	Weather       Weather   `json:"weather"`
	Traffic       Traffic   `json:"traffic"`
	MetroDensity  string    `json:"metro_density"`
	NewsSentiment float64   `json:"news_sentiment"`
	FlightCount   int       `json:"flight_count"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Fallback returns the fixed snapshot substituted when the primary fetch
// fails. The dashboard proceeds as if this were real data.
func Fallback() *Snapshot {
	return &Snapshot{
		AQI:           DefaultAQI,
		Weather:       Weather{Temp: DefaultTemp, Condition: DefaultCondition},
		Traffic:       Traffic{SpeedKMH: DefaultSpeedKMH},
		MetroDensity:  DefaultMetroDensity,
		NewsSentiment: DefaultNewsSentiment,
		FlightCount:   DefaultFlightCount,
	}
}

func validCondition(c string) bool {
	switch c {
	case ConditionSunny, ConditionRain, ConditionCloudy, ConditionCold:
		return true
	}
	return false
}

func validDensity(d string) bool {
	switch d {
	case DensityLow, DensityMedium, DensityHigh:
		return true
	}
	return false
}

// Normalize replaces missing or out-of-domain fields with their documented
// defaults. A zero LastUpdated is left as-is; the view renders no timestamp
// rather than erroring.
func (s *Snapshot) Normalize() {
	if s.AQI <= 0 {
		s.AQI = DefaultAQI
	}
	if s.Weather.Temp == 0 {
		s.Weather.Temp = DefaultTemp
	}
	if !validCondition(s.Weather.Condition) {
		s.Weather.Condition = DefaultCondition
	}
	if s.Traffic.SpeedKMH < 0 || s.Traffic.SpeedKMH == 0 {
		s.Traffic.SpeedKMH = DefaultSpeedKMH
	}
	if !validDensity(s.MetroDensity) {
		s.MetroDensity = DefaultMetroDensity
	}
	if s.NewsSentiment < 0 || s.NewsSentiment > 1 {
		s.NewsSentiment = DefaultNewsSentiment
	}
	if s.FlightCount < 0 {
		s.FlightCount = DefaultFlightCount
	}
}

// UpdatedDisplay formats LastUpdated in the fixed display timezone.
// Returns "" when the timestamp is absent.
func (s *Snapshot) UpdatedDisplay() string {
	if s.LastUpdated.IsZero() {
		return ""
	}
	loc, err := time.LoadLocation(DisplayTimezone)
	if err != nil {
		loc = time.UTC
	}
	return s.LastUpdated.In(loc).Format("02 Jan 2006, 3:04 PM IST")
}
