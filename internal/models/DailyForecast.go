package models

// DailyForecast mirrors the `daily` block of an Open-Meteo forecast
// response: parallel arrays indexed by day.
type DailyForecast struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// Aligned reports whether the parallel arrays all have the same length as
// Time. The API is expected to return aligned arrays; a mismatch is treated
// as a malformed payload by the caller.
func (d *DailyForecast) Aligned() bool {
	n := len(d.Time)
	return len(d.Temperature2mMax) == n &&
		len(d.Temperature2mMin) == n &&
		len(d.PrecipitationSum) == n
}
