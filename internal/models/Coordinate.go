package models

// Coordinate is a (latitude, longitude) pair identifying a point on Earth's
// surface. Values are forwarded to the weather API as-is, without range
// validation.
type Coordinate struct {
	Latitude  float64 `json:"latitude" example:"13.7563"`
	Longitude float64 `json:"longitude" example:"100.5018"`
}
