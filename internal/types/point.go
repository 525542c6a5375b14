// README: Common geographic value objects used across modules.
package types

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route is the drivable path summary between two points.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
}
