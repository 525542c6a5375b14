// README: Placemark holds reverse-geocoded place attributes.
package types

// Placemark is the subset of reverse-geocoding output the engine classifies
// and stores alongside cached multipliers for audit.
type Placemark struct {
	Name               string   `json:"name,omitempty"`
	Thoroughfare       string   `json:"thoroughfare,omitempty"`
	SubLocality        string   `json:"sub_locality,omitempty"`
	Locality           string   `json:"locality,omitempty"`
	AdministrativeArea string   `json:"administrative_area,omitempty"`
	Country            string   `json:"country,omitempty"`
	PointsOfInterest   []string `json:"points_of_interest,omitempty"`
}
