package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"fareengine/internal/types"
)

// GeocodingService wraps the Google Maps geocoding and directions APIs behind
// the provider interfaces the pricing engine consumes.
type GeocodingService struct {
	client *maps.Client
}

// NewGeocodingService creates a GeocodingService with the given API key.
func NewGeocodingService(apiKey string) (*GeocodingService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodingService{client: client}, nil
}

// Geocode resolves a street address to a coordinate.
func (s *GeocodingService) Geocode(ctx context.Context, address string) (types.Point, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return types.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return types.Point{}, fmt.Errorf("geocode %q: no results", address)
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// ReverseGeocode resolves a coordinate to place attributes.
func (s *GeocodingService) ReverseGeocode(ctx context.Context, p types.Point) (types.Placemark, error) {
	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: p.Lat, Lng: p.Lng},
	})
	if err != nil {
		return types.Placemark{}, fmt.Errorf("reverse geocode (%f, %f): %w", p.Lat, p.Lng, err)
	}
	if len(results) == 0 {
		return types.Placemark{}, fmt.Errorf("reverse geocode (%f, %f): no results", p.Lat, p.Lng)
	}
	return toPlacemark(results[0]), nil
}

// Route returns the driving distance and duration between two coordinates.
func (s *GeocodingService) Route(ctx context.Context, from, to types.Point) (types.Route, error) {
	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", from.Lat, from.Lng),
		Destination: fmt.Sprintf("%f,%f", to.Lat, to.Lng),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return types.Route{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return types.Route{}, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return types.Route{
		DistanceMeters:  float64(leg.Distance.Meters),
		DurationSeconds: leg.Duration.Seconds(),
	}, nil
}

func toPlacemark(r maps.GeocodingResult) types.Placemark {
	pm := types.Placemark{PointsOfInterest: r.Types}
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "route":
				pm.Thoroughfare = c.LongName
			case "neighborhood", "sublocality", "sublocality_level_1":
				pm.SubLocality = c.LongName
			case "locality", "postal_town":
				pm.Locality = c.LongName
			case "administrative_area_level_1":
				pm.AdministrativeArea = c.ShortName
			case "country":
				pm.Country = c.LongName
			case "airport", "point_of_interest", "establishment", "premise":
				// Prefer the establishment name over the formatted address.
				pm.Name = c.LongName
			}
		}
	}
	if pm.Name == "" {
		pm.Name = r.FormattedAddress
	}
	return pm
}
