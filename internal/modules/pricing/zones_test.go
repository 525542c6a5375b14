package pricing

import (
	"testing"

	"fareengine/internal/types"
)

var unitSquare = []types.Point{
	{Lat: 0, Lng: 0},
	{Lat: 0, Lng: 1},
	{Lat: 1, Lng: 1},
	{Lat: 1, Lng: 0},
}

func TestPointInPolygon(t *testing.T) {
	tests := []struct {
		name    string
		p       types.Point
		polygon []types.Point
		want    bool
	}{
		{"center of unit square", types.Point{Lat: 0.5, Lng: 0.5}, unitSquare, true},
		{"far outside", types.Point{Lat: 2, Lng: 2}, unitSquare, false},
		{"west of square", types.Point{Lat: 0.5, Lng: -0.5}, unitSquare, false},
		{"north of square", types.Point{Lat: 1.5, Lng: 0.5}, unitSquare, false},
		{"two-vertex polygon contains nothing", types.Point{Lat: 0.0, Lng: 0.5}, unitSquare[:2], false},
		{"empty polygon contains nothing", types.Point{Lat: 0.5, Lng: 0.5}, nil, false},
		{
			"concave polygon notch excluded",
			types.Point{Lat: 0.9, Lng: 0.5},
			[]types.Point{
				{Lat: 0, Lng: 0},
				{Lat: 0, Lng: 1},
				{Lat: 1, Lng: 1},
				{Lat: 0.5, Lng: 0.5},
				{Lat: 1, Lng: 0},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointInPolygon(tt.p, tt.polygon); got != tt.want {
				t.Errorf("pointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatchZones_NoMatch(t *testing.T) {
	zones := DefaultConfig().Zones
	outside := types.Point{Lat: 47.70, Lng: -122.40}

	m, matched := MatchZones(zones, outside, outside)
	if m != 1.0 {
		t.Errorf("multiplier = %v, want 1.0", m)
	}
	if len(matched) != 0 {
		t.Errorf("matched = %v, want none", matched)
	}
}

func TestMatchZones_PickupInside(t *testing.T) {
	zones := DefaultConfig().Zones
	downtown := types.Point{Lat: 47.607, Lng: -122.333}
	outside := types.Point{Lat: 47.70, Lng: -122.40}

	m, matched := MatchZones(zones, downtown, outside)
	if m != 1.3 {
		t.Errorf("multiplier = %v, want 1.3", m)
	}
	if len(matched) != 1 || matched[0] != "downtown core" {
		t.Errorf("matched = %v, want [downtown core]", matched)
	}
}

func TestMatchZones_DropoffInside(t *testing.T) {
	zones := DefaultConfig().Zones
	stadium := types.Point{Lat: 47.591, Lng: -122.332}
	outside := types.Point{Lat: 47.70, Lng: -122.40}

	m, matched := MatchZones(zones, outside, stadium)
	if m != 1.4 {
		t.Errorf("multiplier = %v, want 1.4", m)
	}
	if len(matched) != 1 || matched[0] != "stadium district" {
		t.Errorf("matched = %v, want [stadium district]", matched)
	}
}

func TestMatchZones_MaxOfMultipleMatches(t *testing.T) {
	zones := DefaultConfig().Zones
	downtown := types.Point{Lat: 47.607, Lng: -122.333}
	stadium := types.Point{Lat: 47.591, Lng: -122.332}

	m, matched := MatchZones(zones, downtown, stadium)
	if m != 1.4 {
		t.Errorf("multiplier = %v, want the max 1.4", m)
	}
	if len(matched) != 2 {
		t.Errorf("matched = %v, want both zones", matched)
	}
}
