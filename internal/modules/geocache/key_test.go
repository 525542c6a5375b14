package geocache

import (
	"testing"

	"fareengine/internal/types"
)

func TestQuantizeKey(t *testing.T) {
	tests := []struct {
		name string
		p    types.Point
		want string
	}{
		{
			name: "rounds to three decimals",
			p:    types.Point{Lat: 47.1234567, Lng: -122.7654321},
			want: "47.123_-122.765",
		},
		{
			name: "pads short coordinates",
			p:    types.Point{Lat: 47.1, Lng: -122.5},
			want: "47.100_-122.500",
		},
		{
			name: "origin",
			p:    types.Point{},
			want: "0.000_0.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeKey(tt.p); got != tt.want {
				t.Errorf("QuantizeKey(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestQuantizeKey_NearbyPointsCollapse(t *testing.T) {
	a := QuantizeKey(types.Point{Lat: 47.12311, Lng: -122.76522})
	b := QuantizeKey(types.Point{Lat: 47.12329, Lng: -122.76538})
	if a != b {
		t.Errorf("nearby points produced different keys: %q vs %q", a, b)
	}
}

func TestQuantizeKey_DistantPointsDiffer(t *testing.T) {
	a := QuantizeKey(types.Point{Lat: 47.123, Lng: -122.765})
	b := QuantizeKey(types.Point{Lat: 47.125, Lng: -122.765})
	if a == b {
		t.Errorf("points beyond the grid cell produced the same key: %q", a)
	}
}
