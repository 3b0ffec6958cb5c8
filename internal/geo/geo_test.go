// README: Distance function tests (identity, symmetry, known references).
package geo

import (
	"math"
	"testing"

	"mechmatch/internal/types"
)

func TestDistanceKmZero(t *testing.T) {
	pts := []types.Point{
		{Lat: 0, Lng: 0},
		{Lat: -1.2850, Lng: 36.8170},
		{Lat: 89.9, Lng: -179.9},
	}
	for _, p := range pts {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := types.Point{Lat: -1.2850, Lng: 36.8170}
	b := types.Point{Lat: -4.043477, Lng: 39.668206}
	if DistanceKm(a, b) != DistanceKm(b, a) {
		t.Errorf("DistanceKm not symmetric: %v vs %v", DistanceKm(a, b), DistanceKm(b, a))
	}
}

func TestDistanceKmKnownValues(t *testing.T) {
	cases := []struct {
		name string
		a, b types.Point
		want float64
	}{
		// one degree of longitude on the equator
		{"equator_degree", types.Point{}, types.Point{Lng: 1}, 111.19492664455873},
		// Nairobi CBD to Mombasa
		{"nairobi_mombasa", types.Point{Lat: -1.286389, Lng: 36.817223}, types.Point{Lat: -4.043477, Lng: 39.668206}, 440.737304608741},
		// the two seed garages relative to a customer in the CBD
		{"customer_to_joes", types.Point{Lat: -1.2850, Lng: 36.8170}, types.Point{Lat: -1.28333, Lng: 36.81667}, 0.18928451126629953},
		{"customer_to_quickfix", types.Point{Lat: -1.2850, Lng: 36.8170}, types.Point{Lat: -1.2900, Lng: 36.8200}, 0.6483289421553436},
	}
	for _, tc := range cases {
		got := DistanceKm(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: DistanceKm = %v, want %v", tc.name, got, tc.want)
		}
	}
}
