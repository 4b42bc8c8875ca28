package shipments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	guadalajara = Coordinate{Lat: 20.6736, Lng: -103.3440}
	monterrey   = Coordinate{Lat: 25.6866, Lng: -100.3161}
)

func TestHaversineIdenticalPointsIsZero(t *testing.T) {
	require.InDelta(t, 0, Haversine(guadalajara, guadalajara), 1e-9)
}

func TestHaversineSymmetric(t *testing.T) {
	require.InDelta(t, Haversine(guadalajara, monterrey), Haversine(monterrey, guadalajara), 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Guadalajara to Monterrey is roughly 640 km as the crow flies.
	d := Haversine(guadalajara, monterrey)
	require.InDelta(t, 640, d, 15)
}

func TestEstimatorRoundsAndPrices(t *testing.T) {
	e := Estimator{Origin: guadalajara, BaseCost: 350, PerKm: 18}
	est := e.Estimate(guadalajara)
	require.Equal(t, 0, est.DistanceKm)
	require.InDelta(t, 350, est.Cost, 0.0001)

	require.InDelta(t, 350+18*18, e.CostForKm(18), 0.0001)
}
