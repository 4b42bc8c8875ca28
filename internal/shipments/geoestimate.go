package shipments

import "math"

const earthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Haversine returns the great-circle distance between a and b in
// kilometres.
func Haversine(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Estimator derives display distance and delivery cost from a destination
// coordinate. Base and per-kilometre rates are fixed at construction.
type Estimator struct {
	Origin   Coordinate
	BaseCost float64
	PerKm    float64
}

// DistanceKm returns the haversine distance from the origin, rounded to
// the nearest integer for display and persistence.
func (e Estimator) DistanceKm(dest Coordinate) int {
	return int(math.Round(Haversine(e.Origin, dest)))
}

// CostForKm prices a delivery run of km kilometres.
func (e Estimator) CostForKm(km int) float64 {
	return e.BaseCost + float64(km)*e.PerKm
}

// Estimate combines distance and cost for a destination.
func (e Estimator) Estimate(dest Coordinate) Estimate {
	km := e.DistanceKm(dest)
	return Estimate{DistanceKm: km, Cost: e.CostForKm(km)}
}
