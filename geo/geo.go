package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMiles is the sphere radius used for all great-circle computations.
const EarthRadiusMiles = 3963

// Coord is a [lon, lat] pair in degrees.
type Coord = orb.Point

func NewCoord(lon, lat float64) Coord {
	return Coord{lon, lat}
}

//*******************************************
// great circle
//*******************************************

// Distance returns the haversine distance between a and b in miles.
func Distance(a, b Coord) float64 {
	phi1 := _Radians(a.Lat())
	phi2 := _Radians(b.Lat())
	d_phi := _Radians(b.Lat() - a.Lat())
	d_lambda := _Radians(b.Lon() - a.Lon())

	h := math.Sin(d_phi/2)*math.Sin(d_phi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(d_lambda/2)*math.Sin(d_lambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMiles * c
}

// Bearing returns the initial bearing from a towards b in degrees within (-180, 180].
func Bearing(a, b Coord) float64 {
	phi1 := _Radians(a.Lat())
	phi2 := _Radians(b.Lat())
	d_lambda := _Radians(b.Lon() - a.Lon())

	y := math.Sin(d_lambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(d_lambda)
	return _Degrees(math.Atan2(y, x))
}

func _Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func _Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
