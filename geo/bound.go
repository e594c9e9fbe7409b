package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// NewBound builds a bound from an upper-left and a lower-right corner.
// Inverted boxes are kept as given so callers can detect them with IsValid.
func NewBound(ullon, ullat, lrlon, lrlat float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{ullon, lrlat},
		Max: orb.Point{lrlon, ullat},
	}
}

func UpperLeft(b orb.Bound) Coord {
	return Coord{b.Min.Lon(), b.Max.Lat()}
}

func LowerRight(b orb.Bound) Coord {
	return Coord{b.Max.Lon(), b.Min.Lat()}
}

// IsValid reports whether the bound has finite corners and a positive area.
func IsValid(b orb.Bound) bool {
	for _, v := range [4]float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Min[0] < b.Max[0] && b.Min[1] < b.Max[1]
}

// Overlaps reports whether a and b share an area larger than zero.
func Overlaps(a, b orb.Bound) bool {
	return a.Min[0] < b.Max[0] && b.Min[0] < a.Max[0] &&
		a.Min[1] < b.Max[1] && b.Min[1] < a.Max[1]
}
