package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    Coord
		b    Coord
		want float64
	}{
		{name: "same point", a: NewCoord(-122.25, 37.87), b: NewCoord(-122.25, 37.87), want: 0},
		{name: "one degree latitude", a: NewCoord(0, 0), b: NewCoord(0, 1), want: EarthRadiusMiles * math.Pi / 180},
		{name: "one degree longitude on equator", a: NewCoord(0, 0), b: NewCoord(1, 0), want: EarthRadiusMiles * math.Pi / 180},
		{name: "antipodes", a: NewCoord(0, 0), b: NewCoord(180, 0), want: EarthRadiusMiles * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	points := []Coord{
		NewCoord(-122.2998046875, 37.892195547244356),
		NewCoord(-122.2119140625, 37.82280243352756),
		NewCoord(-122.2590, 37.8719),
		NewCoord(13.4, 52.5),
	}
	for _, p := range points {
		for _, q := range points {
			assert.InDelta(t, Distance(p, q), Distance(q, p), 1e-9)
		}
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name string
		a    Coord
		b    Coord
		want float64
	}{
		{name: "north", a: NewCoord(0, 0), b: NewCoord(0, 1), want: 0},
		{name: "east", a: NewCoord(0, 0), b: NewCoord(1, 0), want: 90},
		{name: "south", a: NewCoord(0, 1), b: NewCoord(0, 0), want: 180},
		{name: "west", a: NewCoord(1, 0), b: NewCoord(0, 0), want: -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Bearing(tt.a, tt.b), 1e-9)
		})
	}
}

func TestBound(t *testing.T) {
	b := NewBound(-122.30, 37.89, -122.21, 37.82)
	assert.True(t, IsValid(b))
	assert.Equal(t, NewCoord(-122.30, 37.89), UpperLeft(b))
	assert.Equal(t, NewCoord(-122.21, 37.82), LowerRight(b))

	assert.False(t, IsValid(NewBound(-122.21, 37.89, -122.30, 37.82)))
	assert.False(t, IsValid(NewBound(-122.30, 37.82, -122.21, 37.89)))
	assert.False(t, IsValid(NewBound(math.NaN(), 37.89, -122.21, 37.82)))

	assert.True(t, Overlaps(b, NewBound(-122.25, 37.85, -122.0, 37.0)))
	assert.False(t, Overlaps(b, NewBound(-122.21, 37.85, -122.0, 37.0)))
	assert.False(t, Overlaps(b, NewBound(-100, 40, -99, 39)))
}
