package graph

import (
	"errors"

	"github.com/ttpr0/go-mapserver/geo"
)

var (
	ErrUnknownNode = errors.New("unknown node")
	ErrFrozen      = errors.New("graph already cleaned")
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	ID       int64
	Loc      geo.Coord
	Name     string
	Adjacent []int64
}

func (self Node) Lon() float64 {
	return self.Loc.Lon()
}
func (self Node) Lat() float64 {
	return self.Loc.Lat()
}

type Edge struct {
	ID       int64  `json:"id"`
	MaxSpeed string `json:"max_speed"`
	NodeA    int64  `json:"node_a"`
	NodeB    int64  `json:"node_b"`
}

// Location is a named node as returned by exact name searches.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
	ID   int64   `json:"id"`
}
