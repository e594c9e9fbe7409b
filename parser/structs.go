package parser

import (
	. "github.com/ttpr0/go-mapserver/util"
)

//*******************************************
// osm decoder
//*******************************************

// IOSMDecoder decides which ways become edges and extracts the
// attributes stored on nodes and edges.
type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	DecodeMaxSpeed(tags Dict[string, string]) string
	DecodeName(tags Dict[string, string]) string
}

// ParseStats summarizes one ingestion pass.
type ParseStats struct {
	Nodes int
	Named int
	Ways  int
	Edges int
}
