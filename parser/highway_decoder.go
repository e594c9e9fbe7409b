package parser

import (
	. "github.com/ttpr0/go-mapserver/util"
)

type HighwayDecoder struct {
}

var highway_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

func (self *HighwayDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !highway_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	return true
}
func (self *HighwayDecoder) DecodeMaxSpeed(tags Dict[string, string]) string {
	return tags.Get("maxspeed")
}
func (self *HighwayDecoder) DecodeName(tags Dict[string, string]) string {
	return tags.Get("name")
}
