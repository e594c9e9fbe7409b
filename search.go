package main

import (
	"github.com/ttpr0/go-mapserver/geo"
	"github.com/ttpr0/go-mapserver/metrics"
)

//**********************************************************
// search handlers
//**********************************************************

func HandleSearchRequest(manager *MapManager, req SearchRequest) Result {
	g := manager.GetGraph()
	if req.Full {
		locations := g.Locations(req.Term)
		if len(locations) == 0 {
			metrics.EmptyResultsTotal.WithLabelValues("/search").Inc()
		}
		return OK(locations)
	}
	names := g.LocationsByPrefix(req.Term)
	if len(names) == 0 {
		metrics.EmptyResultsTotal.WithLabelValues("/search").Inc()
	}
	return OK(names)
}

func HandleClosestRequest(manager *MapManager, req ClosestRequest) Result {
	g := manager.GetGraph()
	point := geo.NewCoord(req.Lon, req.Lat)
	id, ok := g.GetClosestNode(point)
	if !ok {
		return BadRequest("graph does not contain any nodes")
	}
	node, _ := g.GetNode(id)
	return OK(ClosestResponse{
		ID:       id,
		Lon:      node.Lon(),
		Lat:      node.Lat(),
		Distance: geo.Distance(point, node.Loc),
	})
}
