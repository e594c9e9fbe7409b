package graph

import (
	"math"

	"github.com/ttpr0/go-mapserver/geo"
	"github.com/ttpr0/go-mapserver/trie"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

//*******************************************
// graph interface
//******************************************

// IGraph is the read-only view used by the query surface.
// All methods are safe for concurrent use once the graph is cleaned.
type IGraph interface {
	NodeCount() int
	EdgeCount() int
	RemovedCount() int
	Nodes() []int64
	GetNode(node int64) (Node, bool)
	Neighbors(node int64) []int64
	Distance(v, w int64) (float64, bool)
	Bearing(v, w int64) (float64, bool)
	GetClosestNode(point geo.Coord) (int64, bool)
	LocationsByPrefix(prefix string) []string
	Locations(name string) []Location
}

//*******************************************
// graph
//******************************************

// Graph stores nodes by id. Nodes reference each other only through ids.
type Graph struct {
	nodes   *orderedmap.OrderedMap[int64, *Node]
	removed *orderedmap.OrderedMap[int64, *Node]
	order   []int64
	edges   map[int64]Edge
	names   *trie.Trie
	cleaned bool
}

func (self *Graph) NodeCount() int {
	return self.nodes.Len()
}
func (self *Graph) EdgeCount() int {
	return len(self.edges)
}
func (self *Graph) RemovedCount() int {
	return self.removed.Len()
}
func (self *Graph) IsCleaned() bool {
	return self.cleaned
}

// Nodes returns the live node ids in insertion order.
func (self *Graph) Nodes() []int64 {
	ids := make([]int64, 0, self.nodes.Len())
	for pair := self.nodes.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

func (self *Graph) GetNode(node int64) (Node, bool) {
	n, ok := self.nodes.Get(node)
	if !ok {
		return Node{}, false
	}
	return _CopyNode(n), true
}

func (self *Graph) GetEdge(edge int64) (Edge, bool) {
	e, ok := self.edges[edge]
	return e, ok
}

func (self *Graph) Lon(node int64) (float64, bool) {
	n, ok := self.nodes.Get(node)
	if !ok {
		return 0, false
	}
	return n.Loc.Lon(), true
}

func (self *Graph) Lat(node int64) (float64, bool) {
	n, ok := self.nodes.Get(node)
	if !ok {
		return 0, false
	}
	return n.Loc.Lat(), true
}

// Neighbors returns the ids adjacent to node, one entry per incident edge.
// Unknown and removed nodes have no neighbors.
func (self *Graph) Neighbors(node int64) []int64 {
	n, ok := self.nodes.Get(node)
	if !ok {
		return []int64{}
	}
	adj := make([]int64, len(n.Adjacent))
	copy(adj, n.Adjacent)
	return adj
}

// Distance returns the great-circle distance between two live nodes in miles.
func (self *Graph) Distance(v, w int64) (float64, bool) {
	a, ok_a := self.nodes.Get(v)
	b, ok_b := self.nodes.Get(w)
	if !ok_a || !ok_b {
		return 0, false
	}
	return geo.Distance(a.Loc, b.Loc), true
}

// Bearing returns the initial bearing from v to w in degrees.
func (self *Graph) Bearing(v, w int64) (float64, bool) {
	a, ok_a := self.nodes.Get(v)
	b, ok_b := self.nodes.Get(w)
	if !ok_a || !ok_b {
		return 0, false
	}
	return geo.Bearing(a.Loc, b.Loc), true
}

// GetClosestNode scans all live nodes and returns the nearest one.
// Ties resolve to the node added first. False if there are no live nodes.
func (self *Graph) GetClosestNode(point geo.Coord) (int64, bool) {
	closest := int64(-1)
	min_dist := math.Inf(1)
	found := false
	for pair := self.nodes.Oldest(); pair != nil; pair = pair.Next() {
		dist := geo.Distance(point, pair.Value.Loc)
		if !found || dist < min_dist {
			closest = pair.Key
			min_dist = dist
			found = true
		}
	}
	return closest, found
}

func (self *Graph) Closest(lon, lat float64) (int64, bool) {
	return self.GetClosestNode(geo.NewCoord(lon, lat))
}

//*******************************************
// name search
//******************************************

// LocationsByPrefix returns the names of all indexed nodes starting with prefix.
func (self *Graph) LocationsByPrefix(prefix string) []string {
	return self.names.KeysWithPrefix(prefix)
}

// Locations returns all nodes whose cleaned name equals the cleaned name,
// including nodes removed during cleaning.
func (self *Graph) Locations(name string) []Location {
	entries := self.names.Lookup(name)
	locations := make([]Location, 0, len(entries))
	for _, entry := range entries {
		node, ok := self.nodes.Get(entry.ID)
		if !ok {
			node, ok = self.removed.Get(entry.ID)
		}
		if !ok {
			continue
		}
		locations = append(locations, Location{
			Lat:  node.Loc.Lat(),
			Lon:  node.Loc.Lon(),
			Name: entry.Name,
			ID:   entry.ID,
		})
	}
	return locations
}

func _CopyNode(n *Node) Node {
	node := *n
	node.Adjacent = make([]int64, len(n.Adjacent))
	copy(node.Adjacent, n.Adjacent)
	return node
}
