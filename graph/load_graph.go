package graph

import (
	"fmt"
	"sort"

	. "github.com/ttpr0/go-mapserver/util"
)

//*******************************************
// graph io
//*******************************************

type _SnapshotNode struct {
	ID       int64   `json:"id"`
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	Name     string  `json:"name,omitempty"`
	Adjacent []int64 `json:"adj"`
	Removed  bool    `json:"removed,omitempty"`
}

// nodes are kept in the order they were added, live and removed together
type _Snapshot struct {
	Nodes []_SnapshotNode `json:"nodes"`
	Edges []Edge          `json:"edges"`
}

// Store writes a cleaned graph to a json file.
func Store(g *Graph, file string) error {
	if !g.cleaned {
		return fmt.Errorf("store graph: graph has to be cleaned first")
	}
	snapshot := _Snapshot{
		Nodes: make([]_SnapshotNode, 0, len(g.order)),
		Edges: make([]Edge, 0, len(g.edges)),
	}
	for _, id := range g.order {
		n, ok := g.nodes.Get(id)
		removed := false
		if !ok {
			n, removed = g.removed.Get(id)
		}
		if n == nil {
			return fmt.Errorf("store graph: node %d: %w", id, ErrUnknownNode)
		}
		snapshot.Nodes = append(snapshot.Nodes, _SnapshotNode{
			ID:       n.ID,
			Lon:      n.Loc.Lon(),
			Lat:      n.Loc.Lat(),
			Name:     n.Name,
			Adjacent: n.Adjacent,
			Removed:  removed,
		})
	}
	for _, edge := range g.edges {
		snapshot.Edges = append(snapshot.Edges, edge)
	}
	sort.Slice(snapshot.Edges, func(i, j int) bool {
		return snapshot.Edges[i].ID < snapshot.Edges[j].ID
	})
	return WriteJSONToFile(snapshot, file)
}

// Load reads a graph written by Store. The returned graph is cleaned and
// answers every query in the same order as the graph that was stored.
func Load(file string) (*Graph, error) {
	snapshot, err := ReadJSONFromFile[_Snapshot](file)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	g := New()
	for _, n := range snapshot.Nodes {
		if err := g.AddNode(n.ID, n.Lon, n.Lat); err != nil {
			return nil, fmt.Errorf("load graph: %w", err)
		}
		if n.Name == "" {
			continue
		}
		if err := g.SetName(n.ID, n.Name); err != nil {
			return nil, fmt.Errorf("load graph: %w", err)
		}
	}
	for _, n := range snapshot.Nodes {
		node, _ := g.nodes.Get(n.ID)
		for _, other := range n.Adjacent {
			if _, ok := g.nodes.Get(other); !ok {
				return nil, fmt.Errorf("load graph: node %d adjacent to %d: %w", n.ID, other, ErrUnknownNode)
			}
			node.Adjacent = append(node.Adjacent, other)
		}
	}
	for _, edge := range snapshot.Edges {
		_, ok_a := g.nodes.Get(edge.NodeA)
		_, ok_b := g.nodes.Get(edge.NodeB)
		if !ok_a || !ok_b {
			return nil, fmt.Errorf("load graph: edge %d: %w", edge.ID, ErrUnknownNode)
		}
		g.edges[edge.ID] = edge
	}
	if err := g.Clean(); err != nil {
		return nil, err
	}
	for _, n := range snapshot.Nodes {
		if _, removed := g.removed.Get(n.ID); removed != n.Removed {
			return nil, fmt.Errorf("load graph: node %d does not match its stored state", n.ID)
		}
	}
	return g, nil
}
