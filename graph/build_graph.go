package graph

import (
	"fmt"

	"github.com/ttpr0/go-mapserver/geo"
	"github.com/ttpr0/go-mapserver/trie"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/slog"
)

//*******************************************
// build graph
//*******************************************

func New() *Graph {
	return &Graph{
		nodes:   orderedmap.New[int64, *Node](),
		removed: orderedmap.New[int64, *Node](),
		edges:   make(map[int64]Edge),
		names:   trie.New(),
	}
}

// AddNode inserts a node into the live set.
// Adding an existing id replaces its location and keeps its name and adjacency.
func (self *Graph) AddNode(id int64, lon, lat float64) error {
	if self.cleaned {
		return ErrFrozen
	}
	if node, ok := self.nodes.Get(id); ok {
		node.Loc = geo.NewCoord(lon, lat)
		return nil
	}
	self.order = append(self.order, id)
	self.nodes.Set(id, &Node{
		ID:       id,
		Loc:      geo.NewCoord(lon, lat),
		Adjacent: []int64{},
	})
	return nil
}

// SetName attaches a place name to a node.
func (self *Graph) SetName(id int64, name string) error {
	if self.cleaned {
		return ErrFrozen
	}
	node, ok := self.nodes.Get(id)
	if !ok {
		return fmt.Errorf("set name of node %d: %w", id, ErrUnknownNode)
	}
	node.Name = name
	return nil
}

// AddEdge connects node_a and node_b in both directions.
// Both endpoints have to be added before, otherwise nothing is recorded.
func (self *Graph) AddEdge(id int64, max_speed string, node_a, node_b int64) error {
	if self.cleaned {
		return ErrFrozen
	}
	a, ok := self.nodes.Get(node_a)
	if !ok {
		return fmt.Errorf("edge %d references node %d: %w", id, node_a, ErrUnknownNode)
	}
	b, ok := self.nodes.Get(node_b)
	if !ok {
		return fmt.Errorf("edge %d references node %d: %w", id, node_b, ErrUnknownNode)
	}
	a.Adjacent = append(a.Adjacent, node_b)
	b.Adjacent = append(b.Adjacent, node_a)
	self.edges[id] = Edge{
		ID:       id,
		MaxSpeed: max_speed,
		NodeA:    node_a,
		NodeB:    node_b,
	}
	return nil
}

// Clean moves every node without adjacent nodes out of the live set and
// indexes all named nodes for name searches. The graph is read-only afterwards.
func (self *Graph) Clean() error {
	if self.cleaned {
		return ErrFrozen
	}
	isolated := make([]int64, 0)
	for pair := self.nodes.Oldest(); pair != nil; pair = pair.Next() {
		node := pair.Value
		if node.Name != "" {
			self.names.Insert(node.Name, node.ID)
		}
		if len(node.Adjacent) == 0 {
			isolated = append(isolated, node.ID)
		}
	}
	for _, id := range isolated {
		node, _ := self.nodes.Delete(id)
		self.removed.Set(id, node)
	}
	self.cleaned = true
	slog.Info("cleaned graph", "nodes", self.nodes.Len(), "removed", self.removed.Len(), "edges", len(self.edges), "names", self.names.Len())
	return nil
}
