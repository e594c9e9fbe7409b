package main

import (
	"context"
	"fmt"

	"github.com/ttpr0/go-mapserver/geo"
	"github.com/ttpr0/go-mapserver/graph"
	"github.com/ttpr0/go-mapserver/metrics"
	"github.com/ttpr0/go-mapserver/parser"
	"github.com/ttpr0/go-mapserver/raster"
	. "github.com/ttpr0/go-mapserver/util"
	"golang.org/x/exp/slog"
)

// NewMapManager builds the graph from the osm source, or loads the stored
// snapshot if one exists and no rebuild is requested.
func NewMapManager(ctx context.Context, config Config) (*MapManager, error) {
	build := config.BuildGraph
	if !FileExists(config.Source.Snapshot) {
		build = true
	}

	var g *graph.Graph
	var err error
	if build {
		slog.Info("building graph", "osm", config.Source.OSM)
		g, err = parser.ParseGraph(ctx, config.Source.OSM, &parser.HighwayDecoder{})
		if err != nil {
			return nil, err
		}
		if err := graph.Store(g, config.Source.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to store graph: %w", err)
		}
	} else {
		slog.Info("loading graph", "snapshot", config.Source.Snapshot)
		g, err = graph.Load(config.Source.Snapshot)
		if err != nil {
			return nil, err
		}
	}
	metrics.SetGraphSize(g.NodeCount(), g.RemovedCount(), g.EdgeCount())

	root := config.Raster.Root
	rasterer := raster.New(geo.NewBound(root.ULLon, root.ULLat, root.LRLon, root.LRLat), config.Raster.TileSize, config.Raster.MaxDepth)

	return &MapManager{
		config:   config,
		graph:    g,
		rasterer: rasterer,
	}, nil
}

type MapManager struct {
	config   Config
	graph    graph.IGraph
	rasterer *raster.Rasterer
}

func (self *MapManager) GetGraph() graph.IGraph {
	return self.graph
}

func (self *MapManager) GetRasterer() *raster.Rasterer {
	return self.rasterer
}

func (self *MapManager) GetConfig() Config {
	return self.config
}
