package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/ttpr0/go-mapserver/graph"
	. "github.com/ttpr0/go-mapserver/util"
	"golang.org/x/exp/slog"
)

// ParseGraph reads an osm file (.pbf or xml) into a cleaned graph.
func ParseGraph(ctx context.Context, osm_file string, decoder IOSMDecoder) (*graph.Graph, error) {
	file, err := os.Open(osm_file)
	if err != nil {
		return nil, fmt.Errorf("open osm file: %w", err)
	}
	defer file.Close()

	var scanner osm.Scanner
	if strings.EqualFold(filepath.Ext(osm_file), ".pbf") {
		pbf := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
		pbf.SkipRelations = true
		scanner = pbf
	} else {
		scanner = osmxml.New(ctx, file)
	}
	defer scanner.Close()

	g := graph.New()
	stats, err := Parse(scanner, decoder, g)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", osm_file, err)
	}
	slog.Info("parsed osm file", "file", osm_file, "nodes", stats.Nodes, "named", stats.Named, "ways", stats.Ways, "edges", stats.Edges)
	if err := g.Clean(); err != nil {
		return nil, err
	}
	return g, nil
}

// Parse feeds all elements of the scanner into g in document order.
// Nodes have to precede the ways referencing them.
func Parse(scanner osm.Scanner, decoder IOSMDecoder, g *graph.Graph) (ParseStats, error) {
	stats := ParseStats{}
	c := 0
	for scanner.Scan() {
		c += 1
		if c%10000 == 0 {
			slog.Debug(fmt.Sprintf("%v", c))
		}
		switch object := scanner.Object().(type) {
		case *osm.Node:
			if err := _NodeHandler(object, decoder, g, &stats); err != nil {
				return stats, err
			}
		case *osm.Way:
			if err := _WayHandler(object, decoder, g, &stats); err != nil {
				return stats, err
			}
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

//*******************************************
// osm handler methods
//*******************************************

func _NodeHandler(object *osm.Node, decoder IOSMDecoder, g *graph.Graph, stats *ParseStats) error {
	id := object.FeatureID().Ref()
	if err := g.AddNode(id, object.Lon, object.Lat); err != nil {
		return err
	}
	stats.Nodes += 1
	name := decoder.DecodeName(Dict[string, string](object.TagMap()))
	if name == "" {
		return nil
	}
	stats.Named += 1
	return g.SetName(id, name)
}

func _WayHandler(object *osm.Way, decoder IOSMDecoder, g *graph.Graph, stats *ParseStats) error {
	tags := Dict[string, string](object.TagMap())
	if !decoder.IsValidHighway(tags) {
		return nil
	}
	stats.Ways += 1
	max_speed := decoder.DecodeMaxSpeed(tags)
	nodes := object.Nodes.NodeIDs()
	for i := 1; i < len(nodes); i++ {
		node_a := nodes[i-1].FeatureID().Ref()
		node_b := nodes[i].FeatureID().Ref()
		if err := g.AddEdge(int64(stats.Edges), max_speed, node_a, node_b); err != nil {
			return fmt.Errorf("way %d: %w", object.ID, err)
		}
		stats.Edges += 1
	}
	return nil
}
