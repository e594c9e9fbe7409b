// Package raster selects the pre-rendered tiles covering a query box.
package raster

import (
	"fmt"
	"math"

	"github.com/go-spatial/geom/slippy"
	"github.com/paulmach/orb"
	"github.com/ttpr0/go-mapserver/geo"
)

const (
	ROOT_ULLON = -122.2998046875
	ROOT_ULLAT = 37.892195547244356
	ROOT_LRLON = -122.2119140625
	ROOT_LRLAT = 37.82280243352756
	TILE_SIZE  = 256
	MAX_DEPTH  = 7
)

//**********************************************************
// query and result
//**********************************************************

type Query struct {
	ULLon  float64 `json:"ullon"`
	ULLat  float64 `json:"ullat"`
	LRLon  float64 `json:"lrlon"`
	LRLat  float64 `json:"lrlat"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

func (self Query) Bound() orb.Bound {
	return geo.NewBound(self.ULLon, self.ULLat, self.LRLon, self.LRLat)
}

type Result struct {
	RenderGrid   [][]string `json:"render_grid"`
	RasterULLon  float64    `json:"raster_ul_lon"`
	RasterULLat  float64    `json:"raster_ul_lat"`
	RasterLRLon  float64    `json:"raster_lr_lon"`
	RasterLRLat  float64    `json:"raster_lr_lat"`
	Depth        int        `json:"depth"`
	QuerySuccess bool       `json:"query_success"`

	Tiles [][]slippy.Tile `json:"-"`
}

func _Failed() Result {
	return Result{
		RenderGrid:   [][]string{},
		QuerySuccess: false,
	}
}

// TileName formats a tile as "d<depth>_x<col>_y<row>.png".
func TileName(tile slippy.Tile) string {
	return fmt.Sprintf("d%d_x%d_y%d.png", tile.Z, tile.X, tile.Y)
}

//**********************************************************
// rasterer
//**********************************************************

// Rasterer holds the tile pyramid layout. It is immutable and safe for concurrent use.
type Rasterer struct {
	root      orb.Bound
	tile_size int
	max_depth int
}

func New(root orb.Bound, tile_size int, max_depth int) *Rasterer {
	return &Rasterer{
		root:      root,
		tile_size: tile_size,
		max_depth: max_depth,
	}
}

func Default() *Rasterer {
	return New(geo.NewBound(ROOT_ULLON, ROOT_ULLAT, ROOT_LRLON, ROOT_LRLAT), TILE_SIZE, MAX_DEPTH)
}

func (self *Rasterer) Root() orb.Bound {
	return self.root
}
func (self *Rasterer) TileSize() int {
	return self.tile_size
}
func (self *Rasterer) MaxDepth() int {
	return self.max_depth
}

// Depth returns the coarsest depth whose longitudinal distance per pixel
// does not exceed lon_dpp, or the maximum depth if none does.
func (self *Rasterer) Depth(lon_dpp float64) int {
	span := self.root.Max.Lon() - self.root.Min.Lon()
	for d := 0; d <= self.max_depth; d++ {
		if span/math.Pow(2, float64(d))/float64(self.tile_size) <= lon_dpp {
			return d
		}
	}
	return self.max_depth
}

// Rasterize selects the grid of tiles at the chosen depth intersecting the query box.
// Degenerate queries yield QuerySuccess == false and an empty grid.
func (self *Rasterer) Rasterize(q Query) Result {
	if !_IsPositive(q.Width) || !_IsPositive(q.Height) {
		return _Failed()
	}
	bound := q.Bound()
	if !geo.IsValid(bound) || !geo.Overlaps(bound, self.root) {
		return _Failed()
	}

	lon_dpp := (q.LRLon - q.ULLon) / q.Width
	depth := self.Depth(lon_dpp)

	root_ul := geo.UpperLeft(self.root)
	root_lr := geo.LowerRight(self.root)
	k := 1 << depth
	lon_edge := func(i int) float64 {
		return _Edge(root_ul.Lon(), root_lr.Lon(), i, k)
	}
	lat_edge := func(j int) float64 {
		return _Edge(root_ul.Lat(), root_lr.Lat(), j, k)
	}

	min_x, max_x := -1, -1
	for i := 0; i < k; i++ {
		if lon_edge(i+1) >= q.ULLon && lon_edge(i) <= q.LRLon {
			if min_x < 0 {
				min_x = i
			}
			max_x = i
		}
	}
	// rows count downwards from the upper edge
	min_y, max_y := -1, -1
	for j := 0; j < k; j++ {
		if lat_edge(j+1) <= q.ULLat && lat_edge(j) >= q.LRLat {
			if min_y < 0 {
				min_y = j
			}
			max_y = j
		}
	}
	if min_x < 0 || min_y < 0 {
		return _Failed()
	}

	rows := max_y - min_y + 1
	cols := max_x - min_x + 1
	tiles := make([][]slippy.Tile, rows)
	grid := make([][]string, rows)
	for r := 0; r < rows; r++ {
		tiles[r] = make([]slippy.Tile, cols)
		grid[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			tile := slippy.NewTile(uint(depth), uint(min_x+c), uint(min_y+r))
			tiles[r][c] = *tile
			grid[r][c] = TileName(*tile)
		}
	}

	return Result{
		RenderGrid:   grid,
		RasterULLon:  lon_edge(min_x),
		RasterULLat:  lat_edge(min_y),
		RasterLRLon:  lon_edge(max_x + 1),
		RasterLRLat:  lat_edge(max_y + 1),
		Depth:        depth,
		QuerySuccess: true,
		Tiles:        tiles,
	}
}

// i-th of k equal steps from start to end, exact at both ends
func _Edge(start, end float64, i, k int) float64 {
	if i >= k {
		return end
	}
	return start + (end-start)*float64(i)/float64(k)
}

func _IsPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
