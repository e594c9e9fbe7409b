package raster

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-spatial/geom/slippy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lonSpan = ROOT_LRLON - ROOT_ULLON
	latSpan = ROOT_ULLAT - ROOT_LRLAT
)

// box given as fractions of the root box, measured from the upper left corner
func fractionQuery(left, top, right, bottom, w, h float64) Query {
	return Query{
		ULLon:  ROOT_ULLON + left*lonSpan,
		ULLat:  ROOT_ULLAT - top*latSpan,
		LRLon:  ROOT_ULLON + right*lonSpan,
		LRLat:  ROOT_ULLAT - bottom*latSpan,
		Width:  w,
		Height: h,
	}
}

func TestRasterizeRoot(t *testing.T) {
	r := Default()
	res := r.Rasterize(Query{ULLon: ROOT_ULLON, ULLat: ROOT_ULLAT, LRLon: ROOT_LRLON, LRLat: ROOT_LRLAT, Width: 256, Height: 256})

	require.True(t, res.QuerySuccess)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, [][]string{{"d0_x0_y0.png"}}, res.RenderGrid)
	assert.Equal(t, [][]slippy.Tile{{{Z: 0, X: 0, Y: 0}}}, res.Tiles)
	assert.Equal(t, ROOT_ULLON, res.RasterULLon)
	assert.Equal(t, ROOT_ULLAT, res.RasterULLat)
	assert.Equal(t, ROOT_LRLON, res.RasterLRLon)
	assert.Equal(t, ROOT_LRLAT, res.RasterLRLat)
}

func TestRasterizeRootWiderViewport(t *testing.T) {
	r := Default()
	res := r.Rasterize(Query{ULLon: ROOT_ULLON, ULLat: ROOT_ULLAT, LRLon: ROOT_LRLON, LRLat: ROOT_LRLAT, Width: 305, Height: 305})

	require.True(t, res.QuerySuccess)
	assert.Equal(t, 1, res.Depth)
	assert.Equal(t, [][]string{
		{"d1_x0_y0.png", "d1_x1_y0.png"},
		{"d1_x0_y1.png", "d1_x1_y1.png"},
	}, res.RenderGrid)
}

func TestRasterizeInterior(t *testing.T) {
	r := Default()
	res := r.Rasterize(fractionQuery(0.3, 0.1, 0.45, 0.6, 100, 100))

	require.True(t, res.QuerySuccess)
	assert.Equal(t, 2, res.Depth)
	assert.Equal(t, [][]string{
		{"d2_x1_y0.png"},
		{"d2_x1_y1.png"},
		{"d2_x1_y2.png"},
	}, res.RenderGrid)
	assert.InDelta(t, ROOT_ULLON+0.25*lonSpan, res.RasterULLon, 1e-12)
	assert.InDelta(t, ROOT_ULLON+0.5*lonSpan, res.RasterLRLon, 1e-12)
	assert.InDelta(t, ROOT_ULLAT, res.RasterULLat, 1e-12)
	assert.InDelta(t, ROOT_ULLAT-0.75*latSpan, res.RasterLRLat, 1e-12)
}

func TestRasterizeMaxDepth(t *testing.T) {
	r := Default()
	res := r.Rasterize(fractionQuery(0.501, 0.501, 0.502, 0.502, 4000, 4000))

	require.True(t, res.QuerySuccess)
	assert.Equal(t, MAX_DEPTH, res.Depth)
	require.Len(t, res.RenderGrid, 1)
	assert.Equal(t, []string{"d7_x64_y64.png"}, res.RenderGrid[0])
}

func TestRasterizeProperties(t *testing.T) {
	r := Default()
	queries := []Query{
		fractionQuery(0, 0, 0.999, 0.999, 1000, 800),
		fractionQuery(0.1, 0.2, 0.3, 0.4, 512, 512),
		fractionQuery(0.01, 0.01, 0.99, 0.02, 1200, 100),
		fractionQuery(0.7, 0.33, 0.71, 0.34, 256, 256),
		fractionQuery(0.123, 0.456, 0.789, 0.987, 50, 50),
		fractionQuery(0.4, 0.4, 0.400001, 0.400001, 10, 10),
	}
	for i, q := range queries {
		t.Run(fmt.Sprintf("query %d", i), func(t *testing.T) {
			res := r.Rasterize(q)
			require.True(t, res.QuerySuccess)

			assert.GreaterOrEqual(t, res.Depth, 0)
			assert.LessOrEqual(t, res.Depth, MAX_DEPTH)

			assert.LessOrEqual(t, res.RasterULLon, q.ULLon)
			assert.GreaterOrEqual(t, res.RasterULLat, q.ULLat)
			assert.GreaterOrEqual(t, res.RasterLRLon, q.LRLon)
			assert.LessOrEqual(t, res.RasterLRLat, q.LRLat)

			require.NotEmpty(t, res.RenderGrid)
			require.Len(t, res.Tiles, len(res.RenderGrid))
			cols := len(res.RenderGrid[0])
			first := res.Tiles[0][0]
			for ri, row := range res.RenderGrid {
				require.Len(t, row, cols)
				for c, name := range row {
					tile := res.Tiles[ri][c]
					assert.Equal(t, uint(res.Depth), uint(tile.Z))
					assert.Equal(t, first.X+uint(c), tile.X)
					assert.Equal(t, first.Y+uint(ri), tile.Y)
					assert.Equal(t, TileName(tile), name)
				}
			}
		})
	}
}

func TestRasterizePartiallyOutside(t *testing.T) {
	r := Default()
	res := r.Rasterize(fractionQuery(-0.5, -0.5, 0.2, 0.2, 256, 256))

	require.True(t, res.QuerySuccess)
	assert.Equal(t, ROOT_ULLON, res.RasterULLon)
	assert.Equal(t, ROOT_ULLAT, res.RasterULLat)
	assert.Equal(t, "d"+fmt.Sprint(res.Depth)+"_x0_y0.png", res.RenderGrid[0][0])
}

func TestRasterizeDegenerate(t *testing.T) {
	r := Default()
	valid := fractionQuery(0.1, 0.1, 0.9, 0.9, 256, 256)

	tests := []struct {
		name  string
		query func(Query) Query
	}{
		{name: "zero width", query: func(q Query) Query { q.Width = 0; return q }},
		{name: "negative height", query: func(q Query) Query { q.Height = -10; return q }},
		{name: "nan width", query: func(q Query) Query { q.Width = math.NaN(); return q }},
		{name: "inverted lon", query: func(q Query) Query { q.ULLon, q.LRLon = q.LRLon, q.ULLon; return q }},
		{name: "inverted lat", query: func(q Query) Query { q.ULLat, q.LRLat = q.LRLat, q.ULLat; return q }},
		{name: "nan corner", query: func(q Query) Query { q.ULLat = math.NaN(); return q }},
		{name: "disjoint", query: func(q Query) Query { return fractionQuery(2, 2, 3, 3, 256, 256) }},
		{name: "touching edge", query: func(q Query) Query { return fractionQuery(1, 0, 2, 1, 256, 256) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Rasterize(tt.query(valid))
			assert.False(t, res.QuerySuccess)
			assert.Empty(t, res.RenderGrid)
			assert.NotNil(t, res.RenderGrid)
		})
	}
}

func TestDepth(t *testing.T) {
	r := Default()
	tile_dpp := lonSpan / TILE_SIZE

	assert.Equal(t, 0, r.Depth(tile_dpp))
	assert.Equal(t, 0, r.Depth(tile_dpp*10))
	assert.Equal(t, 1, r.Depth(tile_dpp*0.9))
	assert.Equal(t, 1, r.Depth(tile_dpp/2))
	assert.Equal(t, 3, r.Depth(tile_dpp/6))
	assert.Equal(t, MAX_DEPTH, r.Depth(tile_dpp/1000))
	assert.Equal(t, MAX_DEPTH, r.Depth(0))

	prev := 0
	for dpp := tile_dpp * 2; dpp > tile_dpp/512; dpp /= 1.3 {
		d := r.Depth(dpp)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestTileName(t *testing.T) {
	assert.Equal(t, "d3_x5_y1.png", TileName(*slippy.NewTile(3, 5, 1)))
	assert.Equal(t, "d0_x0_y0.png", TileName(slippy.Tile{}))
}
