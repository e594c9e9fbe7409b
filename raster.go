package main

import (
	"github.com/ttpr0/go-mapserver/metrics"
	"github.com/ttpr0/go-mapserver/raster"
	"golang.org/x/exp/slog"
)

//**********************************************************
// raster handler
//**********************************************************

// HandleRasterRequest answers with the tile grid covering the requested box.
// Degenerate queries are not an error, they are reported through query_success.
func HandleRasterRequest(manager *MapManager, req RasterRequest) Result {
	res := manager.GetRasterer().Rasterize(raster.Query{
		ULLon:  req.ULLon,
		ULLat:  req.ULLat,
		LRLon:  req.LRLon,
		LRLat:  req.LRLat,
		Width:  req.Width,
		Height: req.Height,
	})
	if !res.QuerySuccess {
		slog.Debug("raster query failed", "ullon", req.ULLon, "ullat", req.ULLat, "lrlon", req.LRLon, "lrlat", req.LRLat, "w", req.Width, "h", req.Height)
		return OK(res)
	}
	metrics.RasterDepth.Observe(float64(res.Depth))
	metrics.RasterTiles.Observe(float64(len(res.RenderGrid) * len(res.RenderGrid[0])))
	return OK(res)
}
