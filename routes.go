package main

import (
	"net/http"

	"github.com/ttpr0/go-mapserver/metrics"
)

func NewServeMux(manager *MapManager) *http.ServeMux {
	app := http.NewServeMux()

	MapGet(app, "/raster", func(req RasterRequest) Result {
		return HandleRasterRequest(manager, req)
	})
	MapPost(app, "/raster", func(req RasterRequest) Result {
		return HandleRasterRequest(manager, req)
	})
	MapGet(app, "/search", func(req SearchRequest) Result {
		return HandleSearchRequest(manager, req)
	})
	MapGet(app, "/closest", func(req ClosestRequest) Result {
		return HandleClosestRequest(manager, req)
	})
	app.Handle("GET /metrics", metrics.Handler())

	return app
}
