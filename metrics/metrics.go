package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mapserver_requests_total",
		Help: "Total number of requests per endpoint",
	}, []string{"path"})
	RequestFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mapserver_request_fail_total",
		Help: "Total number of requests answered with an error",
	}, []string{"path"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mapserver_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"path"})
	EmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mapserver_empty_results_total",
		Help: "Total number of searches without any match",
	}, []string{"path"})
	RasterDepth = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mapserver_raster_depth",
		Help:    "Depth of successful raster queries",
		Buckets: prometheus.LinearBuckets(0, 1, 8),
	})
	RasterTiles = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mapserver_raster_tiles",
		Help:    "Number of tiles per successful raster query",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
	})
	GraphNodes = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mapserver_graph_nodes",
		Help: "Number of graph nodes by state",
	}, []string{"state"})
	GraphEdges = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mapserver_graph_edges",
		Help: "Number of graph edges",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestFailTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(RasterDepth)
	prometheus.MustRegister(RasterTiles)
	prometheus.MustRegister(GraphNodes)
	prometheus.MustRegister(GraphEdges)
}

// SetGraphSize publishes the size of the loaded graph.
func SetGraphSize(live, removed, edges int) {
	GraphNodes.WithLabelValues("live").Set(float64(live))
	GraphNodes.WithLabelValues("removed").Set(float64(removed))
	GraphEdges.Set(float64(edges))
}

func Handler() http.Handler { return promhttp.Handler() }
