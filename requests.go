package main

//**********************************************************
// requests
//**********************************************************

type RasterRequest struct {
	ULLon  float64 `json:"ullon"`
	ULLat  float64 `json:"ullat"`
	LRLon  float64 `json:"lrlon"`
	LRLat  float64 `json:"lrlat"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// SearchRequest searches names by prefix, or by exact name if Full is set.
type SearchRequest struct {
	Term string `json:"term"`
	Full bool   `json:"full"`
}

type ClosestRequest struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
