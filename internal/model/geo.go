package model

// LatLng is a single geographic point in WGS84 order (latitude first).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
