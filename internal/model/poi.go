package model

// Point of interest types
const (
	POITypeFarm       = "Farm"
	POITypeWarehouse  = "Warehouse"
	POITypeProcessing = "Processing Plant"
)

// PointOfInterest is a fixed location of operational relevance on the map.
type PointOfInterest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // Farm, Warehouse, Processing Plant
	Location LatLng `json:"location"`
}

// ValidPOIType reports whether t is one of the known POI types.
func ValidPOIType(t string) bool {
	return t == POITypeFarm || t == POITypeWarehouse || t == POITypeProcessing
}
