package model

// Field is a geographically bounded growing plot owned by a farmer.
// FarmerName is a denormalized snapshot taken when the field is created or
// edited; renaming the farmer elsewhere does not rewrite it.
type Field struct {
	ID         string   `json:"id"`
	FarmerID   string   `json:"farmer_id"`
	FarmerName string   `json:"farmer_name"`
	Crop       string   `json:"crop"`
	Area       float64  `json:"area"` // hectares, non-negative
	Polygon    []LatLng `json:"polygon"`
}
