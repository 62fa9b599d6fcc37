package store

import "agritrace/internal/model"

// NewSeeded returns a store pre-loaded with the demo dataset the dashboard
// ships with: two DRC cooperatives, three farmers, their fields and the
// supporting points of interest.
func NewSeeded() *Store {
	s := New()
	s.cooperatives = []model.Cooperative{
		{ID: "coop-kivu", Name: "COOPEC-Kivu Coffee"},
		{ID: "coop-equateur", Name: "COCACO-DRC Cocoa"},
	}
	s.farmers = []model.Farmer{
		{ID: "farmer-001", Name: "Amani Dufatanye", CooperativeID: "coop-kivu"},
		{ID: "farmer-002", Name: "Baraka Mwangaza", CooperativeID: "coop-kivu"},
		{ID: "farmer-003", Name: "Lokole Bofunda", CooperativeID: "coop-equateur"},
	}
	s.fields = []model.Field{
		{
			ID:         "field-kivu-001",
			FarmerID:   "farmer-001",
			FarmerName: "Amani Dufatanye",
			Crop:       "Arabica Coffee",
			Area:       5.2,
			Polygon: []model.LatLng{
				{Lat: -2.25, Lng: 28.85},
				{Lat: -2.26, Lng: 28.86},
				{Lat: -2.27, Lng: 28.85},
				{Lat: -2.26, Lng: 28.84},
			},
		},
		{
			ID:         "field-kivu-002",
			FarmerID:   "farmer-002",
			FarmerName: "Baraka Mwangaza",
			Crop:       "Robusta Coffee",
			Area:       7.8,
			Polygon: []model.LatLng{
				{Lat: -2.94, Lng: 29.06},
				{Lat: -2.95, Lng: 29.07},
				{Lat: -2.96, Lng: 29.06},
				{Lat: -2.95, Lng: 29.05},
			},
		},
		{
			ID:         "field-equateur-001",
			FarmerID:   "farmer-003",
			FarmerName: "Lokole Bofunda",
			Crop:       "Cocoa",
			Area:       12.5,
			Polygon: []model.LatLng{
				{Lat: 0.05, Lng: 18.25},
				{Lat: 0.06, Lng: 18.26},
				{Lat: 0.05, Lng: 18.27},
				{Lat: 0.04, Lng: 18.26},
			},
		},
	}
	s.pois = []model.PointOfInterest{
		{
			ID:       "poi-bukavu-warehouse",
			Name:     "Bukavu Coffee Warehouse",
			Type:     model.POITypeWarehouse,
			Location: model.LatLng{Lat: -2.5044, Lng: 28.8611},
		},
		{
			ID:       "poi-kisangani-plant",
			Name:     "Kisangani Cocoa Processing",
			Type:     model.POITypeProcessing,
			Location: model.LatLng{Lat: 0.515, Lng: 25.195},
		},
		{
			ID:       "poi-goma-farm",
			Name:     "Goma Farmstead",
			Type:     model.POITypeFarm,
			Location: model.LatLng{Lat: -1.675, Lng: 29.225},
		},
	}
	return s
}
