package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"agritrace/internal/model"
	"agritrace/internal/store"
	ws "agritrace/internal/websocket"
)

// ErrImportInProgress is returned while a previous upload is still resolving.
var ErrImportInProgress = errors.New("an import is already in progress")

// ImportSummary is the aggregate result reported back to the admin page.
// Per-feature skips are counted, never itemized.
type ImportSummary struct {
	Status       string `json:"status"` // "Success" or "Error"
	Message      string `json:"message"`
	FieldsAdded  int    `json:"fields_added"`
	FarmersAdded int    `json:"farmers_added"`
}

// ImportService turns an uploaded GeoJSON FeatureCollection into farmer and
// field records. The batch commits all-or-nothing: any failure past the
// per-feature skip rules discards everything built so far.
type ImportService interface {
	ImportGeoJSON(user *model.User, data []byte) (ImportSummary, error)
	InProgress() bool
}

type importService struct {
	store     *store.Store
	changeLog ChangeLogService
	hub       *ws.Hub
	busy      atomic.Bool
}

// NewImportService wires the import pipeline to the store.
func NewImportService(st *store.Store, changeLog ChangeLogService, hub *ws.Hub) ImportService {
	return &importService{store: st, changeLog: changeLog, hub: hub}
}

type geoFeature struct {
	Properties map[string]interface{} `json:"properties"`
	Geometry   struct {
		Type        string        `json:"type"`
		Coordinates [][][]float64 `json:"coordinates"`
	} `json:"geometry"`
}

type geoDocument struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

func (s *importService) InProgress() bool {
	return s.busy.Load()
}

// ImportGeoJSON runs one upload to completion. A second upload arriving while
// this one runs gets ErrImportInProgress; the caller must re-submit manually.
func (s *importService) ImportGeoJSON(user *model.User, data []byte) (ImportSummary, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return ImportSummary{}, ErrImportInProgress
	}
	defer s.busy.Store(false)

	summary, err := s.runImport(data)
	if err != nil {
		log.Printf("Error processing GeoJSON: %v", err)
		return ImportSummary{
			Status:  "Error",
			Message: "An error occurred: " + err.Error(),
		}, nil
	}

	s.changeLog.Record(user, model.ActionImportGeoJSON, "", "",
		fmt.Sprintf("imported %d fields, %d farmers", summary.FieldsAdded, summary.FarmersAdded))
	s.hub.BroadcastEvent("entities_changed", map[string]interface{}{
		"action":        model.ActionImportGeoJSON,
		"fields_added":  summary.FieldsAdded,
		"farmers_added": summary.FarmersAdded,
	})
	return summary, nil
}

func (s *importService) runImport(data []byte) (ImportSummary, error) {
	var doc geoDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ImportSummary{}, err
	}
	if doc.Type != "FeatureCollection" {
		return ImportSummary{}, errors.New("Invalid GeoJSON: Must be a FeatureCollection.")
	}

	// Work against a snapshot; nothing is committed until the whole batch
	// parsed cleanly.
	currentFarmers := s.store.Farmers()
	fieldCount := len(s.store.Fields())

	fallbackCoopID := "coop-001"
	if coops := s.store.Cooperatives(); len(coops) > 0 {
		fallbackCoopID = coops[0].ID
	}

	var newFarmers []model.Farmer
	var newFields []model.Field

	for _, feature := range doc.Features {
		farmerName, _ := feature.Properties["farmer_name"].(string)
		crop, _ := feature.Properties["crop"].(string)
		areaValue := feature.Properties["area"]
		if farmerName == "" || crop == "" || !areaPresent(areaValue) ||
			feature.Geometry.Type != "Polygon" || len(feature.Geometry.Coordinates) == 0 {
			log.Printf("Skipping invalid feature: farmer_name=%q crop=%q", farmerName, crop)
			continue
		}

		// Parsed only after the feature survives the skip check, so a broken
		// area on an otherwise-skipped feature cannot abort the batch.
		area, err := featureArea(areaValue)
		if err != nil {
			return ImportSummary{}, err
		}

		farmer, ok := farmerByName(currentFarmers, farmerName)
		if !ok {
			farmer = model.Farmer{
				ID:            fmt.Sprintf("farmer-imported-%d-%d", len(currentFarmers)+1, time.Now().Unix()),
				Name:          farmerName,
				CooperativeID: fallbackCoopID,
			}
			currentFarmers = append(currentFarmers, farmer)
			newFarmers = append(newFarmers, farmer)
		}

		// GeoJSON stores [lng, lat]; the map wants lat first.
		ring := feature.Geometry.Coordinates[0]
		polygon := make([]model.LatLng, 0, len(ring))
		for _, pair := range ring {
			if len(pair) < 2 {
				return ImportSummary{}, errors.New("invalid coordinate pair in polygon ring")
			}
			polygon = append(polygon, model.LatLng{Lat: pair[1], Lng: pair[0]})
		}

		newFields = append(newFields, model.Field{
			ID:         fmt.Sprintf("field-imported-%d-%d", fieldCount+len(newFields)+1, time.Now().Unix()),
			FarmerID:   farmer.ID,
			FarmerName: farmer.Name,
			Crop:       crop,
			Area:       area,
			Polygon:    polygon,
		})
	}

	s.store.ImportBatch(newFarmers, newFields)

	return ImportSummary{
		Status:       "Success",
		Message:      "GeoJSON data imported successfully.",
		FieldsAdded:  len(newFields),
		FarmersAdded: len(newFarmers),
	}, nil
}

// farmerByName resolves a farmer by case-insensitive exact name, including
// farmers added earlier in the same batch.
func farmerByName(farmers []model.Farmer, name string) (model.Farmer, bool) {
	for _, f := range farmers {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return model.Farmer{}, false
}

// areaPresent reports whether the area property carries a value at all.
// Missing, empty-string or zero counts as absent and skips the feature.
func areaPresent(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case float64:
		return value != 0
	case string:
		return value != ""
	default:
		return true
	}
}

// featureArea parses the area property, which may arrive as a JSON number or
// a numeric string. Unparseable values are fatal for the whole import.
func featureArea(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid area value %q", value)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("invalid area value %v", v)
	}
}
