package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"agritrace/internal/model"
	"agritrace/internal/store"
	ws "agritrace/internal/websocket"
)

// Form DTOs. Everything arrives as strings, straight from the admin dialogs;
// EditingID empty means create, otherwise the save targets that id.
type CooperativeForm struct {
	EditingID string `json:"editing_id"`
	Name      string `json:"name" binding:"required"`
}

type FarmerForm struct {
	EditingID     string `json:"editing_id"`
	Name          string `json:"name" binding:"required"`
	CooperativeID string `json:"cooperative_id"`
}

type FieldForm struct {
	EditingID string `json:"editing_id"`
	FarmerID  string `json:"farmer_id" binding:"required"`
	Crop      string `json:"crop"`
	Area      string `json:"area"`    // empty means 0.0
	Polygon   string `json:"polygon"` // "lat,lng;lat,lng;..."
}

type POIForm struct {
	EditingID string `json:"editing_id"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type"`
	Lat       string `json:"lat"`
	Lng       string `json:"lng"`
}

// AdminService is the staging layer between the admin forms and the store.
// Each Save dispatches update-if-editing else create; deletes are idempotent.
type AdminService interface {
	SaveCooperative(user *model.User, form CooperativeForm) (model.Cooperative, error)
	DeleteCooperative(user *model.User, id string)
	SaveFarmer(user *model.User, form FarmerForm) (model.Farmer, error)
	DeleteFarmer(user *model.User, id string)
	SaveField(user *model.User, form FieldForm) (model.Field, error)
	DeleteField(user *model.User, id string)
	SavePOI(user *model.User, form POIForm) (model.PointOfInterest, error)
	DeletePOI(user *model.User, id string)
}

type adminService struct {
	store     *store.Store
	changeLog ChangeLogService
	hub       *ws.Hub
}

// NewAdminService wires the admin CRUD layer to the store, the change log and
// the websocket feed.
func NewAdminService(st *store.Store, changeLog ChangeLogService, hub *ws.Hub) AdminService {
	return &adminService{store: st, changeLog: changeLog, hub: hub}
}

// ParsePolygonText parses "lat,lng;lat,lng;..." into a point sequence. Any
// malformed group makes the whole polygon empty; the failure is logged but
// never surfaced to the form.
func ParsePolygonText(polygonStr string) []model.LatLng {
	groups := strings.Split(strings.TrimSpace(polygonStr), ";")
	points := make([]model.LatLng, 0, len(groups))
	for _, group := range groups {
		coords := strings.Split(group, ",")
		if len(coords) < 2 {
			log.Printf("Error parsing polygon string %q: missing comma in %q", polygonStr, group)
			return []model.LatLng{}
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			log.Printf("Error parsing polygon string %q: %v", polygonStr, err)
			return []model.LatLng{}
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			log.Printf("Error parsing polygon string %q: %v", polygonStr, err)
			return []model.LatLng{}
		}
		points = append(points, model.LatLng{Lat: lat, Lng: lng})
	}
	return points
}

// parseAreaString converts a form area string, treating empty as zero.
func parseAreaString(area string) (float64, error) {
	if area == "" {
		return 0.0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(area), 64)
	if err != nil {
		return 0, errors.New("invalid area value")
	}
	if v < 0 {
		return 0, errors.New("area must be non-negative")
	}
	return v, nil
}

func (s *adminService) record(user *model.User, action, entityID, entityName string) {
	s.changeLog.Record(user, action, entityID, entityName, fmt.Sprintf("%s %s", action, entityID))
	s.hub.BroadcastEvent("entities_changed", map[string]interface{}{
		"action":    action,
		"entity_id": entityID,
	})
}

// --- Cooperatives ---

func (s *adminService) SaveCooperative(user *model.User, form CooperativeForm) (model.Cooperative, error) {
	if form.EditingID != "" {
		coop := model.Cooperative{ID: form.EditingID, Name: form.Name}
		s.store.UpdateCooperative(coop)
		s.record(user, model.ActionUpdateCooperative, coop.ID, coop.Name)
		return coop, nil
	}
	coop := model.Cooperative{ID: newID("coop"), Name: form.Name}
	s.store.AddCooperative(coop)
	s.record(user, model.ActionCreateCooperative, coop.ID, coop.Name)
	return coop, nil
}

func (s *adminService) DeleteCooperative(user *model.User, id string) {
	s.store.RemoveCooperative(id)
	s.record(user, model.ActionDeleteCooperative, id, "")
}

// --- Farmers ---

func (s *adminService) SaveFarmer(user *model.User, form FarmerForm) (model.Farmer, error) {
	if form.EditingID != "" {
		farmer := model.Farmer{ID: form.EditingID, Name: form.Name, CooperativeID: form.CooperativeID}
		s.store.UpdateFarmer(farmer)
		s.record(user, model.ActionUpdateFarmer, farmer.ID, farmer.Name)
		return farmer, nil
	}
	farmer := model.Farmer{ID: newID("farmer"), Name: form.Name, CooperativeID: form.CooperativeID}
	s.store.AddFarmer(farmer)
	s.record(user, model.ActionCreateFarmer, farmer.ID, farmer.Name)
	return farmer, nil
}

func (s *adminService) DeleteFarmer(user *model.User, id string) {
	// No cascade: the farmer's fields survive with their name snapshots.
	s.store.RemoveFarmer(id)
	s.record(user, model.ActionDeleteFarmer, id, "")
}

// --- Fields ---

func (s *adminService) SaveField(user *model.User, form FieldForm) (model.Field, error) {
	farmer, ok := s.store.FarmerByID(form.FarmerID)
	if !ok {
		return model.Field{}, errors.New("farmer not found")
	}

	area, err := parseAreaString(form.Area)
	if err != nil {
		return model.Field{}, err
	}

	field := model.Field{
		FarmerID:   form.FarmerID,
		FarmerName: farmer.Name, // snapshot, never rewritten on later renames
		Crop:       form.Crop,
		Area:       area,
		Polygon:    ParsePolygonText(form.Polygon),
	}

	if form.EditingID != "" {
		field.ID = form.EditingID
		s.store.UpdateField(field)
		s.record(user, model.ActionUpdateField, field.ID, field.Crop)
		return field, nil
	}
	field.ID = newID("field")
	s.store.AddField(field)
	s.record(user, model.ActionCreateField, field.ID, field.Crop)
	return field, nil
}

func (s *adminService) DeleteField(user *model.User, id string) {
	s.store.RemoveField(id)
	s.record(user, model.ActionDeleteField, id, "")
}

// --- POIs ---

func (s *adminService) SavePOI(user *model.User, form POIForm) (model.PointOfInterest, error) {
	poiType := form.Type
	if poiType == "" {
		poiType = model.POITypeWarehouse
	}
	if !model.ValidPOIType(poiType) {
		return model.PointOfInterest{}, errors.New("invalid POI type: must be Farm, Warehouse, or Processing Plant")
	}

	lat := 0.0
	if form.Lat != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(form.Lat), 64)
		if err != nil {
			return model.PointOfInterest{}, errors.New("invalid latitude value")
		}
		lat = v
	}
	lng := 0.0
	if form.Lng != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(form.Lng), 64)
		if err != nil {
			return model.PointOfInterest{}, errors.New("invalid longitude value")
		}
		lng = v
	}

	poi := model.PointOfInterest{
		Name:     form.Name,
		Type:     poiType,
		Location: model.LatLng{Lat: lat, Lng: lng},
	}

	if form.EditingID != "" {
		poi.ID = form.EditingID
		s.store.UpdatePOI(poi)
		s.record(user, model.ActionUpdatePOI, poi.ID, poi.Name)
		return poi, nil
	}
	poi.ID = newID("poi")
	s.store.AddPOI(poi)
	s.record(user, model.ActionCreatePOI, poi.ID, poi.Name)
	return poi, nil
}

func (s *adminService) DeletePOI(user *model.User, id string) {
	s.store.RemovePOI(id)
	s.record(user, model.ActionDeletePOI, id, "")
}
