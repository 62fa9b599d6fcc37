package model

import "time"

// Change-log actions
const (
	ActionCreateCooperative = "CREATE_COOPERATIVE"
	ActionUpdateCooperative = "UPDATE_COOPERATIVE"
	ActionDeleteCooperative = "DELETE_COOPERATIVE"
	ActionCreateFarmer      = "CREATE_FARMER"
	ActionUpdateFarmer      = "UPDATE_FARMER"
	ActionDeleteFarmer      = "DELETE_FARMER"
	ActionCreateField       = "CREATE_FIELD"
	ActionUpdateField       = "UPDATE_FIELD"
	ActionDeleteField       = "DELETE_FIELD"
	ActionCreatePOI         = "CREATE_POI"
	ActionUpdatePOI         = "UPDATE_POI"
	ActionDeletePOI         = "DELETE_POI"
	ActionImportGeoJSON     = "IMPORT_GEOJSON"
)

// ChangeLog tracks who changed what and when on the admin surface. Entries
// live in memory only and reset with the rest of the state.
type ChangeLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name,omitempty"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
