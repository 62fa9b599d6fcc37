package service

import (
	"testing"

	"agritrace/internal/model"
	"agritrace/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (*store.Store, AdminService, ChangeLogService) {
	st := store.NewSeeded()
	changeLog := NewChangeLogService()
	return st, NewAdminService(st, changeLog, nil), changeLog
}

func TestParsePolygonText(t *testing.T) {
	got := ParsePolygonText("-2.25,28.85;-2.26,28.86")
	assert.Equal(t, []model.LatLng{{Lat: -2.25, Lng: 28.85}, {Lat: -2.26, Lng: 28.86}}, got)

	// Whitespace around coordinates is tolerated.
	got = ParsePolygonText(" -2.25 , 28.85 ")
	assert.Equal(t, []model.LatLng{{Lat: -2.25, Lng: 28.85}}, got)

	// Any malformed group empties the whole polygon, silently.
	assert.Empty(t, ParsePolygonText("-2.25;28.85"))
	assert.Empty(t, ParsePolygonText("-2.25,abc"))
	assert.Empty(t, ParsePolygonText("-2.25,28.85;nope"))
	assert.Empty(t, ParsePolygonText(""))
}

func TestSaveCooperativeCreateAndEdit(t *testing.T) {
	st, svc, _ := newAdminFixture()

	coop, err := svc.SaveCooperative(adminUser(), CooperativeForm{Name: "New Coop"})
	require.NoError(t, err)
	assert.NotEmpty(t, coop.ID)
	assert.Len(t, st.Cooperatives(), 3)

	// Editing dispatches to update instead of create.
	_, err = svc.SaveCooperative(adminUser(), CooperativeForm{EditingID: coop.ID, Name: "Renamed Coop"})
	require.NoError(t, err)
	assert.Len(t, st.Cooperatives(), 3)
	updated, ok := st.CooperativeByID(coop.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed Coop", updated.Name)
}

func TestSaveCooperativeUnknownEditIDIsNoOp(t *testing.T) {
	st, svc, _ := newAdminFixture()
	before := st.Cooperatives()

	_, err := svc.SaveCooperative(adminUser(), CooperativeForm{EditingID: "coop-ghost", Name: "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, before, st.Cooperatives())
}

func TestSaveFieldSnapshotsFarmerName(t *testing.T) {
	st, svc, _ := newAdminFixture()

	field, err := svc.SaveField(adminUser(), FieldForm{
		FarmerID: "farmer-002",
		Crop:     "Cocoa",
		Area:     "3.25",
		Polygon:  "-2.9,29.0;-2.91,29.01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Baraka Mwangaza", field.FarmerName)
	assert.Equal(t, 3.25, field.Area)
	assert.Len(t, field.Polygon, 2)

	// Renaming the farmer later leaves the snapshot alone.
	st.UpdateFarmer(model.Farmer{ID: "farmer-002", Name: "B. M.", CooperativeID: "coop-kivu"})
	stored, ok := st.FieldByID(field.ID)
	require.True(t, ok)
	assert.Equal(t, "Baraka Mwangaza", stored.FarmerName)
}

func TestSaveFieldValidation(t *testing.T) {
	_, svc, _ := newAdminFixture()

	_, err := svc.SaveField(adminUser(), FieldForm{FarmerID: "farmer-ghost", Crop: "Cocoa"})
	assert.EqualError(t, err, "farmer not found")

	_, err = svc.SaveField(adminUser(), FieldForm{FarmerID: "farmer-001", Area: "not-a-number"})
	assert.EqualError(t, err, "invalid area value")

	_, err = svc.SaveField(adminUser(), FieldForm{FarmerID: "farmer-001", Area: "-2"})
	assert.EqualError(t, err, "area must be non-negative")

	// Empty area means zero; malformed polygon means empty polygon, not an error.
	field, err := svc.SaveField(adminUser(), FieldForm{FarmerID: "farmer-001", Crop: "Maize", Polygon: "garbage"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, field.Area)
	assert.Empty(t, field.Polygon)
}

func TestSavePOIDefaultsAndValidation(t *testing.T) {
	st, svc, _ := newAdminFixture()

	poi, err := svc.SavePOI(adminUser(), POIForm{Name: "Matadi Depot", Lat: "-5.82", Lng: "13.46"})
	require.NoError(t, err)
	assert.Equal(t, model.POITypeWarehouse, poi.Type)
	assert.Equal(t, model.LatLng{Lat: -5.82, Lng: 13.46}, poi.Location)
	assert.Len(t, st.POIs(), 4)

	// Empty coordinates default to zero.
	poi, err = svc.SavePOI(adminUser(), POIForm{Name: "Unplaced", Type: model.POITypeFarm})
	require.NoError(t, err)
	assert.Equal(t, model.LatLng{}, poi.Location)

	_, err = svc.SavePOI(adminUser(), POIForm{Name: "Bad", Type: "Silo"})
	assert.Error(t, err)

	_, err = svc.SavePOI(adminUser(), POIForm{Name: "Bad", Lat: "north"})
	assert.Error(t, err)
}

func TestDeleteRecordsChangeLog(t *testing.T) {
	st, svc, changeLog := newAdminFixture()

	svc.DeleteField(adminUser(), "field-kivu-001")
	svc.DeleteField(adminUser(), "field-kivu-001") // idempotent

	assert.Len(t, st.Fields(), 2)
	entries, total := changeLog.List(1, 10)
	assert.Equal(t, int64(2), total)
	require.NotEmpty(t, entries)
	assert.Equal(t, model.ActionDeleteField, entries[0].Action)
	assert.Equal(t, "user-admin", entries[0].UserID)
}
