package service

import (
	"fmt"
	"testing"

	"agritrace/internal/model"
	"agritrace/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportFixture() (*store.Store, ImportService) {
	st := store.NewSeeded()
	return st, NewImportService(st, NewChangeLogService(), nil)
}

const singleFeatureDoc = `{
	"type": "FeatureCollection",
	"features": [
		{
			"properties": {"farmer_name": "Test Farmer", "crop": "Coffee", "area": 1.5},
			"geometry": {"type": "Polygon", "coordinates": [[[30, -1], [30.01, -1], [30.01, -1.01]]]}
		}
	]
}`

func TestImportSingleFeature(t *testing.T) {
	st, svc := newImportFixture()

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(singleFeatureDoc))
	require.NoError(t, err)
	assert.Equal(t, "Success", summary.Status)
	assert.Equal(t, 1, summary.FarmersAdded)
	assert.Equal(t, 1, summary.FieldsAdded)

	farmers := st.Farmers()
	require.Len(t, farmers, 4)
	imported := farmers[3]
	assert.Equal(t, "Test Farmer", imported.Name)
	// New farmers attach to the first existing cooperative.
	assert.Equal(t, "coop-kivu", imported.CooperativeID)

	fields := st.Fields()
	require.Len(t, fields, 4)
	field := fields[3]
	assert.Equal(t, imported.ID, field.FarmerID)
	assert.Equal(t, "Coffee", field.Crop)
	assert.Equal(t, 1.5, field.Area)
	// GeoJSON is [lng, lat]; the stored point must be axis-swapped.
	require.Len(t, field.Polygon, 3)
	assert.Equal(t, model.LatLng{Lat: -1, Lng: 30}, field.Polygon[0])

	assert.False(t, svc.InProgress())
}

func TestImportRejectsNonFeatureCollection(t *testing.T) {
	st, svc := newImportFixture()

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(`{"type": "Feature", "features": []}`))
	require.NoError(t, err)
	assert.Equal(t, "Error", summary.Status)
	assert.Contains(t, summary.Message, "Must be a FeatureCollection")
	assert.Zero(t, summary.FarmersAdded)
	assert.Zero(t, summary.FieldsAdded)
	assert.Len(t, st.Farmers(), 3)
	assert.Len(t, st.Fields(), 3)
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	st, svc := newImportFixture()

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(`{not json`))
	require.NoError(t, err)
	assert.Equal(t, "Error", summary.Status)
	assert.Contains(t, summary.Message, "An error occurred")
	assert.Len(t, st.Fields(), 3)
}

func TestImportSkipsInvalidFeatures(t *testing.T) {
	st, svc := newImportFixture()

	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"farmer_name": "Valid Farmer", "crop": "Coffee", "area": 2},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}},
			{"properties": {"farmer_name": "No Crop", "area": 2},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}},
			{"properties": {"farmer_name": "Point Farmer", "crop": "Cocoa", "area": 2},
			 "geometry": {"type": "Polygon", "coordinates": []}},
			{"properties": {"farmer_name": "Zero Area", "crop": "Cocoa", "area": 0},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}}
		]
	}`

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Success", summary.Status)
	assert.Equal(t, 1, summary.FarmersAdded)
	assert.Equal(t, 1, summary.FieldsAdded)
	assert.Len(t, st.Fields(), 4)
}

func TestImportDeduplicatesFarmersCaseInsensitively(t *testing.T) {
	st, svc := newImportFixture()

	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"farmer_name": "amani dufatanye", "crop": "Coffee", "area": 1},
			 "geometry": {"type": "Polygon", "coordinates": [[[28.8, -2.2]]]}},
			{"properties": {"farmer_name": "Fresh Farmer", "crop": "Cocoa", "area": 2},
			 "geometry": {"type": "Polygon", "coordinates": [[[18.2, 0.1]]]}},
			{"properties": {"farmer_name": "FRESH FARMER", "crop": "Cocoa", "area": 3},
			 "geometry": {"type": "Polygon", "coordinates": [[[18.3, 0.2]]]}}
		]
	}`

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FarmersAdded)
	assert.Equal(t, 3, summary.FieldsAdded)

	fields := st.Fields()
	require.Len(t, fields, 6)
	// First field attached to the existing farmer; last two share the new one.
	assert.Equal(t, "farmer-001", fields[3].FarmerID)
	assert.Equal(t, fields[4].FarmerID, fields[5].FarmerID)
	assert.Equal(t, "Fresh Farmer", fields[5].FarmerName)
}

func TestImportIsAllOrNothing(t *testing.T) {
	st, svc := newImportFixture()

	// The first feature is fine; the second carries an unparseable area,
	// which is fatal for the whole batch.
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"farmer_name": "Good Farmer", "crop": "Coffee", "area": 1},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}},
			{"properties": {"farmer_name": "Bad Farmer", "crop": "Cocoa", "area": "plenty"},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}}
		]
	}`

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Error", summary.Status)
	assert.Len(t, st.Farmers(), 3)
	assert.Len(t, st.Fields(), 3)
}

func TestImportSkipsBrokenAreaOnInvalidFeature(t *testing.T) {
	st, svc := newImportFixture()

	// The first feature is already invalid (no farmer name), so its
	// unparseable area must never be looked at; the valid feature commits.
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"crop": "Cocoa", "area": "plenty"},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}},
			{"properties": {"farmer_name": "Good Farmer", "crop": "Coffee", "area": 1},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}}
		]
	}`

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Success", summary.Status)
	assert.Equal(t, 1, summary.FieldsAdded)
	assert.Len(t, st.Fields(), 4)
}

func TestImportRejectsConcurrentUpload(t *testing.T) {
	st, svc := newImportFixture()

	// The commit notification fires while the first upload is still
	// resolving, so a second upload issued from it must bounce.
	var reentrant error
	var fired bool
	st.Subscribe(func() {
		if fired {
			return
		}
		fired = true
		_, reentrant = svc.ImportGeoJSON(adminUser(), []byte(singleFeatureDoc))
	})

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(singleFeatureDoc))
	require.NoError(t, err)
	assert.Equal(t, "Success", summary.Status)

	require.True(t, fired)
	assert.ErrorIs(t, reentrant, ErrImportInProgress)
	// The rejected upload left no trace.
	assert.Len(t, st.Fields(), 4)
	assert.False(t, svc.InProgress())
}

func TestImportFallbackCooperative(t *testing.T) {
	st := store.New()
	svc := NewImportService(st, NewChangeLogService(), nil)

	summary, err := svc.ImportGeoJSON(nil, []byte(singleFeatureDoc))
	require.NoError(t, err)
	assert.Equal(t, "Success", summary.Status)

	farmers := st.Farmers()
	require.Len(t, farmers, 1)
	assert.Equal(t, "coop-001", farmers[0].CooperativeID)
}

func TestImportStringAreaIsAccepted(t *testing.T) {
	st, svc := newImportFixture()

	doc := fmt.Sprintf(`{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"farmer_name": "String Area", "crop": "Coffee", "area": %q},
			 "geometry": {"type": "Polygon", "coordinates": [[[30, -1]]]}}
		]
	}`, "4.75")

	summary, err := svc.ImportGeoJSON(adminUser(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Success", summary.Status)
	fields := st.Fields()
	assert.Equal(t, 4.75, fields[len(fields)-1].Area)
}
