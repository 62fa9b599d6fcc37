package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"agritrace/internal/model"
	"agritrace/internal/service"
	"agritrace/internal/store"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewSeeded()
	authService := service.NewAuthService()
	mapService := service.NewMapService(st)
	changeLog := service.NewChangeLogService()
	adminService := service.NewAdminService(st, changeLog, nil)
	traceService := service.NewTraceService(st)
	analyticsService := service.NewAnalyticsService(st, traceService, nil)

	router := gin.New()
	api := router.Group("")
	NewAuthHandler(authService).RegisterRoutes(api)
	NewMapHandler(mapService, authService).RegisterRoutes(api)
	NewAdminHandler(adminService, authService, changeLog).RegisterRoutes(api)
	NewTraceHandler(traceService, authService).RegisterRoutes(api)
	NewAnalyticsHandler(analyticsService).RegisterRoutes(api)
	return router, authService
}

func loginToken(t *testing.T, authService service.AuthService, userID string) string {
	t.Helper()
	res, err := authService.LoginAs(userID)
	require.NoError(t, err)
	return res.Token
}

func doRequest(router *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestLoginAsIssuesToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/login-as", "", []byte(`{"user_id":"user-admin"}`))
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResponse(t, w)
	assert.Equal(t, "success", res.Status)
	data := res.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "user-admin", user["id"])
}

func TestLoginAsUnknownUser(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/login-as", "", []byte(`{"user_id":"user-ghost"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	router, auth := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/auth/me", loginToken(t, auth, "user-buyer-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decodeResponse(t, w)
	user := res.Data.(map[string]interface{})
	assert.Equal(t, "user-buyer-1", user["id"])
}

// Requests without a resolvable identity still get a 200, just with nothing
// in it.
func TestListFieldsFailClosed(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/fields", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResponse(t, w)
	data := res.Data.(map[string]interface{})
	assert.Empty(t, data["fields"])
	assert.Equal(t, float64(0), data["total_fields"])
}

func TestListFieldsScopedByRole(t *testing.T) {
	router, auth := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/fields", loginToken(t, auth, "user-admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["total_fields"])

	w = doRequest(router, http.MethodGet, "/api/fields", loginToken(t, auth, "user-coop-manager-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total_fields"])
}

func TestListFieldsSearchKeepsTotals(t *testing.T) {
	router, auth := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/fields?search=cocoa", loginToken(t, auth, "user-admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Len(t, data["fields"], 1)
	// Totals describe the accessible set, not the search result.
	assert.Equal(t, float64(3), data["total_fields"])
	assert.Equal(t, 25.5, data["total_area"])
}

func TestAdminSurfaceForbiddenForNonAdmins(t *testing.T) {
	router, auth := newTestRouter(t)

	body := []byte(`{"name":"New Coop"}`)

	w := doRequest(router, http.MethodPost, "/api/admin/cooperatives", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/admin/cooperatives", loginToken(t, auth, "user-buyer-1"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodPost, "/api/admin/cooperatives", loginToken(t, auth, "user-admin"), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTraceAndAnalyticsRequireToken(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, auth, "user-buyer-1")

	paths := []string{
		"/api/fields/field-kivu-001/timeline",
		"/api/fields/field-kivu-001/supply-chain",
		"/api/analytics/crop-distribution",
		"/api/analytics/yield?field_id=field-kivu-001",
	}
	for _, path := range paths {
		w := doRequest(router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = doRequest(router, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

// busyImportService stands in for an import that is still resolving.
type busyImportService struct{}

func (busyImportService) ImportGeoJSON(_ *model.User, _ []byte) (service.ImportSummary, error) {
	return service.ImportSummary{}, service.ErrImportInProgress
}

func (busyImportService) InProgress() bool { return true }

func TestImportWhileBusyReturnsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService := service.NewAuthService()
	router := gin.New()
	NewImportHandler(busyImportService{}, authService).RegisterRoutes(router.Group(""))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "fields.geojson")
	require.NoError(t, err)
	_, err = part.Write([]byte(`{"type": "FeatureCollection", "features": []}`))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+loginToken(t, authService, "user-admin"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	res := decodeResponse(t, w)
	assert.Equal(t, "error", res.Status)
	assert.Contains(t, res.Error, "already in progress")
}

func TestAdminDeleteIsIdempotent(t *testing.T) {
	router, auth := newTestRouter(t)
	token := loginToken(t, auth, "user-admin")

	w := doRequest(router, http.MethodDelete, "/api/admin/fields/field-kivu-001", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodDelete, "/api/admin/fields/field-kivu-001", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
