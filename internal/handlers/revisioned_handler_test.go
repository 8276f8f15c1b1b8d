package handlers

import (
	"TrailGuide/internal/models"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStationApp(service *MockStationService, qr *MockQRService) *fiber.App {
	app := fiber.New()
	handler := NewStationHandler(service, qr)
	app.Get("/stations", handler.List)
	app.Post("/stations", handler.Create)
	app.Get("/stations/:id", handler.Get)
	app.Put("/stations/:id", handler.Update)
	app.Delete("/stations/:id", handler.Delete)
	app.Get("/stations/:id/revisions", handler.History)
	app.Get("/stations/:id/revisions/:rev", handler.Revision)
	app.Get("/stations/:id/qr", handler.QR)
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestStationHandler_Create(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	created := &models.Station{ID: "s1", Title: "Lookout", Revision: models.Revision{Number: 1, Message: "first"}}
	service.On("Create", mock.MatchedBy(func(s *models.Station) bool { return s.Title == "Lookout" }), "first").
		Return(created, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/stations", map[string]interface{}{
		"title":        "Lookout",
		"revision_msg": "first",
	}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestStationHandler_CreateExistingIsConflict(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	service.On("Create", mock.Anything, "").
		Return(nil, &models.ConflictError{Entity: "station", ID: "s1", Expected: 0})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/stations", map[string]interface{}{"id": "s1", "title": "Lookout"}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestStationHandler_UpdateMayNotChangeID(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/stations/s1", map[string]interface{}{"id": "s2", "title": "Lookout"}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "CreateRevision", mock.Anything, mock.Anything, mock.Anything)
}

func TestStationHandler_UpdateWithStaleRevision(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	service.On("CreateRevisionAt", "s1", mock.Anything, "retitle", 2).
		Return(nil, &models.ConflictError{Entity: "station", ID: "s1", Expected: 2})

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/stations/s1?revision=2", map[string]interface{}{
		"title":        "Lookout",
		"revision_msg": "retitle",
	}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestStationHandler_UpdateValidationError(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	service.On("CreateRevision", "s1", mock.Anything, "").
		Return(nil, models.NewValidationError("title is required"))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/stations/s1", map[string]interface{}{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"title is required"}, body.Errors)
}

func TestStationHandler_GetNotFound(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	service.On("GetCurrent", "missing").Return(nil, models.NotFound("station", "missing"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stations/missing", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStationHandler_ListParsesFilter(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	enabled, deleted := true, false
	service.On("ListCurrent", models.CurrentFilter{Enabled: &enabled, Deleted: &deleted, Section: "red"}).
		Return([]models.Station{{ID: "s1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stations?filter=enabled+eq+'true'+and+section+eq+'red'", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestStationHandler_RevisionRoutes(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	service.On("ListHistory", "s1").Return([]models.RevisionInfo{{Number: 1}, {Number: 2}}, nil)
	service.On("GetRevision", "s1", 1).Return(&models.Station{ID: "s1"}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stations/s1/revisions", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/stations/s1/revisions/1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/stations/s1/revisions/zero", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestStationHandler_DeleteKeepsMessage(t *testing.T) {
	service := new(MockStationService)
	app := newStationApp(service, new(MockQRService))

	service.On("SoftDelete", "s1", "retired").Return(&models.Station{ID: "s1", Deleted: true}, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/stations/s1", map[string]interface{}{"revision_msg": "retired"}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestStationHandler_QR(t *testing.T) {
	service := new(MockStationService)
	qr := new(MockQRService)
	app := newStationApp(service, qr)

	service.On("GetCurrent", "s1").Return(&models.Station{ID: "s1"}, nil)
	qr.On("StationQR", "s1").Return([]byte("png"), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stations/s1/qr", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))
}
