package handlers

import (
	"TrailGuide/internal/models"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseApp(service *MockReleaseService) *fiber.App {
	app := fiber.New()
	handler := NewReleaseHandler(service)
	app.Get("/releases", handler.ListReleases)
	app.Post("/releases", handler.SubmitRelease)
	app.Get("/releases/:version", handler.GetRelease)
	app.Put("/releases/:version", handler.PublishRelease)
	app.Get("/releases/:version/bundle", handler.DownloadBundle)
	return app
}

func TestReleaseHandler_Submit(t *testing.T) {
	service := new(MockReleaseService)
	app := newReleaseApp(service)

	service.On("Submit", "spring update").Return(&models.Release{Version: 3, SubmittedDt: time.Now()}, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/releases", map[string]interface{}{"release_notes": "spring update"}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestReleaseHandler_PublishTwice(t *testing.T) {
	service := new(MockReleaseService)
	app := newReleaseApp(service)

	service.On("Publish", uint(3)).Return(nil, models.NewValidationError("release 3 is already published"))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/releases/3", map[string]interface{}{"published": true}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/releases/3", map[string]interface{}{"published": false}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertNumberOfCalls(t, "Publish", 1)
}

func TestReleaseHandler_GetUnknown(t *testing.T) {
	service := new(MockReleaseService)
	app := newReleaseApp(service)

	service.On("Get", uint(9)).Return(nil, models.NotFound("release", "9"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/releases/9", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/releases/latest", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReleaseHandler_DownloadBundle(t *testing.T) {
	service := new(MockReleaseService)
	app := newReleaseApp(service)

	path := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, os.WriteFile(path, []byte("zip"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	service.On("OpenBundle", uint(1)).Return(f, &models.Release{Version: 1, BundlePath: path, BundleSize: 3}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/releases/1/bundle", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "release-1.zip")
}
