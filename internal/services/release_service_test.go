package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"archive/zip"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZipEntry(t *testing.T, zr *zip.ReadCloser, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return data
		}
	}
	t.Fatalf("bundle has no %s", name)
	return nil
}

func TestReleaseService_SubmitBuildsBundle(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	photo := env.upload(t, "photo.png")
	s := station("Lookout", "red", 0)
	s.HeaderImage = &photo.ID
	_, err := env.stations.CreateRevision(ctx, "s1", s, "")
	require.NoError(t, err)
	_, err = env.modals.CreateRevision(ctx, "welcome", &models.Modal{Title: "Welcome", Enabled: true}, "")
	require.NoError(t, err)

	compiler := newCompiler(env, fixedClock(time.June, 15))
	bundles := NewBundleService(compiler, env.asset, env.storage, env.cfg)
	releases := NewReleaseService(repository.NewReleaseRepository(env.db), bundles, env.log)

	release, err := releases.Submit(ctx, "first release")
	require.NoError(t, err)
	assert.EqualValues(t, 1, release.Version)
	assert.Positive(t, release.BundleSize)
	assert.False(t, release.Published())

	zr, err := zip.OpenReader(release.BundlePath)
	require.NoError(t, err)
	defer zr.Close()

	var stations []map[string]interface{}
	require.NoError(t, json.Unmarshal(readZipEntry(t, zr, "stations.json"), &stations))
	require.Len(t, stations, 2)
	assert.Equal(t, "red", stations[0]["id"])
	assert.Len(t, stations[0]["data"], 1)

	var modals map[string]interface{}
	require.NoError(t, json.Unmarshal(readZipEntry(t, zr, "modals.json"), &modals))
	assert.Contains(t, modals, "welcome")

	var metadata map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(readZipEntry(t, zr, "metadata.json"), &metadata))
	assert.EqualValues(t, 1, metadata["release"]["version"])

	assert.Equal(t, "bytes of photo.png", string(readZipEntry(t, zr, "assets/image/"+photo.FileName)))
	assert.Contains(t, string(readZipEntry(t, zr, "assets/assets.js")), photo.ID)

	published, err := releases.Publish(ctx, release.Version)
	require.NoError(t, err)
	assert.True(t, published.Published())

	_, err = releases.Publish(ctx, release.Version)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = releases.Get(ctx, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSettingsService_SetAndGet(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	name := "Trail guide"
	settings, err := env.settings.Set(ctx, map[string]*string{"app_name": &name, "terms": nil})

	require.NoError(t, err)
	require.Contains(t, settings, "app_name")
	assert.Equal(t, name, *settings["app_name"])
	assert.Nil(t, settings["terms"])
}

func TestCategoryService_DeleteInUse(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.stations.CreateRevision(ctx, "s1", station("Lookout", "red", 0), "")
	require.NoError(t, err)

	err = env.category.Delete(ctx, "culture")
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = env.category.Put(ctx, &models.Category{ID: "nature", IconSVG: "<svg/>"})
	require.NoError(t, err)
	assert.NoError(t, env.category.Delete(ctx, "nature"))
}

func TestCategoryService_DeleteUsedBySupersededRevision(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.category.Put(ctx, &models.Category{ID: "research", IconSVG: "<svg/>"})
	require.NoError(t, err)
	created, err := env.stations.Create(ctx, station("Lookout", "red", 0), "")
	require.NoError(t, err)
	moved := station("Lookout", "red", 0)
	moved.Category = "research"
	_, err = env.stations.CreateRevision(ctx, created.ID, moved, "")
	require.NoError(t, err)

	err = env.category.Delete(ctx, "culture")
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	first, err := env.stations.GetRevision(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "culture", first.Category)
	_, err = env.category.Get(ctx, "culture")
	assert.NoError(t, err)
}
