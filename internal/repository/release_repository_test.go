package repository

import (
	"TrailGuide/internal/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseRepository_PublishOnce(t *testing.T) {
	db := setupTestDB(t)
	releaseRepo := NewReleaseRepository(db)
	ctx := context.Background()

	next, err := releaseRepo.NextVersion(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, next)

	release := &models.Release{Version: next, ReleaseNotes: "first", BundlePath: "1.zip", BundleSize: 5, SubmittedDt: time.Now().UTC()}
	require.NoError(t, releaseRepo.Create(ctx, release))

	published, err := releaseRepo.MarkPublished(ctx, 1, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, published)

	published, err = releaseRepo.MarkPublished(ctx, 1, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, published)

	found, err := releaseRepo.FindByVersion(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found.Published())

	next, err = releaseRepo.NextVersion(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, next)

	_, err = releaseRepo.FindByVersion(ctx, 9)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTokenRepository_ConsumeOnce(t *testing.T) {
	db := setupTestDB(t)
	tokenRepo := NewTokenRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, tokenRepo.Create(ctx, &models.OneTimeToken{Token: "t1", Scope: models.ScopeReadContent, Expiry: now.Add(time.Minute)}))
	require.NoError(t, tokenRepo.Create(ctx, &models.OneTimeToken{Token: "t2", Scope: models.ScopeReadContent, Expiry: now.Add(-time.Minute)}))

	ott, err := tokenRepo.Consume(ctx, "t1", now)
	require.NoError(t, err)
	assert.Equal(t, models.ScopeReadContent, ott.Scope)

	_, err = tokenRepo.Consume(ctx, "t1", now)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = tokenRepo.Consume(ctx, "t2", now)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}
