package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_ScopesByMethod(t *testing.T) {
	env := setupEnv(t)
	auth := NewAuthService(repository.NewTokenRepository(env.db), env.cfg)
	ctx := context.Background()

	reader, err := auth.IssueToken("reader", []string{models.ScopeReadContent}, time.Hour)
	require.NoError(t, err)

	principal, err := auth.Authorize(ctx, "Bearer "+reader, "", http.MethodGet)
	require.NoError(t, err)
	assert.Equal(t, "reader", principal.Subject)

	_, err = auth.Authorize(ctx, "Bearer "+reader, "", http.MethodPut)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	manager, err := auth.IssueToken("manager", []string{models.ScopeReadContent, models.ScopeManageContent}, time.Hour)
	require.NoError(t, err)
	_, err = auth.Authorize(ctx, "Bearer "+manager, "", http.MethodDelete)
	assert.NoError(t, err)
}

func TestAuthService_RejectsBadTokens(t *testing.T) {
	env := setupEnv(t)
	auth := NewAuthService(repository.NewTokenRepository(env.db), env.cfg)
	ctx := context.Background()

	_, err := auth.Authorize(ctx, "", "", http.MethodGet)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = auth.Authorize(ctx, "Token abc", "", http.MethodGet)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	expired, err := auth.IssueToken("reader", []string{models.ScopeReadContent}, -time.Minute)
	require.NoError(t, err)
	_, err = auth.Authorize(ctx, "Bearer "+expired, "", http.MethodGet)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	other := *env.cfg
	other.Auth.Secret = "another-secret"
	forged, err := NewAuthService(repository.NewTokenRepository(env.db), &other).
		IssueToken("reader", []string{models.ScopeReadContent}, time.Hour)
	require.NoError(t, err)
	_, err = auth.Authorize(ctx, "Bearer "+forged, "", http.MethodGet)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthService_OneTimeToken(t *testing.T) {
	env := setupEnv(t)
	auth := NewAuthService(repository.NewTokenRepository(env.db), env.cfg)
	ctx := context.Background()

	ott, err := auth.IssueOTT(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ScopeReadContent, ott.Scope)

	_, err = auth.Authorize(ctx, "", ott.Token, http.MethodPost)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = auth.Authorize(ctx, "", ott.Token, http.MethodGet)
	assert.NoError(t, err)

	_, err = auth.Authorize(ctx, "", ott.Token, http.MethodGet)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}
