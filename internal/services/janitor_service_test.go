package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitor_ReportsThenForceCleans(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	janitor := NewJanitorService(env.usage, env.asset, env.log, env.cfg)

	used := env.upload(t, "used.png")
	orphan := env.upload(t, "orphan.png")
	s := station("Lookout", "red", 0)
	s.HeaderImage = &used.ID
	_, err := env.stations.CreateRevision(ctx, "s1", s, "")
	require.NoError(t, err)

	candidates, err := janitor.Candidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.ID}, candidates)

	report, err := janitor.startClean(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, report.Deleted)

	stored, err := env.asset.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.False(t, stored.Deleted)

	report, err = janitor.ForceStartCleanCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.ID}, report.Deleted)
	assert.False(t, janitor.IsCleaning())

	candidates, err = janitor.Candidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestJanitor_RejectsConcurrentClean(t *testing.T) {
	env := setupEnv(t)
	janitor := NewJanitorService(env.usage, env.asset, env.log, env.cfg)

	require.True(t, janitor.begin())
	_, err := janitor.ForceStartCleanCycle(context.Background())
	assert.ErrorIs(t, err, ErrCleaningInProgress)
	janitor.end()
}
