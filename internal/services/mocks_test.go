package services

import (
	"TrailGuide/internal/models"
	"context"
	"iter"

	"github.com/stretchr/testify/mock"
)

type MockUsageService struct {
	mock.Mock
}

func (m *MockUsageService) Recompute(ctx context.Context, content models.Revisioned) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockUsageService) IsReachable(ctx context.Context, assetID string) (bool, error) {
	args := m.Called(ctx, assetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsageService) UnreachableAssets(ctx context.Context) iter.Seq2[string, error] {
	args := m.Called(ctx)
	return args.Get(0).(iter.Seq2[string, error])
}

func (m *MockUsageService) UsageCounts(ctx context.Context) (map[string]models.UsageCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.UsageCount), args.Error(1)
}

func (m *MockUsageService) RebuildAll(ctx context.Context, sources ...RevisionedSource) (int, error) {
	args := m.Called(ctx, sources)
	return args.Int(0), args.Error(1)
}
