package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"sort"
)

type SettingsService interface {
	Get(ctx context.Context) (map[string]*string, error)
	Set(ctx context.Context, values map[string]*string) (map[string]*string, error)
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (map[string]*string, error) {
	settings, err := s.settingsRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

func (s *settingsServiceImpl) Set(ctx context.Context, values map[string]*string) (map[string]*string, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "" {
			return nil, models.NewValidationError("setting keys must not be empty")
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	settings := make([]models.Setting, 0, len(keys))
	for _, key := range keys {
		settings = append(settings, models.Setting{Key: key, Value: values[key]})
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return s.Get(ctx)
}
