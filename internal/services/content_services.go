package services

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"errors"
	"fmt"
)

type StationService interface {
	EntityService[models.Station]
}

type PageService interface {
	EntityService[models.Page]
}

type ModalService interface {
	EntityService[models.Modal]
}

func NewStationService(
	stationRepo repository.StationRepository,
	sectionRepo repository.SectionRepository,
	categoryRepo repository.CategoryRepository,
	assetRepo repository.AssetRepository,
	usageService UsageService,
	logService LogService,
	configuration *config.Configuration,
) StationService {
	return newEntityService[models.Station](
		stationRepo, usageService, assetRepo, logService, configuration,
		checkStationReferences(sectionRepo, categoryRepo),
		checkStationContents,
	)
}

func NewPageService(
	pageRepo repository.PageRepository,
	assetRepo repository.AssetRepository,
	usageService UsageService,
	logService LogService,
	configuration *config.Configuration,
) PageService {
	return newEntityService[models.Page](pageRepo, usageService, assetRepo, logService, configuration)
}

func NewModalService(
	modalRepo repository.ModalRepository,
	assetRepo repository.AssetRepository,
	usageService UsageService,
	logService LogService,
	configuration *config.Configuration,
) ModalService {
	return newEntityService[models.Modal](modalRepo, usageService, assetRepo, logService, configuration)
}

func checkStationReferences(sectionRepo repository.SectionRepository, categoryRepo repository.CategoryRepository) EntityChecker[models.Station] {
	return func(ctx context.Context, station *models.Station) ([]string, error) {
		var problems []string
		if station.Section != "" {
			if _, err := sectionRepo.FindByID(ctx, station.Section); err != nil {
				if !errors.Is(err, models.ErrNotFound) {
					return nil, err
				}
				problems = append(problems, fmt.Sprintf("section %s does not exist", station.Section))
			}
		}
		if station.Category != "" {
			if _, err := categoryRepo.FindByID(ctx, station.Category); err != nil {
				if !errors.Is(err, models.ErrNotFound) {
					return nil, err
				}
				problems = append(problems, fmt.Sprintf("category %s does not exist", station.Category))
			}
		}
		return problems, nil
	}
}

func checkStationContents(_ context.Context, station *models.Station) ([]string, error) {
	var problems []string
	if (station.Visible.From == nil) != (station.Visible.To == nil) {
		problems = append(problems, "visible.from and visible.to must be set together")
	}
	for i, block := range station.Contents {
		if block.ContentType == models.ContentTypeQuiz && block.QuizType == "" {
			problems = append(problems, fmt.Sprintf("contents[%d].quiz_type is required", i))
		}
	}
	return problems, nil
}
