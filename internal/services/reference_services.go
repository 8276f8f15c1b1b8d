package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SectionService interface {
	Get(ctx context.Context, id string) (*models.Section, error)
	List(ctx context.Context) ([]models.Section, error)
	Put(ctx context.Context, section *models.Section) (*models.Section, error)
}

type sectionServiceImpl struct {
	sectionRepo repository.SectionRepository
	validate    *validator.Validate
}

func NewSectionService(sectionRepo repository.SectionRepository) SectionService {
	return &sectionServiceImpl{sectionRepo: sectionRepo, validate: NewValidator()}
}

func (s *sectionServiceImpl) Get(ctx context.Context, id string) (*models.Section, error) {
	return s.sectionRepo.FindByID(ctx, id)
}

func (s *sectionServiceImpl) List(ctx context.Context) ([]models.Section, error) {
	return s.sectionRepo.FindAll(ctx)
}

func (s *sectionServiceImpl) Put(ctx context.Context, section *models.Section) (*models.Section, error) {
	if err := validateStruct(ctx, s.validate, section); err != nil {
		return nil, err
	}
	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

type CategoryService interface {
	Get(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Put(ctx context.Context, category *models.Category) (*models.Category, error)
	// Delete refuses to remove a category that any station revision uses.
	Delete(ctx context.Context, id string) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	stationRepo  repository.StationRepository
	validate     *validator.Validate
}

func NewCategoryService(categoryRepo repository.CategoryRepository, stationRepo repository.StationRepository) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, stationRepo: stationRepo, validate: NewValidator()}
}

func (s *categoryServiceImpl) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *categoryServiceImpl) Put(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := validateStruct(ctx, s.validate, category); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	used, err := s.stationRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return models.NewValidationError(fmt.Sprintf("category %s is used by %d station revisions", id, used))
	}
	return s.categoryRepo.Delete(ctx, id)
}

type LayerService interface {
	Get(ctx context.Context, id string) (*models.Layer, error)
	List(ctx context.Context, enabledOnly bool) ([]models.Layer, error)
	Create(ctx context.Context, layer *models.Layer) (*models.Layer, error)
	Put(ctx context.Context, layer *models.Layer) (*models.Layer, error)
	Delete(ctx context.Context, id string) error
}

type layerServiceImpl struct {
	layerRepo repository.LayerRepository
	validate  *validator.Validate
}

func NewLayerService(layerRepo repository.LayerRepository) LayerService {
	return &layerServiceImpl{layerRepo: layerRepo, validate: NewValidator()}
}

func (s *layerServiceImpl) Get(ctx context.Context, id string) (*models.Layer, error) {
	return s.layerRepo.FindByID(ctx, id)
}

func (s *layerServiceImpl) List(ctx context.Context, enabledOnly bool) ([]models.Layer, error) {
	if enabledOnly {
		return s.layerRepo.FindEnabled(ctx)
	}
	return s.layerRepo.FindAll(ctx)
}

func (s *layerServiceImpl) Create(ctx context.Context, layer *models.Layer) (*models.Layer, error) {
	if layer.ID == "" {
		layer.ID = uuid.NewString()
	}
	if _, err := s.layerRepo.FindByID(ctx, layer.ID); err == nil {
		return nil, models.NewValidationError(fmt.Sprintf("layer %s already exists", layer.ID))
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if err := validateStruct(ctx, s.validate, layer); err != nil {
		return nil, err
	}
	if err := s.layerRepo.Create(ctx, layer); err != nil {
		return nil, err
	}
	return layer, nil
}

func (s *layerServiceImpl) Put(ctx context.Context, layer *models.Layer) (*models.Layer, error) {
	if err := validateStruct(ctx, s.validate, layer); err != nil {
		return nil, err
	}
	if err := s.layerRepo.Update(ctx, layer); err != nil {
		return nil, err
	}
	return layer, nil
}

func (s *layerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.layerRepo.Delete(ctx, id)
}
