package services

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EntityChecker validates an entity against state outside the entity itself.
// It returns human readable problems; the error is reserved for storage failures.
type EntityChecker[T any] func(ctx context.Context, entity *T) ([]string, error)

// EntityService keeps the revision history of stations, pages and modals.
type EntityService[T any] interface {
	// Create stores the first revision of a new entity. An empty ID is replaced
	// by a random UUID.
	Create(ctx context.Context, entity *T, message string) (*T, error)
	// CreateRevision appends entity as the revision after the current one of
	// id. A writer that advances id first makes it fail with a
	// *models.ConflictError; the caller retries with freshly read state.
	CreateRevision(ctx context.Context, id string, entity *T, message string) (*T, error)
	// CreateRevisionAt appends entity as revision expectedPrior+1 or fails with
	// a *models.ConflictError.
	CreateRevisionAt(ctx context.Context, id string, entity *T, message string, expectedPrior int) (*T, error)
	GetCurrent(ctx context.Context, id string) (*T, error)
	GetRevision(ctx context.Context, id string, revision int) (*T, error)
	ListHistory(ctx context.Context, id string) ([]models.RevisionInfo, error)
	ListCurrent(ctx context.Context, filter models.CurrentFilter) ([]T, error)
	SoftDelete(ctx context.Context, id string, message string) (*T, error)
	AllCurrent(ctx context.Context) ([]models.Revisioned, error)
}

type entityServiceImpl[T any, PT models.RevisionedPtr[T]] struct {
	repo       repository.RevisionRepository[T]
	usage      UsageService
	assets     repository.AssetRepository
	validate   *validator.Validate
	checks     []EntityChecker[T]
	retries    int
	now        func() time.Time
	logService LogService
}

func newEntityService[T any, PT models.RevisionedPtr[T]](
	repo repository.RevisionRepository[T],
	usage UsageService,
	assets repository.AssetRepository,
	logService LogService,
	configuration *config.Configuration,
	checks ...EntityChecker[T],
) *entityServiceImpl[T, PT] {
	retries := configuration.Server.RevisionRetries
	if retries < 1 {
		retries = 1
	}
	return &entityServiceImpl[T, PT]{
		repo:       repo,
		usage:      usage,
		assets:     assets,
		validate:   NewValidator(),
		checks:     checks,
		retries:    retries,
		now:        time.Now,
		logService: logService,
	}
}

func (s *entityServiceImpl[T, PT]) Create(ctx context.Context, entity *T, message string) (*T, error) {
	id := PT(entity).EntityID()
	if id == "" {
		id = uuid.NewString()
	}
	return s.CreateRevisionAt(ctx, id, entity, message, 0)
}

func (s *entityServiceImpl[T, PT]) CreateRevision(ctx context.Context, id string, entity *T, message string) (*T, error) {
	prior, err := s.repo.LatestRevision(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.CreateRevisionAt(ctx, id, entity, message, prior)
}

func (s *entityServiceImpl[T, PT]) CreateRevisionAt(ctx context.Context, id string, entity *T, message string, expectedPrior int) (*T, error) {
	if err := s.prepare(ctx, id, entity, message); err != nil {
		return nil, err
	}
	return s.insert(ctx, entity, expectedPrior)
}

// prepare stamps the revision metadata and validates the entity.
func (s *entityServiceImpl[T, PT]) prepare(ctx context.Context, id string, entity *T, message string) error {
	if id == "" {
		return models.NewValidationError("id is required")
	}
	obj := PT(entity)
	obj.SetEntityID(id)
	meta := obj.RevisionMeta()
	meta.Number = 0
	meta.Dt = s.now().UTC()
	meta.Message = message

	if err := validateStruct(ctx, s.validate, entity); err != nil {
		return err
	}

	problems, err := s.checkAssets(ctx, obj.AssetRefs())
	if err != nil {
		return err
	}
	for _, check := range s.checks {
		found, err := check(ctx, entity)
		if err != nil {
			return err
		}
		problems = append(problems, found...)
	}
	if len(problems) > 0 {
		return models.NewValidationError(problems...)
	}
	return nil
}

func (s *entityServiceImpl[T, PT]) checkAssets(ctx context.Context, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	assets, err := s.assets.FindByIDs(ctx, refs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Asset, len(assets))
	for _, asset := range assets {
		byID[asset.ID] = asset
	}
	var problems []string
	for _, ref := range refs {
		asset, ok := byID[ref]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("asset %s does not exist", ref))
		case asset.Deleted:
			problems = append(problems, fmt.Sprintf("asset %s is deleted", ref))
		}
	}
	return problems, nil
}

func (s *entityServiceImpl[T, PT]) insert(ctx context.Context, entity *T, prior int) (*T, error) {
	if err := s.repo.InsertAt(ctx, entity, prior); err != nil {
		return nil, err
	}
	obj := PT(entity)
	if err := s.usage.Recompute(ctx, obj); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"entity":   s.repo.Table(),
			"id":       obj.EntityID(),
			"revision": obj.RevisionMeta().Number,
			"error":    err.Error(),
		}).Warn("Failed to recompute asset usage")
	}
	return entity, nil
}

func (s *entityServiceImpl[T, PT]) GetCurrent(ctx context.Context, id string) (*T, error) {
	return s.repo.FindCurrent(ctx, id)
}

func (s *entityServiceImpl[T, PT]) GetRevision(ctx context.Context, id string, revision int) (*T, error) {
	return s.repo.FindRevision(ctx, id, revision)
}

func (s *entityServiceImpl[T, PT]) ListHistory(ctx context.Context, id string) ([]models.RevisionInfo, error) {
	return s.repo.History(ctx, id)
}

func (s *entityServiceImpl[T, PT]) ListCurrent(ctx context.Context, filter models.CurrentFilter) ([]T, error) {
	return s.repo.ListCurrent(ctx, filter)
}

// SoftDelete appends a deleted copy of the current revision. A conflict
// re-reads the current revision, so edits committed meanwhile are kept.
func (s *entityServiceImpl[T, PT]) SoftDelete(ctx context.Context, id string, message string) (*T, error) {
	if message == "" {
		message = "deleted"
	}
	for attempt := 1; ; attempt++ {
		current, err := s.repo.FindCurrent(ctx, id)
		if err != nil {
			return nil, err
		}
		prior := PT(current).RevisionMeta().Number
		PT(current).SetDeleted(true)

		deleted, err := s.CreateRevisionAt(ctx, id, current, message, prior)
		if err == nil || !errors.Is(err, models.ErrConflict) || attempt >= s.retries {
			return deleted, err
		}
		s.logService.Log.WithFields(logrus.Fields{
			"entity":  s.repo.Table(),
			"id":      id,
			"attempt": attempt,
		}).Debug("Revision conflict while deleting, retrying")
	}
}

func (s *entityServiceImpl[T, PT]) AllCurrent(ctx context.Context) ([]models.Revisioned, error) {
	entities, err := s.repo.ListCurrent(ctx, models.CurrentFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]models.Revisioned, 0, len(entities))
	for i := range entities {
		out = append(out, PT(&entities[i]))
	}
	return out, nil
}
