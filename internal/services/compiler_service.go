package services

import (
	"TrailGuide/internal/dto"
	"TrailGuide/internal/helpers"
	"TrailGuide/internal/mapper"
	"TrailGuide/internal/models"
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

type CompilerService interface {
	// BuildSnapshot compiles the enabled, non-deleted current content that is
	// visible today.
	BuildSnapshot(ctx context.Context) (*dto.Snapshot, error)
	SectionsWithStations(snapshot *dto.Snapshot) []dto.SectionWithStations
}

// Clock returns the current time. Visibility windows are evaluated against
// its local month and day.
type Clock func() time.Time

type compilerServiceImpl struct {
	stationService  StationService
	pageService     PageService
	modalService    ModalService
	sectionService  SectionService
	categoryService CategoryService
	layerService    LayerService
	settingsService SettingsService
	clock           Clock
}

func NewClock() Clock {
	return time.Now
}

func NewCompilerService(
	stationService StationService,
	pageService PageService,
	modalService ModalService,
	sectionService SectionService,
	categoryService CategoryService,
	layerService LayerService,
	settingsService SettingsService,
	clock Clock,
) CompilerService {
	return &compilerServiceImpl{
		stationService:  stationService,
		pageService:     pageService,
		modalService:    modalService,
		sectionService:  sectionService,
		categoryService: categoryService,
		layerService:    layerService,
		settingsService: settingsService,
		clock:           clock,
	}
}

func publishedFilter() models.CurrentFilter {
	enabled, deleted := true, false
	return models.CurrentFilter{Enabled: &enabled, Deleted: &deleted}
}

func (s *compilerServiceImpl) BuildSnapshot(ctx context.Context) (*dto.Snapshot, error) {
	snapshot := &dto.Snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snapshot.Sections, err = s.sectionService.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Categories, err = s.categoryService.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Stations, err = s.stationService.ListCurrent(ctx, publishedFilter())
		return err
	})
	g.Go(func() (err error) {
		snapshot.Pages, err = s.pageService.ListCurrent(ctx, publishedFilter())
		return err
	})
	g.Go(func() (err error) {
		snapshot.Modals, err = s.modalService.ListCurrent(ctx, publishedFilter())
		return err
	})
	g.Go(func() (err error) {
		snapshot.Layers, err = s.layerService.List(ctx, true)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Settings, err = s.settingsService.Get(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sectionRank := make(map[string]int, len(snapshot.Sections))
	for _, section := range snapshot.Sections {
		sectionRank[section.ID] = section.Rank
	}

	today := helpers.MonthDay(s.clock().Local())
	visible := make([]models.Station, 0, len(snapshot.Stations))
	for _, station := range snapshot.Stations {
		if helpers.InWindow(station.Visible.From, station.Visible.To, today) {
			visible = append(visible, station)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		if ra, rb := sectionRank[a.Section], sectionRank[b.Section]; ra != rb {
			return ra < rb
		}
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.Title < b.Title
	})
	snapshot.Stations = visible

	sort.SliceStable(snapshot.Pages, func(i, j int) bool { return snapshot.Pages[i].Rank < snapshot.Pages[j].Rank })
	sort.SliceStable(snapshot.Modals, func(i, j int) bool { return snapshot.Modals[i].Rank < snapshot.Modals[j].Rank })

	return snapshot, nil
}

func (s *compilerServiceImpl) SectionsWithStations(snapshot *dto.Snapshot) []dto.SectionWithStations {
	return mapper.ToSectionsWithStations(snapshot.Sections, snapshot.Stations)
}
