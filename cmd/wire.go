package cmd

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/handlers"
	"TrailGuide/internal/services"
)

type Server struct {
	Configuration   *config.Configuration
	LogService      services.LogService
	AuthService     services.AuthService
	UsageService    services.UsageService
	AssetService    services.AssetService
	StationService  services.StationService
	PageService     services.PageService
	ModalService    services.ModalService
	JanitorService  *services.Janitor
	StationHandler  *handlers.StationHandler
	PageHandler     *handlers.PageHandler
	ModalHandler    *handlers.ModalHandler
	AssetHandler    *handlers.AssetHandler
	SectionHandler  *handlers.SectionHandler
	CategoryHandler *handlers.CategoryHandler
	LayerHandler    *handlers.LayerHandler
	ReleaseHandler  *handlers.ReleaseHandler
	SettingsHandler *handlers.SettingsHandler
	FeedbackHandler *handlers.FeedbackHandler
	SnapshotHandler *handlers.SnapshotHandler
	InfoHandler     *handlers.InfoHandler
	TokenHandler    *handlers.TokenHandler
	JanitorHandler  *handlers.JanitorHandler
}

// Sources lists the revisioned content services for usage rebuilds.
func (s *Server) Sources() []services.RevisionedSource {
	return []services.RevisionedSource{s.StationService, s.PageService, s.ModalService}
}
