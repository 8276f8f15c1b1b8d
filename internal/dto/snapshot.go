package dto

import (
	"TrailGuide/internal/models"
)

// Snapshot is the compiled, app-facing view of all published content.
type Snapshot struct {
	Sections   []models.Section   `json:"sections"`
	Categories []models.Category  `json:"categories"`
	Stations   []models.Station   `json:"stations"`
	Pages      []models.Page      `json:"pages"`
	Modals     []models.Modal     `json:"modals"`
	Layers     []models.Layer     `json:"layers"`
	Settings   map[string]*string `json:"settings"`
}

type SectionWithStations struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Color string           `json:"color"`
	Rank  int              `json:"rank"`
	Data  []models.Station `json:"data"`
}

type ReleaseMetadata struct {
	Release ReleaseInfo `json:"release"`
}

type ReleaseInfo struct {
	Version      uint   `json:"version"`
	ReleaseNotes string `json:"release_notes"`
	BundlePath   string `json:"bundle_path"`
	BundleSize   int64  `json:"bundle_size"`
}

// RevisionMessage picks the optional revision_msg out of a write body.
type RevisionMessage struct {
	RevisionMsg string `json:"revision_msg"`
}
