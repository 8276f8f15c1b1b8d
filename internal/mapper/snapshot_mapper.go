package mapper

import (
	"TrailGuide/internal/dto"
	"TrailGuide/internal/models"
)

// ToSectionsWithStations nests stations under their sections, keeping the
// order of both slices.
func ToSectionsWithStations(sections []models.Section, stations []models.Station) []dto.SectionWithStations {
	out := make([]dto.SectionWithStations, 0, len(sections))
	index := make(map[string]int, len(sections))
	for _, section := range sections {
		index[section.ID] = len(out)
		out = append(out, dto.SectionWithStations{
			ID:    section.ID,
			Title: section.Title,
			Color: section.Color,
			Rank:  section.Rank,
			Data:  []models.Station{},
		})
	}
	for _, station := range stations {
		if i, ok := index[station.Section]; ok {
			out[i].Data = append(out[i].Data, station)
		}
	}
	return out
}

// ToModalsByID keys modals by their ID, the shape of modals.json.
func ToModalsByID(modals []models.Modal) map[string]models.Modal {
	out := make(map[string]models.Modal, len(modals))
	for _, modal := range modals {
		out[modal.ID] = modal
	}
	return out
}

func ToReleaseMetadata(release *models.Release) dto.ReleaseMetadata {
	return dto.ReleaseMetadata{Release: dto.ReleaseInfo{
		Version:      release.Version,
		ReleaseNotes: release.ReleaseNotes,
		BundlePath:   release.BundlePath,
		BundleSize:   release.BundleSize,
	}}
}
