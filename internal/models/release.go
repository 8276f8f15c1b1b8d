package models

import (
	"time"
)

// Release rows are append-only apart from the one-way transition to published.
type Release struct {
	Version      uint       `gorm:"primaryKey;autoIncrement" json:"version"`
	ReleaseNotes string     `gorm:"type:text" json:"release_notes"`
	BundlePath   string     `gorm:"type:varchar(255);not null" json:"bundle_path"`
	BundleSize   int64      `gorm:"not null" json:"bundle_size"`
	SubmittedDt  time.Time  `gorm:"column:submitted_dt;not null" json:"submitted_dt"`
	PublishedDt  *time.Time `gorm:"column:published_dt" json:"published_dt"`
}

func (Release) TableName() string { return "releases" }

func (r *Release) Published() bool {
	return r.PublishedDt != nil
}
