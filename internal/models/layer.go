package models

import (
	"gorm.io/datatypes"
)

type Layer struct {
	ID      string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name    string         `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	GeoJSON datatypes.JSON `gorm:"column:geojson" json:"geojson" validate:"required"`
	Enabled bool           `gorm:"not null" json:"enabled"`
	Rank    int            `gorm:"not null" json:"rank" validate:"min=0"`
}

func (Layer) TableName() string { return "layers" }
