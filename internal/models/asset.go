package models

import (
	"time"
)

const (
	AssetTypeImage          = "image"
	AssetTypeAudio          = "audio"
	AssetTypeVideo          = "video"
	AssetTypeVideoTextTrack = "video_text_track"
	AssetTypePDF            = "pdf"
)

var AssetTypes = []string{
	AssetTypeImage,
	AssetTypeAudio,
	AssetTypeVideo,
	AssetTypeVideoTextTrack,
	AssetTypePDF,
}

type AssetType struct {
	ID string `gorm:"primaryKey;type:varchar(32)" json:"id"`
}

func (AssetType) TableName() string { return "asset_types" }

type Asset struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	AssetType    string    `gorm:"type:varchar(32);not null" json:"asset_type"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize     int64     `gorm:"not null" json:"file_size"`
	SHA1Checksum string    `gorm:"column:sha1_checksum;type:varchar(40);not null;index" json:"sha1_checksum"`
	Enabled      bool      `gorm:"not null" json:"enabled"`
	Deleted      bool      `gorm:"not null" json:"deleted"`
	CreatedAt    time.Time `json:"created_at"`

	TypeRef *AssetType `gorm:"foreignKey:AssetType;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Asset) TableName() string { return "assets" }

// AssetWithUsage is an Asset annotated with how many current revisions use it.
type AssetWithUsage struct {
	Asset
	TimesUsedByAll     int `json:"times_used_by_all"`
	TimesUsedByEnabled int `json:"times_used_by_enabled"`
}

type UsageCount struct {
	All     int
	Enabled int
}
