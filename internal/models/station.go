package models

import (
	"gorm.io/datatypes"
)

const (
	ContentTypeHTML    = "html"
	ContentTypeGallery = "gallery"
	ContentTypeQuiz    = "quiz"
)

type GalleryItem struct {
	Asset   string `json:"asset" validate:"required"`
	Caption string `json:"caption,omitempty"`
}

type QuizOption struct {
	Label  string      `json:"label"`
	Answer interface{} `json:"answer"`
}

// ContentBlock is one entry of a station's contents. Which fields are used
// depends on ContentType.
type ContentBlock struct {
	ContentType string `json:"content_type" validate:"required,oneof=html gallery quiz"`
	Title       string `json:"title,omitempty"`

	ContentBeforeFold string `json:"content_before_fold,omitempty"`
	ContentAfterFold  string `json:"content_after_fold,omitempty"`

	Description string        `json:"description,omitempty"`
	Items       []GalleryItem `json:"items,omitempty" validate:"dive"`

	QuizType string       `json:"quiz_type,omitempty" validate:"omitempty,oneof=match_values select_all_that_apply choose_one"`
	Question string       `json:"question,omitempty"`
	Answer   string       `json:"answer,omitempty"`
	Options  []QuizOption `json:"options,omitempty"`
}

type UTMCoordinates struct {
	Zone  string `gorm:"type:varchar(3);not null" json:"zone" validate:"required,utmzone"`
	East  int    `gorm:"not null" json:"east" validate:"min=0"`
	North int    `gorm:"not null" json:"north" validate:"min=0"`
}

// Visibility is an inclusive month-day window (MM-DD). From may be later in the
// year than To, in which case the window wraps through the new year.
type Visibility struct {
	From *string `gorm:"type:varchar(5)" json:"from" validate:"omitempty,monthday"`
	To   *string `gorm:"type:varchar(5)" json:"to" validate:"omitempty,monthday"`
}

type Station struct {
	ID       string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Revision Revision `gorm:"embedded" json:"revision"`

	Title          string         `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	LongTitle      string         `gorm:"type:text" json:"long_title"`
	Subtitle       string         `gorm:"type:text" json:"subtitle"`
	CoordinatesUTM UTMCoordinates `gorm:"embedded;embeddedPrefix:coordinates_utm_" json:"coordinates_utm"`
	Visible        Visibility     `gorm:"embedded;embeddedPrefix:visible_" json:"visible"`

	Section     string                          `gorm:"type:varchar(64);not null;index" json:"section" validate:"required"`
	Category    string                          `gorm:"type:varchar(64);not null;index" json:"category" validate:"required"`
	HeaderImage *string                         `gorm:"type:varchar(64)" json:"header_image"`
	Contents    datatypes.JSONSlice[ContentBlock] `json:"contents" validate:"dive"`

	Enabled bool `gorm:"not null" json:"enabled"`
	Deleted bool `gorm:"not null" json:"deleted"`
	Rank    int  `gorm:"not null" json:"rank" validate:"min=0"`

	// Foreign keys only; never loaded.
	SectionRef  *Section  `gorm:"foreignKey:Section;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CategoryRef *Category `gorm:"foreignKey:Category;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Station) TableName() string { return "stations" }

func (s *Station) EntityID() string        { return s.ID }
func (s *Station) SetEntityID(id string)   { s.ID = id }
func (s *Station) RevisionMeta() *Revision { return &s.Revision }
func (s *Station) IsEnabled() bool         { return s.Enabled }
func (s *Station) IsDeleted() bool         { return s.Deleted }
func (s *Station) SetDeleted(deleted bool) { s.Deleted = deleted }

func (s *Station) AssetRefs() []string {
	refs := refSet{}
	refs.addPtr(s.HeaderImage)
	for _, block := range s.Contents {
		refs.add(ExtractHTMLAssetRefs(block.ContentBeforeFold)...)
		refs.add(ExtractHTMLAssetRefs(block.ContentAfterFold)...)
		refs.add(ExtractHTMLAssetRefs(block.Description)...)
		for _, item := range block.Items {
			refs.add(item.Asset)
		}
	}
	return refs.sorted()
}

func (s *Station) SectionID() string  { return s.Section }
func (s *Station) CategoryID() string { return s.Category }

// Classified is implemented by entities that can be filtered by section and category.
type Classified interface {
	SectionID() string
	CategoryID() string
}
