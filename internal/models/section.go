package models

type Section struct {
	ID    string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Color string `gorm:"type:varchar(7);not null" json:"color" validate:"required,hexcolor"`
	Rank  int    `gorm:"not null" json:"rank" validate:"min=0"`
}

func (Section) TableName() string { return "sections" }

type Category struct {
	ID      string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	IconSVG string `gorm:"column:icon_svg;type:text;not null" json:"icon_svg" validate:"required"`
}

func (Category) TableName() string { return "categories" }
