package models

type Page struct {
	ID       string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Revision Revision `gorm:"embedded" json:"revision"`

	Title       string  `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Icon        string  `gorm:"type:varchar(64)" json:"icon"`
	LongTitle   string  `gorm:"type:text" json:"long_title"`
	Subtitle    string  `gorm:"type:text" json:"subtitle"`
	HeaderImage *string `gorm:"type:varchar(64)" json:"header_image"`
	Content     string  `gorm:"type:text" json:"content"`

	Enabled bool `gorm:"not null" json:"enabled"`
	Deleted bool `gorm:"not null" json:"deleted"`
	Rank    int  `gorm:"not null" json:"rank" validate:"min=0"`
}

func (Page) TableName() string { return "pages" }

func (p *Page) EntityID() string        { return p.ID }
func (p *Page) SetEntityID(id string)   { p.ID = id }
func (p *Page) RevisionMeta() *Revision { return &p.Revision }
func (p *Page) IsEnabled() bool         { return p.Enabled }
func (p *Page) IsDeleted() bool         { return p.Deleted }
func (p *Page) SetDeleted(deleted bool) { p.Deleted = deleted }

func (p *Page) AssetRefs() []string {
	refs := refSet{}
	refs.addPtr(p.HeaderImage)
	refs.add(ExtractHTMLAssetRefs(p.Content)...)
	return refs.sorted()
}
