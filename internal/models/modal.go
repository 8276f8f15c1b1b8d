package models

type Modal struct {
	ID       string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Revision Revision `gorm:"embedded" json:"revision"`

	Title     string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Content   string `gorm:"type:text" json:"content"`
	CloseText string `gorm:"type:varchar(255)" json:"close_text"`

	Enabled bool `gorm:"not null" json:"enabled"`
	Deleted bool `gorm:"not null" json:"deleted"`
	Rank    int  `gorm:"not null" json:"rank" validate:"min=0"`
}

func (Modal) TableName() string { return "modals" }

func (m *Modal) EntityID() string        { return m.ID }
func (m *Modal) SetEntityID(id string)   { m.ID = id }
func (m *Modal) RevisionMeta() *Revision { return &m.Revision }
func (m *Modal) IsEnabled() bool         { return m.Enabled }
func (m *Modal) IsDeleted() bool         { return m.Deleted }
func (m *Modal) SetDeleted(deleted bool) { m.Deleted = deleted }

func (m *Modal) AssetRefs() []string {
	refs := refSet{}
	refs.add(ExtractHTMLAssetRefs(m.Content)...)
	return refs.sorted()
}
