package models

import (
	"time"
)

// Revision is embedded by every revisioned entity. Together with the entity ID
// its number forms the primary key of a revision row; rows are never updated.
type Revision struct {
	Number  int       `gorm:"column:revision;primaryKey;autoIncrement:false" json:"number"`
	Dt      time.Time `gorm:"column:revision_dt;not null" json:"dt"`
	Message string    `gorm:"column:revision_msg;type:text" json:"message"`
}

// Revisioned is implemented by the pointer types of Station, Page and Modal.
type Revisioned interface {
	TableName() string
	EntityID() string
	SetEntityID(id string)
	RevisionMeta() *Revision
	IsEnabled() bool
	IsDeleted() bool
	SetDeleted(deleted bool)
	AssetRefs() []string
}

type RevisionedPtr[T any] interface {
	*T
	Revisioned
}

// CurrentRevision is a row of a <table>_current_revision pointer table.
type CurrentRevision struct {
	ID       string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Revision int    `gorm:"not null" json:"revision"`
}

// AssetUsage is a row of a <table>_assets_used table.
type AssetUsage struct {
	ObjID    string `gorm:"primaryKey;type:varchar(64)" json:"obj_id"`
	Revision int    `gorm:"primaryKey;autoIncrement:false" json:"revision"`
	AssetID  string `gorm:"primaryKey;type:varchar(64)" json:"asset_id"`
}

// CurrentFilter narrows a listing of current revisions. Nil booleans are not
// applied; Section and Category only apply to stations.
type CurrentFilter struct {
	Enabled  *bool
	Deleted  *bool
	Section  string
	Category string
}

func CurrentTable(table string) string {
	return table + "_current_revision"
}

func UsageTable(table string) string {
	return table + "_assets_used"
}

// RevisionInfo is one entry of an entity's history.
type RevisionInfo struct {
	Number  int       `gorm:"column:revision" json:"revision"`
	Dt      time.Time `gorm:"column:revision_dt" json:"revision_dt"`
	Message string    `gorm:"column:revision_msg" json:"revision_msg"`
}
