package models

import (
	"time"
)

const (
	ScopeReadContent   = "read:content"
	ScopeManageContent = "manage:content"
)

type OneTimeToken struct {
	Token  string    `gorm:"primaryKey;type:varchar(64)" json:"token"`
	Scope  string    `gorm:"type:varchar(255);not null" json:"scope"`
	Expiry time.Time `gorm:"not null" json:"expiry"`
}

func (OneTimeToken) TableName() string { return "one_time_tokens" }

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject string
	Scopes  []string
}

func (p *Principal) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
