package models

type Setting struct {
	Key   string  `gorm:"column:setting_key;primaryKey;type:varchar(64)" json:"key"`
	Value *string `gorm:"column:setting_value;type:text" json:"value"`
}

func (Setting) TableName() string { return "settings" }
