package model

import "time"

// KVItem is one persisted key when the medium is a relational database.
type KVItem struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:longtext" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KVItem) TableName() string {
	return "kv_items"
}
