package models

import "time"

// Profile is the podcast-level metadata record. At most one row exists.
type Profile struct {
	ID           uint      `json:"id" gorm:"column:pk_profile;primaryKey"`
	Nome         string    `json:"nome" gorm:"size:255;uniqueIndex;not null"`
	Autor        string    `json:"autor" gorm:"size:140"`
	Descricao    string    `json:"descricao" gorm:"type:text"`
	Capa         string    `json:"capa" gorm:"size:500"`
	DataInsercao time.Time `json:"data_insercao" gorm:"autoCreateTime"`
}

// TableName keeps the table name singular
func (Profile) TableName() string {
	return "profile"
}
