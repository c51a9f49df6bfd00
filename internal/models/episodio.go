package models

import "time"

// Episodio is a single podcast episode, unique by title
type Episodio struct {
	ID           uint      `json:"id" gorm:"column:pk_episodio;primaryKey"`
	Titulo       string    `json:"titulo" gorm:"size:255;uniqueIndex;not null"`
	Audio        string    `json:"audio" gorm:"size:500"`
	Capa         string    `json:"capa" gorm:"size:500"`
	Descricao    string    `json:"descricao" gorm:"type:text"`
	DataInsercao time.Time `json:"data_insercao" gorm:"autoCreateTime;index"`
}

// TableName keeps the table name singular
func (Episodio) TableName() string {
	return "episodio"
}
