package types

import "time"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message" example:"episodio with id 7 not found"`
}

// EpisodioResponse represents a stored episode
type EpisodioResponse struct {
	ID           uint      `json:"id" example:"1"`
	Titulo       string    `json:"titulo" example:"NerdCast 961 - Qual é a pauta?"`
	Descricao    string    `json:"descricao" example:"Sem pauta definida"`
	Capa         string    `json:"capa" example:"https://example.com/capa.jpg"`
	Audio        string    `json:"audio" example:"https://example.com/audio.mp3"`
	DataInsercao time.Time `json:"data_insercao" example:"2025-01-02T15:04:05Z"`
}

// EpisodiosResponse lists episodes newest first
type EpisodiosResponse struct {
	Episodios []EpisodioResponse `json:"episodios"`
}

// EpisodioDeletedResponse confirms an episode removal
type EpisodioDeletedResponse struct {
	Message string `json:"message" example:"episode removed"`
	ID      uint   `json:"id" example:"1"`
	Titulo  string `json:"titulo" example:"NerdCast 961 - Qual é a pauta?"`
}

// ProfileResponse represents the podcast profile. Every field is omitted when
// no profile exists, which renders as an empty object.
type ProfileResponse struct {
	ID           *uint      `json:"id,omitempty" example:"1"`
	Nome         *string    `json:"nome,omitempty" example:"NerdCast"`
	Autor        *string    `json:"autor,omitempty" example:"Jovem Nerd"`
	Descricao    *string    `json:"descricao,omitempty" example:"O mundo vira piada no Jovem Nerd"`
	Capa         *string    `json:"capa,omitempty" example:"https://example.com/nc-feed.jpg"`
	DataInsercao *time.Time `json:"data_insercao,omitempty" example:"2025-01-02T15:04:05Z"`
}

// ProfileDeletedResponse confirms a profile removal
type ProfileDeletedResponse struct {
	Message string `json:"message" example:"profile removed"`
	ID      uint   `json:"id" example:"1"`
	Nome    string `json:"nome" example:"NerdCast"`
}

// ImportResponse reports what a feed import created and what it skipped
type ImportResponse struct {
	Profile   ProfileResponse    `json:"profile"`
	Episodios []EpisodioResponse `json:"episodios"`
	Errors    []string           `json:"errors"`
}
