package types

import (
	"github.com/killallgit/podcast-profile-api/internal/models"
	"github.com/killallgit/podcast-profile-api/internal/services/importer"
)

// FromEpisodio converts a stored episode to its API representation
func FromEpisodio(e *models.Episodio) EpisodioResponse {
	return EpisodioResponse{
		ID:           e.ID,
		Titulo:       e.Titulo,
		Descricao:    e.Descricao,
		Capa:         e.Capa,
		Audio:        e.Audio,
		DataInsercao: e.DataInsercao.UTC(),
	}
}

// FromEpisodios converts a list of episodes, never returning nil
func FromEpisodios(list []models.Episodio) []EpisodioResponse {
	out := make([]EpisodioResponse, 0, len(list))
	for i := range list {
		out = append(out, FromEpisodio(&list[i]))
	}
	return out
}

// FromProfile converts the profile; a nil profile becomes an empty object
func FromProfile(p *models.Profile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	created := p.DataInsercao.UTC()
	return ProfileResponse{
		ID:           &p.ID,
		Nome:         &p.Nome,
		Autor:        &p.Autor,
		Descricao:    &p.Descricao,
		Capa:         &p.Capa,
		DataInsercao: &created,
	}
}

// FromImportResult converts the outcome of a feed import
func FromImportResult(r *importer.Result) ImportResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ImportResponse{
		Profile:   FromProfile(r.Profile),
		Episodios: FromEpisodios(r.Episodes),
		Errors:    errs,
	}
}
