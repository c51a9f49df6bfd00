package episodios

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
	"github.com/killallgit/podcast-profile-api/internal/services/episodios"
)

// Put replaces the editable fields of an episode
// @Summary      Update an episode
// @Description  Overwrites titulo, descricao, capa and audio. The insertion time is kept.
// @Tags         episodios
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id path int true "Episode ID"
// @Param        request body types.EpisodioRequest true "Episode"
// @Success      200 {object} types.EpisodioResponse "Updated episode"
// @Failure      400 {object} types.ErrorResponse "Invalid id, body or store failure"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Failure      409 {object} types.ErrorResponse "Title already used by another episode"
// @Router       /episodios/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.EpisodioRequest
		if !types.BindOrError(c, &req) {
			return
		}

		episodio, err := deps.EpisodioService.Update(c.Request.Context(), id, episodios.Input{
			Titulo:    req.Titulo,
			Descricao: req.Descricao,
			Capa:      req.Capa,
			Audio:     req.Audio,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromEpisodio(episodio))
	}
}
