package episodios

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
	"github.com/killallgit/podcast-profile-api/internal/services/episodios"
)

// Post creates an episode
// @Summary      Add an episode
// @Description  Adds a new episode. Titles are unique.
// @Tags         episodios
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body types.EpisodioRequest true "Episode"
// @Success      200 {object} types.EpisodioResponse "Created episode"
// @Failure      400 {object} types.ErrorResponse "Invalid body or store failure"
// @Failure      409 {object} types.ErrorResponse "Title already exists"
// @Router       /episodios [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.EpisodioRequest
		if !types.BindOrError(c, &req) {
			return
		}

		episodio, err := deps.EpisodioService.Create(c.Request.Context(), episodios.Input{
			Titulo:    req.Titulo,
			Descricao: req.Descricao,
			Capa:      req.Capa,
			Audio:     req.Audio,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		log.Printf("[DEBUG] Created episode %d via API", episodio.ID)
		c.JSON(http.StatusOK, types.FromEpisodio(episodio))
	}
}
