package episodios

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// GetByID returns a single episode
// @Summary      Get an episode
// @Tags         episodios
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.EpisodioResponse "Episode"
// @Failure      400 {object} types.ErrorResponse "Invalid id"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /episodios/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episodio, err := deps.EpisodioService.Get(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromEpisodio(episodio))
	}
}
