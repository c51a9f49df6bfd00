package episodios

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// Delete removes an episode
// @Summary      Remove an episode
// @Tags         episodios
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.EpisodioDeletedResponse "Removal confirmation"
// @Failure      400 {object} types.ErrorResponse "Invalid id"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /episodios/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		removed, err := deps.EpisodioService.Delete(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.EpisodioDeletedResponse{
			Message: "episode removed",
			ID:      removed.ID,
			Titulo:  removed.Titulo,
		})
	}
}
