package episodios

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// GetAll lists every episode, newest first
// @Summary      List episodes
// @Tags         episodios
// @Produce      json
// @Success      200 {object} types.EpisodiosResponse "Episodes, most recently inserted first"
// @Failure      400 {object} types.ErrorResponse "Store failure"
// @Router       /episodios [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.EpisodioService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		log.Printf("[DEBUG] Listing %d episodes", len(list))
		c.JSON(http.StatusOK, types.EpisodiosResponse{Episodios: types.FromEpisodios(list)})
	}
}
