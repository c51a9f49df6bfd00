package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// Delete removes the podcast profile
// @Summary      Remove the podcast profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} types.ProfileDeletedResponse "Removal confirmation"
// @Failure      404 {object} types.ErrorResponse "No profile registered"
// @Router       /profile [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed, err := deps.ProfileService.Delete(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ProfileDeletedResponse{
			Message: "profile removed",
			ID:      removed.ID,
			Nome:    removed.Nome,
		})
	}
}
