package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// Get returns the podcast profile, or an empty object when none exists
// @Summary      Get the podcast profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} types.ProfileResponse "Profile, empty when not registered"
// @Failure      400 {object} types.ErrorResponse "Store failure"
// @Router       /profile [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := deps.ProfileService.Get(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.FromProfile(current))
	}
}
