package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
	"github.com/killallgit/podcast-profile-api/internal/services/profiles"
)

// Post creates the podcast profile
// @Summary      Add the podcast profile
// @Description  Only one profile may exist. A second create is rejected and the stored profile is kept.
// @Tags         profile
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body types.ProfileRequest true "Profile"
// @Success      200 {object} types.ProfileResponse "Created profile"
// @Failure      400 {object} types.ErrorResponse "Invalid body or store failure"
// @Failure      405 {object} types.ErrorResponse "A profile already exists"
// @Router       /profile [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ProfileRequest
		if !types.BindOrError(c, &req) {
			return
		}

		created, err := deps.ProfileService.Create(c.Request.Context(), profiles.Input{
			Nome:      req.Nome,
			Autor:     req.Autor,
			Descricao: req.Descricao,
			Capa:      req.Capa,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromProfile(created))
	}
}
