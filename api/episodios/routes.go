package episodios

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
	router.GET("", GetAll(deps))
	router.GET("/:id", GetByID(deps))
	router.PUT("/:id", Put(deps))
	router.DELETE("/:id", Delete(deps))
}
