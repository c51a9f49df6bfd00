package profile

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// RegisterRoutes registers the singleton profile routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
	router.GET("", Get(deps))
	router.DELETE("", Delete(deps))
}
