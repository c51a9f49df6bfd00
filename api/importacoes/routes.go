package importacoes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// RegisterRoutes registers feed import routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/feed-rss", PostFeedRSS(deps))
}
