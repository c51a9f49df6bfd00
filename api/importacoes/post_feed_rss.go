package importacoes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-profile-api/api/types"
)

// PostFeedRSS imports the profile and episodes of an RSS feed
// @Summary      Import an RSS feed
// @Description  Creates the profile from the channel when none exists and adds up to 10 entries as episodes.
// @Description  Entries whose title is already stored are skipped and reported in errors.
// @Tags         importacoes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body types.FeedImportRequest true "Feed URL"
// @Success      200 {object} types.ImportResponse "Created profile and episodes plus per-item errors"
// @Failure      400 {object} types.ErrorResponse "Invalid or unreachable feed"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /importacoes/feed-rss [post]
func PostFeedRSS(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.FeedImportRequest
		if !types.BindOrError(c, &req) {
			return
		}

		result, err := deps.FeedImporter.ImportFeed(c.Request.Context(), req.Feed)
		if err != nil {
			types.SendError(c, err)
			return
		}

		log.Printf("[INFO] Feed %s imported: %d episodes, %d errors", req.Feed, len(result.Episodes), len(result.Errors))
		c.JSON(http.StatusOK, types.FromImportResult(result))
	}
}
