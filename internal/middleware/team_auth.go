package middleware

import (
	"strconv"

	"github.com/astevens246/auth-fantasy-football/internal/constants"
	"github.com/astevens246/auth-fantasy-football/internal/database"
	apierrors "github.com/astevens246/auth-fantasy-football/internal/errors"
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireTeamOwner loads the team addressed by the :id parameter and
// ensures the authenticated user owns it. Malformed and unknown IDs both
// answer with the same generic 404; a known team owned by someone else is
// a 403. The loaded team is stored in the context for the handler.
func RequireTeamOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamIDStr := c.Param("id")
		teamID, err := strconv.ParseUint(teamIDStr, 10, 64)
		if err != nil {
			apierrors.NotFound(c, "Team not found")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var team models.Team
		if err := database.GetDB().First(&team, teamID).Error; err != nil {
			apierrors.NotFound(c, "Team not found")
			c.Abort()
			return
		}

		if team.UserID != userID {
			apierrors.Forbidden(c, "You do not own this team")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTeam, team)
		c.Next()
	}
}

// GetTeam retrieves the team loaded by RequireTeamOwner from the context
func GetTeam(c *gin.Context) (models.Team, bool) {
	teamInterface, exists := c.Get(constants.ContextKeyTeam)
	if !exists {
		return models.Team{}, false
	}

	team, ok := teamInterface.(models.Team)
	return team, ok
}
