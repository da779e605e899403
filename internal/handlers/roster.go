package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/astevens246/auth-fantasy-football/internal/errors"
	"github.com/astevens246/auth-fantasy-football/internal/middleware"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
	"github.com/astevens246/auth-fantasy-football/internal/services"
	"github.com/gin-gonic/gin"
)

// RosterHandler coordinates roster move HTTP handlers.
type RosterHandler struct {
	rosterService *services.RosterService
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// AddPlayer claims a free agent for the team loaded by the ownership
// middleware.
func (h *RosterHandler) AddPlayer(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	if err := h.rosterService.AddPlayer(userID, team.ID, playerID); err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Player added to roster",
	})
}

// RemovePlayer releases a player from the team's roster.
func (h *RosterHandler) RemovePlayer(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	if err := h.rosterService.RemovePlayer(userID, team.ID, playerID); err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Player removed from roster",
	})
}

// parsePlayerID reads the :playerID parameter. Malformed IDs answer with
// the same generic 404 as unknown ones.
func parsePlayerID(c *gin.Context) (uint64, bool) {
	playerID, err := strconv.ParseUint(c.Param("playerID"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Player not found")
		return 0, false
	}
	return playerID, true
}

func respondRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTeamOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTeamInactive):
		apierrors.ConflictWithCode(c, apierrors.ErrCodeTeamInactive, err.Error())
	case errors.Is(err, services.ErrPlayerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, roster.ErrPlayerUnavailable):
		apierrors.ConflictWithCode(c, apierrors.ErrCodePlayerUnavailable, err.Error())
	case errors.Is(err, roster.ErrPlayerNotOnTeam):
		apierrors.ConflictWithCode(c, apierrors.ErrCodePlayerNotOnTeam, err.Error())
	case errors.Is(err, roster.ErrRosterFull):
		apierrors.ConflictWithCode(c, apierrors.ErrCodeRosterFull, err.Error())
	case errors.Is(err, roster.ErrPositionLimitReached):
		apierrors.ConflictWithCode(c, apierrors.ErrCodePositionLimitReached, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
