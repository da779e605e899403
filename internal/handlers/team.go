package handlers

import (
	"errors"
	"net/http"

	"github.com/astevens246/auth-fantasy-football/internal/dto"
	apierrors "github.com/astevens246/auth-fantasy-football/internal/errors"
	"github.com/astevens246/auth-fantasy-football/internal/middleware"
	"github.com/astevens246/auth-fantasy-football/internal/services"
	"github.com/gin-gonic/gin"
)

// TeamHandler coordinates team lifecycle HTTP handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams returns the current user's teams in insertion order.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teams, err := h.teamService.ListTeams(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch teams")
		return
	}

	teamDTOs := make([]dto.TeamDTO, len(teams))
	for i := range teams {
		teamDTOs[i] = dto.ToTeamDTO(teams[i], services.IsTeamActive(&teams[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": teamDTOs,
	})
}

// CreateTeam creates a team owned by the current user.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTeamRequest struct {
		Name string `json:"name" binding:"required,min=3,max=100"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(userID, req.Name)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team, services.IsTeamActive(team)))
}

// GetTeam returns the team loaded by the ownership middleware together
// with its roster and fresh stats.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	loaded, players, stats, err := h.teamService.GetTeamWithRoster(userID, team.ID)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeamDetailDTO{
		Team:    dto.ToTeamDTO(*loaded, services.IsTeamActive(loaded)),
		Players: dto.ToPlayerDTOs(players),
		Stats:   stats,
	})
}

// RenameTeam changes the team's name.
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	type RenameTeamRequest struct {
		Name string `json:"name" binding:"required,min=3,max=100"`
	}

	var req RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	renamed, err := h.teamService.RenameTeam(userID, team.ID, req.Name)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*renamed, services.IsTeamActive(renamed)))
}

// DeleteTeam removes the team and releases its roster. Deletion is
// allowed for inactive teams as well.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	if err := h.teamService.DeleteTeam(userID, team.ID); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team deleted successfully",
	})
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTeamOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTeamInactive):
		apierrors.ConflictWithCode(c, apierrors.ErrCodeTeamInactive, err.Error())
	case errors.Is(err, services.ErrInvalidTeamName):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
