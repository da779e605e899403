package handlers

import (
	"net/http"
	"strings"

	"github.com/astevens246/auth-fantasy-football/internal/dto"
	apierrors "github.com/astevens246/auth-fantasy-football/internal/errors"
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/services"
	"github.com/astevens246/auth-fantasy-football/internal/utils"
	"github.com/gin-gonic/gin"
)

// PlayerHandler coordinates player catalog HTTP handlers.
type PlayerHandler struct {
	playerService *services.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers returns a page of the player catalog. Supports filtering by
// position and by free agency.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	var position *models.Position
	if posStr := c.Query("position"); posStr != "" {
		pos := models.Position(strings.ToUpper(strings.TrimSpace(posStr)))
		if !pos.Valid() {
			apierrors.BadRequest(c, "Invalid position filter")
			return
		}
		position = &pos
	}

	freeAgents := c.Query("free_agents") == "true" || c.Query("free_agents") == "1"

	params := utils.GetPaginationParams(c)

	players, total, err := h.playerService.ListPlayers(services.ListPlayersInput{
		Position:       position,
		FreeAgentsOnly: freeAgents,
		Page:           params.Page,
		PageSize:       params.Limit,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch players")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": dto.ToPlayerDTOs(players),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
