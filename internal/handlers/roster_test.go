package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/astevens246/auth-fantasy-football/internal/constants"
	"github.com/astevens246/auth-fantasy-football/internal/database"
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"github.com/astevens246/auth-fantasy-football/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RosterHandlerTestSuite defines the test suite for RosterHandler
type RosterHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *RosterHandler
}

// SetupTest runs before each test
func (suite *RosterHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Player{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	teamRepo := repository.NewTeamRepository(suite.db)
	playerRepo := repository.NewPlayerRepository(suite.db)
	rosterService := services.NewRosterService(teamRepo, playerRepo, zap.NewNop())
	suite.handler = NewRosterHandler(rosterService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RosterHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data
func (suite *RosterHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *RosterHandlerTestSuite) createTestTeam(name string, ownerID uint64, createdAt time.Time) *models.Team {
	team := &models.Team{
		Name:      name,
		UserID:    ownerID,
		CreatedAt: createdAt,
	}
	suite.db.Create(team)
	return team
}

func (suite *RosterHandlerTestSuite) createTestPlayer(name string, pos models.Position, teamID *uint64) *models.Player {
	player := &models.Player{
		Name:     name,
		Position: pos,
		NFLTeam:  "FA",
		TeamID:   teamID,
	}
	suite.db.Create(player)
	return player
}

func (suite *RosterHandlerTestSuite) fillTeamRoster(teamID uint64) {
	lineup := map[models.Position]int{
		models.PositionQB: 2,
		models.PositionRB: 3,
		models.PositionWR: 3,
		models.PositionTE: 2,
	}
	for pos, n := range lineup {
		for i := 0; i < n; i++ {
			suite.createTestPlayer(fmt.Sprintf("%s Starter %d", pos, i+1), pos, &teamID)
		}
	}
}

// Helper function to create a context with the user and team already
// resolved, simulating RequireAuth and RequireTeamOwner
func (suite *RosterHandlerTestSuite) rosterMoveContext(userID uint64, team models.Team, playerID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/1/players/"+playerID+"/add", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyTeam, team)
	c.Params = gin.Params{{Key: "playerID", Value: playerID}}

	return c, w
}

func (suite *RosterHandlerTestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	code, _ := response["code"].(string)
	return code
}

// TestAddPlayer_Success tests claiming a free agent
func (suite *RosterHandlerTestSuite) TestAddPlayer_Success() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Draft Team", user.ID, services.SeasonStart)
	player := suite.createTestPlayer("Justin Jefferson", models.PositionWR, nil)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(player.ID))

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player added to roster", response["message"])

	var stored models.Player
	suite.Require().NoError(suite.db.First(&stored, player.ID).Error)
	assert.NotNil(suite.T(), stored.TeamID)
	assert.Equal(suite.T(), team.ID, *stored.TeamID)
}

// TestAddPlayer_MalformedPlayerID tests that a malformed ID is a plain 404
func (suite *RosterHandlerTestSuite) TestAddPlayer_MalformedPlayerID() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Draft Team", user.ID, services.SeasonStart)

	c, w := suite.rosterMoveContext(user.ID, *team, "not-a-number")

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "NOT_FOUND", suite.errorCode(w))
}

// TestAddPlayer_UnknownPlayer tests adding a player that does not exist
func (suite *RosterHandlerTestSuite) TestAddPlayer_UnknownPlayer() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Draft Team", user.ID, services.SeasonStart)

	c, w := suite.rosterMoveContext(user.ID, *team, "9999")

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestAddPlayer_PlayerTaken tests claiming a player rostered elsewhere
func (suite *RosterHandlerTestSuite) TestAddPlayer_PlayerTaken() {
	user := suite.createTestUser("owner")
	rival := suite.createTestUser("rival")
	team := suite.createTestTeam("Draft Team", user.ID, services.SeasonStart)
	rivalTeam := suite.createTestTeam("Rival Team", rival.ID, services.SeasonStart)
	player := suite.createTestPlayer("Taken Player", models.PositionRB, &rivalTeam.ID)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(player.ID))

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "PLAYER_UNAVAILABLE", suite.errorCode(w))
}

// TestAddPlayer_AlreadyOnTeam tests claiming a player already on this team
func (suite *RosterHandlerTestSuite) TestAddPlayer_AlreadyOnTeam() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Draft Team", user.ID, services.SeasonStart)
	player := suite.createTestPlayer("Rostered Player", models.PositionTE, &team.ID)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(player.ID))

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "PLAYER_UNAVAILABLE", suite.errorCode(w))
}

// TestAddPlayer_PositionLimit tests the per-position cap
func (suite *RosterHandlerTestSuite) TestAddPlayer_PositionLimit() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("QB Factory", user.ID, services.SeasonStart)
	suite.createTestPlayer("Josh Allen", models.PositionQB, &team.ID)
	suite.createTestPlayer("Lamar Jackson", models.PositionQB, &team.ID)
	third := suite.createTestPlayer("Jalen Hurts", models.PositionQB, nil)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(third.ID))

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "POSITION_LIMIT_REACHED", suite.errorCode(w))
}

// TestAddPlayer_RosterFull tests the total roster cap
func (suite *RosterHandlerTestSuite) TestAddPlayer_RosterFull() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Full House", user.ID, services.SeasonStart)
	suite.fillTeamRoster(team.ID)
	extra := suite.createTestPlayer("Eleventh Man", models.PositionWR, nil)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(extra.ID))

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "ROSTER_FULL", suite.errorCode(w))
}

// TestAddPlayer_InactiveTeam tests that pre-season relics cannot draft
func (suite *RosterHandlerTestSuite) TestAddPlayer_InactiveTeam() {
	user := suite.createTestUser("owner")
	relic := suite.createTestTeam("Relic Team", user.ID, services.SeasonStart.Add(-time.Hour))
	player := suite.createTestPlayer("Free Agent", models.PositionWR, nil)

	c, w := suite.rosterMoveContext(user.ID, *relic, fmt.Sprint(player.ID))

	suite.handler.AddPlayer(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "TEAM_INACTIVE", suite.errorCode(w))

	var stored models.Player
	suite.Require().NoError(suite.db.First(&stored, player.ID).Error)
	assert.Nil(suite.T(), stored.TeamID)
}

// TestRemovePlayer_Success tests dropping a rostered player
func (suite *RosterHandlerTestSuite) TestRemovePlayer_Success() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Drop Zone", user.ID, services.SeasonStart)
	player := suite.createTestPlayer("Droppable Player", models.PositionRB, &team.ID)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(player.ID))

	suite.handler.RemovePlayer(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Player removed from roster", response["message"])

	var stored models.Player
	suite.Require().NoError(suite.db.First(&stored, player.ID).Error)
	assert.Nil(suite.T(), stored.TeamID)
}

// TestRemovePlayer_NotOnTeam tests dropping a player this team never had
func (suite *RosterHandlerTestSuite) TestRemovePlayer_NotOnTeam() {
	user := suite.createTestUser("owner")
	team := suite.createTestTeam("Drop Zone", user.ID, services.SeasonStart)
	free := suite.createTestPlayer("Free Agent", models.PositionWR, nil)

	c, w := suite.rosterMoveContext(user.ID, *team, fmt.Sprint(free.ID))

	suite.handler.RemovePlayer(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "PLAYER_NOT_ON_TEAM", suite.errorCode(w))
}

// TestSuite runs the test suite
func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}
