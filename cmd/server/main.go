package main

import (
	"log"
	"net/http"

	"github.com/astevens246/auth-fantasy-football/internal/config"
	"github.com/astevens246/auth-fantasy-football/internal/constants"
	"github.com/astevens246/auth-fantasy-football/internal/database"
	"github.com/astevens246/auth-fantasy-football/internal/handlers"
	"github.com/astevens246/auth-fantasy-football/internal/logging"
	"github.com/astevens246/auth-fantasy-football/internal/middleware"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"github.com/astevens246/auth-fantasy-football/internal/services"
	"github.com/astevens246/auth-fantasy-football/internal/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Session cookies
	sessionSecret := cfg.SessionSecret
	if sessionSecret == "" {
		sessionSecret, err = utils.GenerateSessionSecret()
		if err != nil {
			logger.Fatal("failed to generate session secret", zap.Error(err))
		}
		logger.Warn("SESSION_SECRET is not set; sessions will not survive a restart")
	}
	store := cookie.NewStore([]byte(sessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Wire repositories, services and handlers
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)

	authService := services.NewAuthService(userRepo, logger)
	teamService := services.NewTeamService(teamRepo, playerRepo, logger)
	rosterService := services.NewRosterService(teamRepo, playerRepo, logger)
	playerService := services.NewPlayerService(playerRepo)

	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	rosterHandler := handlers.NewRosterHandler(rosterService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Fantasy Football API is running",
		})
	})

	// Auth routes (public)
	r.GET("/", authHandler.Root)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", middleware.RequireAuth(), authHandler.Logout)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	// Team routes (protected; team-scoped routes require ownership)
	teams := r.Group("/teams")
	teams.Use(middleware.RequireAuth())
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("/new", teamHandler.CreateTeam)
		teams.GET("/:id", middleware.RequireTeamOwner(), teamHandler.GetTeam)
		teams.POST("/:id/edit", middleware.RequireTeamOwner(), teamHandler.RenameTeam)
		teams.POST("/:id/delete", middleware.RequireTeamOwner(), teamHandler.DeleteTeam)
		teams.POST("/:id/players/:playerID/add", middleware.RequireTeamOwner(), rosterHandler.AddPlayer)
		teams.POST("/:id/players/:playerID/remove", middleware.RequireTeamOwner(), rosterHandler.RemovePlayer)
	}

	// Player catalog (protected)
	r.GET("/players", middleware.RequireAuth(), playerHandler.ListPlayers)

	// Start server
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
