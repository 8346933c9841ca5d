package routes

import (
	"time"

	"team-feedback-backend/internal/api/handlers"
	"team-feedback-backend/internal/api/middleware"
	"team-feedback-backend/internal/auth"
	"team-feedback-backend/internal/config"
	"team-feedback-backend/internal/repository"
	"team-feedback-backend/internal/service"
	"team-feedback-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, assets storage.AssetStore) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	keyMomentRepo := repository.NewKeyMomentRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	recordingRepo := repository.NewFullGameRecordingRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	userService := service.NewUserService(userRepo, playerRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, playerRepo, validator)
	playerService := service.NewPlayerService(playerRepo, teamRepo, validator)
	gameService := service.NewGameService(gameRepo, teamRepo, keyMomentRepo, transcriptRepo, recordingRepo, assets, validator)
	keyMomentService := service.NewKeyMomentService(keyMomentRepo, gameRepo, playerRepo, transcriptRepo, assets, validator)
	transcriptService := service.NewTranscriptService(transcriptRepo, keyMomentRepo, validator)
	inviteService := service.NewInviteService(inviteRepo, teamRepo, userRepo, notificationRepo, validator)
	commentService := service.NewCommentService(commentRepo, keyMomentRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo)
	feedbackService := service.NewFeedbackService(transcriptRepo, keyMomentRepo, recordingRepo, gameRepo, playerRepo, userRepo)
	rosterService := service.NewRosterService(teamRepo, playerRepo, userRepo, gameRepo, keyMomentRepo, transcriptRepo, recordingRepo, inviteRepo, notificationRepo, assets, validator)

	// Auth
	authService := auth.NewAuthService(cfg.JWTSecret, tokenTTL)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService, rosterService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	gameHandler := handlers.NewGameHandler(gameService)
	keyMomentHandler := handlers.NewKeyMomentHandler(keyMomentService)
	transcriptHandler := handlers.NewTranscriptHandler(transcriptService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	commentHandler := handlers.NewCommentHandler(commentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Registration is the only open endpoint
	router.POST("/api/v1/users", userHandler.CreateUser)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetCurrentUser)
			users.PUT("/me", userHandler.UpdateUser)
			users.GET("/:id", userHandler.GetUser)
		}

		players := v1.Group("/players")
		{
			players.GET("/me", playerHandler.GetCurrentPlayer)
			players.GET("/:id", playerHandler.GetPlayer)
			players.PATCH("/:id/teams/:team_id", playerHandler.UpdateEnrollment)
		}

		teams := v1.Group("/teams")
		{
			teams.POST("", authMiddleware.RequireCoach(), teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.POST("/join", teamHandler.JoinTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", authMiddleware.RequireCoach(), teamHandler.UpdateTeam)
			teams.DELETE("/:id", authMiddleware.RequireCoach(), teamHandler.DeleteTeam)
			teams.POST("/:id/access-code", authMiddleware.RequireCoach(), teamHandler.RotateAccessCode)
			teams.GET("/:id/roster", teamHandler.GetRoster)
			teams.GET("/:id/games", gameHandler.GetGamesByTeam)
			teams.GET("/:id/invites", inviteHandler.GetInvitesByTeam)
		}

		games := v1.Group("/games")
		{
			games.POST("", authMiddleware.RequireCoach(), gameHandler.CreateGame)
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", authMiddleware.RequireCoach(), gameHandler.UpdateGame)
			games.DELETE("/:id", authMiddleware.RequireCoach(), gameHandler.DeleteGame)
			games.PUT("/:id/recording", authMiddleware.RequireCoach(), gameHandler.AttachRecording)
			games.GET("/:id/key-moments", keyMomentHandler.GetKeyMomentsByGame)
			games.GET("/:id/feedback", feedbackHandler.GetGameFeedback)
			games.GET("/:id/feedback/full-game", feedbackHandler.GetGameFeedbackWithFullGame)
			games.GET("/:id/feedback/preview", feedbackHandler.GetGameFeedbackPreview)
		}

		keyMoments := v1.Group("/key-moments")
		{
			keyMoments.POST("", authMiddleware.RequireCoach(), keyMomentHandler.CreateKeyMoment)
			keyMoments.GET("/:id", keyMomentHandler.GetKeyMoment)
			keyMoments.DELETE("/:id", authMiddleware.RequireCoach(), keyMomentHandler.DeleteKeyMoment)
			keyMoments.GET("/:id/comments", commentHandler.GetCommentsByKeyMoment)
		}

		transcripts := v1.Group("/transcripts")
		{
			transcripts.POST("", authMiddleware.RequireCoach(), transcriptHandler.CreateTranscript)
			transcripts.GET("/:id", transcriptHandler.GetTranscript)
			transcripts.PUT("/:id", authMiddleware.RequireCoach(), transcriptHandler.UpdateTranscript)
			transcripts.DELETE("/:id", authMiddleware.RequireCoach(), transcriptHandler.DeleteTranscript)
		}

		invites := v1.Group("/invites")
		{
			invites.POST("", authMiddleware.RequireCoach(), inviteHandler.CreateInvite)
			invites.POST("/:id/accept", inviteHandler.AcceptInvite)
			invites.POST("/:id/decline", inviteHandler.DeclineInvite)
			invites.DELETE("/:id", authMiddleware.RequireCoach(), inviteHandler.DeleteInvite)
		}

		comments := v1.Group("/comments")
		{
			comments.POST("", commentHandler.CreateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}

	return router
}
