package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/config"
	"github.com/preptalk/preptalk/database"
	_ "github.com/preptalk/preptalk/docs" // Swagger docs
	"github.com/preptalk/preptalk/internal/controller"
	"github.com/preptalk/preptalk/internal/logger"
	"github.com/preptalk/preptalk/internal/middleware"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/preptalk/preptalk/internal/service"
	"github.com/preptalk/preptalk/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PrepTalk API
// @version 1.0
// @description Interview preparation platform: question catalog, mock interview sessions with scored answers, forum and uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewBlobStore,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewInterviewRepository,
			repository.NewPostRepository,
		),

		// Services
		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewQuestionService,
			service.NewForumService,
			NewAnswerScorer,
			service.NewInterviewService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewQuestionController,
			controller.NewInterviewController,
			controller.NewForumController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewBlobStore picks the configured upload backend.
func NewBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.Upload.Backend == "minio" {
		return storage.NewMinioStore(
			cfg.Upload.MinioEndpoint,
			cfg.Upload.MinioAccessKey,
			cfg.Upload.MinioSecretKey,
			cfg.Upload.MinioBucket,
			cfg.Upload.MinioUseSSL,
		)
	}
	return storage.NewDiskStore(cfg.Upload.Dir)
}

// NewAnswerScorer wires the Gemini scorer over the default random one.
func NewAnswerScorer(cfg *config.Config) (service.AnswerScorer, error) {
	return service.NewGeminiScorer(cfg, service.NewRandomScorer())
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	questionCtrl *controller.QuestionController,
	interviewCtrl *controller.InterviewController,
	forumCtrl *controller.ForumController,
) {
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authSvc))
	{
		usersGroup := protected.Group("/users/me")
		usersGroup.GET("", userCtrl.GetProfile)
		usersGroup.PUT("", userCtrl.UpdateProfile)
		usersGroup.POST("/resume", userCtrl.UploadResume)
		usersGroup.POST("/avatar", userCtrl.UploadAvatar)

		questionsGroup := protected.Group("/questions")
		questionsGroup.GET("", questionCtrl.List)
		questionsGroup.GET("/random", questionCtrl.RandomSample)
		questionsGroup.POST("/generate", questionCtrl.Generate)
		questionsGroup.GET("/:id", questionCtrl.GetByID)
		questionsGroup.POST("", middleware.RequireRoles(model.RoleRecruiter, model.RoleAdmin), questionCtrl.Create)
		questionsGroup.PUT("/:id", questionCtrl.Update)
		questionsGroup.DELETE("/:id", questionCtrl.Delete)

		interviewsGroup := protected.Group("/interviews")
		interviewsGroup.POST("", interviewCtrl.Create)
		interviewsGroup.GET("", interviewCtrl.List)
		interviewsGroup.GET("/analytics", interviewCtrl.Analytics)
		interviewsGroup.GET("/:id", interviewCtrl.Get)
		interviewsGroup.PUT("/:id/answer/:slotIndex", interviewCtrl.SubmitAnswer)
		interviewsGroup.PUT("/:id/complete", interviewCtrl.Complete)
		interviewsGroup.PUT("/:id/bookmark", interviewCtrl.Bookmark)

		forumGroup := protected.Group("/forum/posts")
		forumGroup.GET("", forumCtrl.ListPosts)
		forumGroup.POST("", forumCtrl.CreatePost)
		forumGroup.GET("/:id", forumCtrl.GetPost)
		forumGroup.PATCH("/:id", forumCtrl.UpdatePost)
		forumGroup.DELETE("/:id", forumCtrl.DeletePost)
		forumGroup.POST("/:id/comments", forumCtrl.AddComment)
		forumGroup.POST("/:id/like", forumCtrl.LikePost)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PrepTalk API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Interview{},
		&model.InterviewSlot{},
		&model.Post{},
		&model.Comment{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
