package router

import (
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/handlers"
	"github.com/appdev-labs/photofeed/internal/middleware"
	"github.com/appdev-labs/photofeed/internal/models"
	"github.com/appdev-labs/photofeed/internal/repositories"
	"github.com/appdev-labs/photofeed/internal/storage"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo, log *zap.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
}

// SetupRoutes migrates the schema, wires the repositories into the handlers,
// and registers all routes.
func SetupRoutes(e *echo.Echo, db *gorm.DB, media *storage.MediaStore, sessionMaxAge time.Duration, log *zap.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Session{},
	)
	if err != nil {
		return err
	}
	log.Info("auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	sessionRepo := repositories.NewGormSessionRepository(db)
	viewRepo := repositories.NewGormViewRepository(db)

	// Every request gets its identity resolved from the session cookie.
	e.Use(middleware.SessionResolver(sessionRepo))

	// Account operations resolve identity per-operation: login and create
	// run anonymously, the rest enforce a session themselves.
	accountsHandler := handlers.NewAccountsHandler(userRepo, sessionRepo, media, sessionMaxAge)
	accountsHandler.RegisterAccountRoutes(e)
	log.Info("account routes configured")

	// Media retrieval enforces its own access rule (403 without a session).
	uploadsHandler := handlers.NewUploadsHandler(media)
	uploadsHandler.RegisterUploadRoutes(e)

	// Everything else requires a session: page views redirect to login,
	// mutations get 403.
	protected := e.Group("", middleware.RequireSession())

	viewsHandler := handlers.NewViewsHandler(viewRepo, userRepo)
	viewsHandler.RegisterViewRoutes(protected)
	log.Info("view routes configured")

	postsHandler := handlers.NewPostsHandler(postRepo, media)
	postsHandler.RegisterPostRoutes(protected)

	commentsHandler := handlers.NewCommentsHandler(commentRepo, postRepo)
	commentsHandler.RegisterCommentRoutes(protected)

	likesHandler := handlers.NewLikesHandler(likeRepo, postRepo)
	likesHandler.RegisterLikeRoutes(protected)

	followingHandler := handlers.NewFollowingHandler(followRepo, userRepo)
	followingHandler.RegisterFollowingRoutes(protected)
	log.Info("mutation routes configured")

	return nil
}
