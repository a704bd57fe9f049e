package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/voicelab/coach-api/api/annotations"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/health"
	"github.com/voicelab/coach-api/api/lessons"
	"github.com/voicelab/coach-api/api/media"
	"github.com/voicelab/coach-api/api/notifications"
	"github.com/voicelab/coach-api/api/profiles"
	"github.com/voicelab/coach-api/api/recordings"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/api/version"
	_ "github.com/voicelab/coach-api/docs/swagger"
	annotationsService "github.com/voicelab/coach-api/internal/services/annotations"
	lessonsService "github.com/voicelab/coach-api/internal/services/lessons"
	mediaService "github.com/voicelab/coach-api/internal/services/media"
	notificationsService "github.com/voicelab/coach-api/internal/services/notifications"
	profilesService "github.com/voicelab/coach-api/internal/services/profiles"
	recordingsService "github.com/voicelab/coach-api/internal/services/recordings"
	"github.com/voicelab/coach-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		initializeServices(deps, cfg)
	}

	if deps.AuthService == nil {
		return fmt.Errorf("auth service is required")
	}

	authHandler := apiauth.NewHandler(deps.AuthService, deps.AttemptStore, deps.ProfileService)
	if cfg.Auth.DevBypass {
		authHandler.SetDevAuth(true, cfg.Auth.DevToken)
	}

	generalLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
	// Uploads are expensive, keep them slow
	uploadLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 4)

	// The media catalog is readable without a token. A valid token still
	// identifies the caller when one is sent.
	public := engine.Group("/api/v1")
	public.Use(authHandler.OptionalAuthMiddleware())
	publicMedia := public.Group("/media")
	publicMedia.Use(generalLimit)

	v1 := engine.Group("/api/v1")
	v1.Use(authHandler.AuthMiddleware())

	v1.GET("/me", authHandler.Me)

	mediaGroup := v1.Group("/media")
	mediaGroup.Use(generalLimit)
	media.RegisterRoutes(publicMedia, mediaGroup, deps, authHandler, uploadLimit)
	annotations.RegisterMediaRoutes(mediaGroup, deps)

	annotationGroup := v1.Group("/annotations")
	annotationGroup.Use(generalLimit)
	annotations.RegisterRoutes(annotationGroup, deps)

	lessonGroup := v1.Group("/lessons")
	lessonGroup.Use(generalLimit)
	lessons.RegisterRoutes(lessonGroup, deps, authHandler)

	assignmentGroup := v1.Group("/assignments")
	assignmentGroup.Use(generalLimit)
	lessons.RegisterAssignmentRoutes(assignmentGroup, deps)

	recordingGroup := v1.Group("/recordings")
	recordingGroup.Use(generalLimit)
	recordings.RegisterRoutes(recordingGroup, deps, uploadLimit)

	notificationGroup := v1.Group("/notifications")
	notificationGroup.Use(generalLimit)
	notifications.RegisterRoutes(notificationGroup, deps)

	profileGroup := v1.Group("/profiles")
	profileGroup.Use(generalLimit)
	profiles.RegisterRoutes(profileGroup, deps, authHandler)

	return nil
}

// initializeServices wires the default service implementations over the
// database for any dependency not already injected.
func initializeServices(deps *types.Dependencies, cfg *config.Config) {
	db := deps.DB.DB

	var store mediaService.ObjectStore
	if cfg.Storage.URL != "" && cfg.Storage.ServiceKey != "" {
		store = mediaService.NewSupabaseStore(cfg.Storage.URL, cfg.Storage.ServiceKey)
	}

	if deps.ProfileService == nil {
		deps.ProfileService = profilesService.NewService(profilesService.NewRepository(db), deps.Log)
	}
	if deps.NotificationService == nil {
		deps.NotificationService = notificationsService.NewService(notificationsService.NewRepository(db), deps.Log)
	}
	if deps.MediaService == nil {
		deps.MediaService = mediaService.NewService(
			mediaService.NewRepository(db),
			store,
			cfg.Storage.MediaBucket,
			cfg.Storage.MaxUploadBytes,
			deps.Log,
		)
	}
	if deps.LessonService == nil {
		deps.LessonService = lessonsService.NewService(
			lessonsService.NewRepository(db),
			profileAdapter{deps.ProfileService},
			deps.NotificationService,
			deps.Log,
		)
	}
	if deps.AnnotationService == nil {
		deps.AnnotationService = annotationsService.NewService(
			annotationsService.NewRepository(db),
			deps.MediaService,
			assignmentAdapter{deps.LessonService},
			deps.NotificationService,
			deps.Log,
		)
	}
	if deps.RecordingService == nil {
		deps.RecordingService = recordingsService.NewService(
			recordingsService.NewRepository(db),
			store,
			assignmentAdapter{deps.LessonService},
			deps.NotificationService,
			cfg.Storage.RecordingsBucket,
			cfg.Storage.MaxUploadBytes,
			deps.Log,
		)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
