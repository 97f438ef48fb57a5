package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fretsound/fretboard-api/internal/api/handlers"
	apimiddleware "github.com/fretsound/fretboard-api/internal/api/middleware"
	"github.com/fretsound/fretboard-api/internal/cache"
	"github.com/fretsound/fretboard-api/internal/config"
	"github.com/fretsound/fretboard-api/internal/llm"
	"github.com/fretsound/fretboard-api/internal/metrics"
	"github.com/fretsound/fretboard-api/internal/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(db, cfg)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cfg.ResolverModel)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Resolution service: LLM providers plus the persistent cache.
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(db)
	} else {
		store = cache.NewStore(nil)
	}
	resolverService := services.NewResolverService(factory, store, cfg.ResolverModel)

	v1 := router.Group("/api/v1")
	{
		tuningHandler := handlers.NewTuningHandler()
		v1.POST("/tuning", tuningHandler.BuildTuning)

		fretboardHandler := handlers.NewFretboardHandler()
		v1.POST("/fretboard/markers", fretboardHandler.BuildMarkers)

		keysHandler := handlers.NewKeysHandler()
		v1.GET("/keys", keysHandler.ListKeys)

		harmonicsHandler := handlers.NewHarmonicsHandler()
		v1.GET("/harmonics", harmonicsHandler.ListHarmonics)

		resolveHandler := handlers.NewResolveHandler(resolverService, cw, cfg.ResolverModel)
		v1.POST("/chords/resolve", resolveHandler.ResolveChord)
		v1.POST("/scales/resolve", resolveHandler.ResolveScale)
	}

	return router
}
