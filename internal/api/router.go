package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/optiifreight/quoting-engine/internal/api/handler"
	"github.com/optiifreight/quoting-engine/internal/api/middleware"
	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/service"
	"github.com/optiifreight/quoting-engine/internal/infrastructure/config"
	mongodb "github.com/optiifreight/quoting-engine/internal/infrastructure/db/mongo"
	redisdb "github.com/optiifreight/quoting-engine/internal/infrastructure/db/redis"
	"github.com/optiifreight/quoting-engine/internal/infrastructure/geo"
	"github.com/optiifreight/quoting-engine/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the audit dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("quoting"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	carrierRepo := mongodb.NewCarrierRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	// --- Engine ---
	classifier := service.NewClassifier(cfg.Engine.DensityThreshold)
	transit := service.NewTransitEstimator(cfg.Engine.AvgSpeedMph)
	calculator := service.NewQuoteCalculator(classifier, transit, domain.RateSchedule{
		PerMile:      cfg.Engine.DefaultRatePerMile,
		PerCubicFoot: cfg.Engine.DefaultRatePerCubicFoot,
		PerPound:     cfg.Engine.DefaultRatePerPound,
	})
	scorer := service.NewScorerByName(cfg.Engine.ScoringStrategy, service.ScoringConfig{
		PriceWeight:  cfg.Engine.ScoringPriceWeight,
		RatingWeight: cfg.Engine.ScoringRatingWeight,
		TenureWeight: cfg.Engine.ScoringTenureWeight,
	})
	ranker := service.NewRanker(calculator, scorer, cfg.Engine.MinTotalCharge)
	distance := service.NewHaversineEstimator(geo.NewZipTable())

	// --- Services ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Engine.AuditWorkers, auditService, log)
	quoteCache := redisdb.NewQuoteCache(rdb, cfg.Engine.QuoteCacheTTL)
	quoteService := service.NewQuoteService(distance, carrierRepo, ranker, quoteCache, dispatcher, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	carrierHandler := handler.NewCarrierHandler(carrierRepo)
	historyHandler := handler.NewHistoryHandler(auditRepo)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Quoting routes ---
	quotes := e.Group("/v1/quotes", authMiddleware, middleware.RBAC(domain.RoleShipper, domain.RoleAdmin))
	quotes.POST("", quoteHandler.Rank)
	quotes.GET("/history", historyHandler.List)

	// --- Carrier directory routes ---
	carriers := e.Group("/v1/carriers", authMiddleware)
	carriers.GET("", carrierHandler.List, middleware.RBAC(domain.RoleAdmin))
	carriers.PUT("/:id/rates", carrierHandler.UpdateRates, middleware.RBAC(domain.RoleCarrier, domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
