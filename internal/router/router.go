package router

import (
	"time"

	_ "pharmastock/docs"
	"pharmastock/internal/config"
	"pharmastock/internal/handler"
	"pharmastock/internal/infra"
	"pharmastock/internal/middleware"
	"pharmastock/internal/repository"
	"pharmastock/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; the catalog cache is then disabled.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	cache := infra.NewCatalogCache(rdb, infra.NewCircuitBreaker(infra.DefaultBreakerConfig()), cfg.CacheTTL())
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	drugRepo := repository.NewDrugRepository(db)
	stockRepo := repository.NewStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	drugSvc := service.NewDrugService(drugRepo, cache)
	stockSvc := service.NewStockService(stockRepo, drugRepo, cache)
	reportFont, err := infra.LoadReportFont(cfg.ReportFontFile, cfg.ReportFontBoldFile)
	if err != nil {
		log.Warn().Err(err).Msg("report font not loaded; PDF reports fall back to Latin-only Helvetica")
	}
	reportSvc := service.NewReportService(drugRepo, cfg.ReportTitle, reportFont)
	notificationSvc := service.NewNotificationService(drugRepo, stockRepo, reportSvc, mailer, service.NotificationSettings{
		LowStockThreshold: cfg.LowStockThreshold,
		ExpiryWarningDays: cfg.ExpiryWarningDays,
	})
	roleSvc := service.NewRoleService(cfg.DoctorPasswordHash)

	// ── Handlers ─────────────────────────────────────────────────────────────
	drugsH := handler.NewDrugsHandler(drugSvc)
	stocksH := handler.NewStocksHandler(stockSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	roleH := handler.NewRoleHandler(roleSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb, cache))

	drugs := r.Group("/drugs")
	{
		drugs.GET("", drugsH.List)
		drugs.GET("/search", drugsH.Search)
		drugs.GET("/:id", drugsH.Get)
		drugs.POST("", drugsH.Create)
		drugs.PATCH("/update", drugsH.Update)
		drugs.DELETE("/:id", drugsH.Delete)
	}

	stocks := r.Group("/stocks")
	{
		stocks.POST("", stocksH.Create)
		stocks.GET("/:stock_id", stocksH.Get)
		stocks.PATCH("/update", stocksH.Sell)
		stocks.PATCH("", stocksH.SetAmount)
		stocks.DELETE("/:stock_id", stocksH.Delete)
	}

	r.GET("/notifications", notificationsH.Summary)
	r.POST("/notifications/email", notificationsH.SendDigest)
	r.GET("/reports/stock.pdf", reportsH.StockPDF)

	r.POST("/role", middleware.RoleSwitchRateLimiter(), roleH.Switch)

	// Swagger UI outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
