package handler

import (
	"context"
	"net/http"
	"time"

	"pharmastock/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	statusConnected = "connected"
	statusError     = "error"
	statusDisabled  = "disabled"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK    bool   `json:"ok"`
	DB    string `json:"db"`
	Redis string `json:"redis"`
	Cache string `json:"cache"`
}

// Health reports database, Redis and cache breaker status. Only the
// database decides the status code; a missing Redis is reported as
// "disabled".
//
//	@Summary	Service health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/health [get]
func Health(db *gorm.DB, rdb *redis.Client, cache *infra.CatalogCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res := HealthResponse{
			DB:    dbStatus(ctx, db),
			Redis: redisStatus(ctx, rdb),
			Cache: cache.State(),
		}
		res.OK = res.DB == statusConnected

		code := http.StatusOK
		if !res.OK {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, res)
	}
}

func dbStatus(ctx context.Context, db *gorm.DB) string {
	sqlDB, err := db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		return statusError
	}
	return statusConnected
}

func redisStatus(ctx context.Context, rdb *redis.Client) string {
	if rdb == nil {
		return statusDisabled
	}
	if rdb.Ping(ctx).Err() != nil {
		return statusError
	}
	return statusConnected
}
