package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sadumina/CarbonXinsight/internal/middleware"
)

// queryTimeout bounds the read endpoints. Upload endpoints are exempt:
// table extraction is a long-running, blocking operation and owns its
// request for as long as it needs.
const queryTimeout = 10 * time.Second

// NewRouter creates a Gin engine with all routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery,
//     ErrorHandler, RateLimiter, CORS).
//   - Adds request timeout handling on the read endpoints.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp().
func NewRouter(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
		corsMiddleware(allowedOrigins),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/upload", handler.Upload)
		v1.POST("/upload-excel", handler.UploadExcel)

		read := v1.Group("")
		read.Use(timeoutMiddleware(queryTimeout))
		{
			read.GET("/countries", handler.Countries)
			read.GET("/sources", handler.Sources)
			read.GET("/series", handler.Series)
			read.GET("/analytics/market-kpis", handler.MarketKPIs)
			read.GET("/analytics/month", handler.MonthStats)
			read.GET("/analytics/compare", handler.Compare)
			read.GET("/data/count", handler.Count)
			read.DELETE("/data", handler.Clear)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
