package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/smartsolv/mindmate-engine/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	SessionHandler   *SessionHandler
	ChecklistHandler *ChecklistHandler
	StressHandler    *StressHandler
	WalletHandler    *WalletHandler
	AdviceHandler    *AdviceHandler
	ChatHandler      *ChatHandler

	DB        *sqlx.DB
	Redis     *redis.Client
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.Use(middleware.Metrics())

	if deps.Redis != nil {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		storage := "memory"
		statusCode := 200

		if deps.DB != nil {
			storage = "postgres"
			if err := deps.DB.Ping(); err != nil {
				storage = "unreachable"
				statusCode = 503
			}
		} else if deps.Redis != nil {
			storage = "redis"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				storage = "unreachable"
				statusCode = 503
			}
		}

		status := "ok"
		if statusCode != 200 {
			status = "error"
		}

		c.JSON(statusCode, gin.H{
			"status":  status,
			"storage": storage,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")

	deps.SessionHandler.RegisterRoutes(apiV1)
	deps.ChecklistHandler.RegisterRoutes(apiV1)
	deps.StressHandler.RegisterRoutes(apiV1)
	deps.WalletHandler.RegisterRoutes(apiV1)
	deps.AdviceHandler.RegisterRoutes(apiV1)
	deps.ChatHandler.RegisterRoutes(apiV1)

	return router
}
