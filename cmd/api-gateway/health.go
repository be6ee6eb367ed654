// Package main 是应用程序入口
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const dependencyProbeTimeout = 3 * time.Second

// healthStatus 健康检查响应体
type healthStatus struct {
	Status    string            `json:"status"`
	Timestamp int64             `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// healthHandler 存活检查，不探测依赖
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, healthStatus{
		Status:    "ok",
		Timestamp: time.Now().Unix(),
	})
}

func pingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// readyHandler 就绪检查，探测 PostgreSQL 与 Redis
func readyHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), dependencyProbeTimeout)
		defer cancel()

		checks := map[string]string{
			"database": checkDatabase(ctx, db),
			"redis":    checkRedis(ctx, redisClient),
		}

		status, text := http.StatusOK, "ready"
		for _, result := range checks {
			if result != "ok" {
				status, text = http.StatusServiceUnavailable, "not ready"
				break
			}
		}

		c.JSON(status, healthStatus{
			Status:    text,
			Timestamp: time.Now().Unix(),
			Checks:    checks,
		})
	}
}

func checkDatabase(ctx context.Context, db *gorm.DB) string {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func checkRedis(ctx context.Context, client *redis.Client) string {
	if err := client.Ping(ctx).Err(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
