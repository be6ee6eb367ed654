// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dumeirei/biz-directory-backend/internal/common/response"
)

// ContextKeyRequestID 请求 ID 上下文键
const ContextKeyRequestID = "request_id"

// RequestID 为每个请求分配 ID，优先沿用上游传入的 X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID 从上下文取请求 ID，未设置时返回空串
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyRequestID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// Recovery 捕获 handler panic，记录堆栈后返回 500
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("ip", c.ClientIP()),
					zap.Any("error", r),
					zap.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Code:    http.StatusInternalServerError,
					Message: "服务器内部错误",
				})
			}
		}()
		c.Next()
	}
}

// RealIP 用代理头还原客户端地址，供限流与操作日志取 IP
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ip := c.GetHeader("X-Real-IP"); ip != "" {
			c.Request.RemoteAddr = ip
		} else if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			// X-Forwarded-For: client, proxy1, proxy2
			if idx := strings.IndexByte(xff, ','); idx >= 0 {
				c.Request.RemoteAddr = strings.TrimSpace(xff[:idx])
			} else {
				c.Request.RemoteAddr = xff
			}
		}
		c.Next()
	}
}
