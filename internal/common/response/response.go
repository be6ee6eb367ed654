// Package response 提供统一的 API 响应格式
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response API 统一响应结构
// 业务错误码放在响应体内，HTTP 状态码只表达传输层语义
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageData 分页数据结构
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessPage 分页成功响应
func SuccessPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, PageData{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Error 业务错误响应
// HTTP 层返回 200，由 code 字段承载业务错误码
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 请求参数错误
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, message, "bad request")
}

// Unauthorized 未授权
func Unauthorized(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, message, "unauthorized")
}

// Forbidden 禁止访问
func Forbidden(c *gin.Context, message string) {
	abort(c, http.StatusForbidden, message, "forbidden")
}

// InternalError 服务器内部错误
func InternalError(c *gin.Context, message string) {
	abort(c, http.StatusInternalServerError, message, "internal server error")
}

// TooManyRequests 请求过于频繁
func TooManyRequests(c *gin.Context, message string) {
	abort(c, http.StatusTooManyRequests, message, "too many requests")
}

// abort 传输层错误响应，业务码与 HTTP 状态码一致
func abort(c *gin.Context, status int, message, fallback string) {
	if message == "" {
		message = fallback
	}
	c.JSON(status, Response{
		Code:    status,
		Message: message,
	})
}
