// Package handler 提供管理端 Handler 的通用辅助函数
// 统一错误响应、认证检查与参数解析，减少 Handler 层重复代码
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/common/response"
	"github.com/dumeirei/biz-directory-backend/internal/common/utils"
	"github.com/dumeirei/biz-directory-backend/internal/middleware"
)

// HandleError 错误转响应
// err 为 nil 时返回 false；否则发送错误响应并返回 true，调用方应 return
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(c, appErr.Code, appErr.Message)
		return true
	}
	response.InternalError(c, err.Error())
	return true
}

// MustSucceed 调用服务后直接回包的便捷封装
//
//	shop, err := svc.GetShop(ctx, id)
//	handler.MustSucceed(c, err, shop)
func MustSucceed(c *gin.Context, err error, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.Success(c, data)
}

// MustSucceedPage 分页版本的 MustSucceed
func MustSucceedPage(c *gin.Context, err error, list interface{}, total int64, page, pageSize int) {
	if HandleError(c, err) {
		return
	}
	response.SuccessPage(c, list, total, page, pageSize)
}

// RequireAdminID 取当前管理员 ID，未登录时发送 401 并返回 false
func RequireAdminID(c *gin.Context) (int64, bool) {
	adminID := middleware.GetAdminID(c)
	if adminID == 0 {
		response.Unauthorized(c, "请先登录")
		return 0, false
	}
	return adminID, true
}

// ParseID 解析路径参数 "id"
// resourceName 用于错误消息，如 "商铺"、"横幅"
func ParseID(c *gin.Context, resourceName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的"+resourceName+"ID")
		return 0, false
	}
	return id, true
}

// ParseQueryID 解析可选的查询参数 ID
// 参数为空返回 (nil, true)，解析失败发送 400 并返回 (nil, false)
func ParseQueryID(c *gin.Context, paramName, resourceName string) (*int64, bool) {
	idStr := c.Query(paramName)
	if idStr == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的"+resourceName+"ID")
		return nil, false
	}
	return &id, true
}

// BindPagination 绑定并规范化分页参数，默认 page=1、page_size=10
func BindPagination(c *gin.Context) utils.Pagination {
	var p utils.Pagination
	p.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	p.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	p.Normalize()
	return p
}
