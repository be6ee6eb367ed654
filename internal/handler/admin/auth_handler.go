// Package admin 提供管理端 HTTP Handler
package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/biz-directory-backend/internal/common/handler"
	"github.com/dumeirei/biz-directory-backend/internal/common/response"
	"github.com/dumeirei/biz-directory-backend/internal/service/auth"
)

// AuthHandler 管理员认证处理器
type AuthHandler struct {
	authService *auth.AuthService
}

// NewAuthHandler 创建管理员认证处理器
func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags 管理员认证
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "请求参数"
// @Success 200 {object} response.Response{data=auth.LoginResponse}
// @Router /admin/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	handler.MustSucceed(c, err, result)
}

// RefreshTokenRequest 刷新令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken 刷新令牌
// @Summary 刷新管理员令牌
// @Tags 管理员认证
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "请求参数"
// @Success 200 {object} response.Response
// @Router /admin/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Unauthorized(c, "刷新令牌失败")
		return
	}
	response.Success(c, tokenPair)
}

// GetCurrentAdmin 获取当前管理员信息
// @Summary 获取当前管理员信息
// @Tags 管理员认证
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=auth.AdminInfo}
// @Router /admin/auth/me [get]
func (h *AuthHandler) GetCurrentAdmin(c *gin.Context) {
	adminID, ok := handler.RequireAdminID(c)
	if !ok {
		return
	}

	info, err := h.authService.GetAdminByID(c.Request.Context(), adminID)
	handler.MustSucceed(c, err, info)
}

// ChangePassword 修改密码
// @Summary 修改管理员密码
// @Tags 管理员认证
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body auth.ChangePasswordRequest true "请求参数"
// @Success 200 {object} response.Response
// @Router /admin/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := handler.RequireAdminID(c)
	if !ok {
		return
	}

	var req auth.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), adminID, &req)
	handler.MustSucceed(c, err, nil)
}

// Logout 退出登录
// @Summary 管理员退出登录
// @Tags 管理员认证
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response
// @Router /admin/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// 依赖 JWT 自然过期，不维护黑名单
	response.Success(c, nil)
}

// RegisterRoutes 注册公开路由
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.RefreshToken)
	}
}

// RegisterProtectedRoutes 注册需要认证的路由
func (h *AuthHandler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/me", h.GetCurrentAdmin)
		authGroup.PUT("/password", h.ChangePassword)
		authGroup.POST("/logout", h.Logout)
	}
}
