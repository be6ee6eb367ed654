// Package auth 提供管理端认证服务
package auth

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/crypto"
	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/common/jwt"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// AuthService 管理员认证服务
type AuthService struct {
	adminRepo  *repository.AdminRepository
	jwtManager *jwt.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(adminRepo *repository.AdminRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Admin     *AdminInfo     `json:"admin"`
	TokenPair *jwt.TokenPair `json:"token"`
}

// AdminInfo 管理员信息
type AdminInfo struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// Login 用户名密码登录
func (s *AuthService) Login(ctx context.Context, req *LoginRequest, clientIP string) (*LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// 统一返回密码错误，避免暴露用户名是否存在
			return nil, errors.ErrPasswordError
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.Password, admin.PasswordHash) {
		return nil, errors.ErrPasswordError
	}

	if admin.Status == models.AdminStatusDisabled {
		return nil, errors.ErrAccountDisabled
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(admin.ID, jwt.UserTypeAdmin, admin.Role)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	// 登录痕迹写入失败不阻断登录
	_ = s.adminRepo.UpdateLastLogin(ctx, admin.ID, clientIP)

	return &LoginResponse{
		Admin:     s.toAdminInfo(admin),
		TokenPair: tokenPair,
	}, nil
}

// ChangePassword 修改密码
func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, req *ChangePasswordRequest) error {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrAdminNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.OldPassword, admin.PasswordHash) {
		return errors.ErrPasswordError
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return errors.ErrInternalError.WithError(err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, adminID, hash); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// RefreshToken 刷新令牌
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	tokenPair, err := s.jwtManager.RefreshToken(refreshToken)
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrTokenInvalid
	}
	return tokenPair, nil
}

// GetAdminByID 根据 ID 获取管理员
func (s *AuthService) GetAdminByID(ctx context.Context, adminID int64) (*AdminInfo, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAdminNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return s.toAdminInfo(admin), nil
}

// toAdminInfo 转换为管理员信息
func (s *AuthService) toAdminInfo(admin *models.Admin) *AdminInfo {
	return &AdminInfo{
		ID:       admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Email:    admin.Email,
		Role:     admin.Role,
	}
}
