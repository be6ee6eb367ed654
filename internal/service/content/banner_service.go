// Package content 提供横幅、页面、轮播图等运营内容管理服务
package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// BannerService 横幅管理服务
type BannerService struct {
	bannerRepo *repository.BannerRepository
	maxBanners int
}

// NewBannerService 创建横幅管理服务
func NewBannerService(bannerRepo *repository.BannerRepository, maxBanners int) *BannerService {
	return &BannerService{
		bannerRepo: bannerRepo,
		maxBanners: maxBanners,
	}
}

// CreateBannerRequest 创建横幅请求
type CreateBannerRequest struct {
	Title        string `json:"title" binding:"required,max=150"`
	ImageURL     string `json:"image_url" binding:"required"`
	LinkURL      string `json:"link_url"`
	Position     string `json:"position"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateBannerRequest 更新横幅请求
type UpdateBannerRequest struct {
	Title        *string `json:"title"`
	ImageURL     *string `json:"image_url"`
	LinkURL      *string `json:"link_url"`
	Position     *string `json:"position"`
	DisplayOrder *int    `json:"display_order"`
	Status       *int8   `json:"status"`
}

// Create 创建横幅
func (s *BannerService) Create(ctx context.Context, req *CreateBannerRequest) (*models.Banner, error) {
	position := req.Position
	if position == "" {
		position = models.BannerPositionHome
	}
	if !isValidBannerPosition(position) {
		return nil, errors.ErrPositionBad
	}

	if s.maxBanners > 0 {
		_, total, err := s.bannerRepo.List(ctx, position, 0, 1)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		if total >= int64(s.maxBanners) {
			return nil, errors.ErrOperationFailed.WithMessage("该位置横幅数量已达上限")
		}
	}

	banner := &models.Banner{
		Title:        req.Title,
		ImageURL:     req.ImageURL,
		Position:     position,
		DisplayOrder: req.DisplayOrder,
		Status:       models.ContentStatusVisible,
	}
	if req.LinkURL != "" {
		banner.LinkURL = &req.LinkURL
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return banner, nil
}

// GetByID 根据 ID 获取横幅
func (s *BannerService) GetByID(ctx context.Context, id int64) (*models.Banner, error) {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBannerNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return banner, nil
}

// Update 更新横幅
func (s *BannerService) Update(ctx context.Context, id int64, req *UpdateBannerRequest) (*models.Banner, error) {
	banner, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Position != nil {
		if !isValidBannerPosition(*req.Position) {
			return nil, errors.ErrPositionBad
		}
		banner.Position = *req.Position
	}
	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		banner.LinkURL = req.LinkURL
	}
	if req.DisplayOrder != nil {
		banner.DisplayOrder = *req.DisplayOrder
	}
	if req.Status != nil {
		banner.Status = *req.Status
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return banner, nil
}

// Delete 删除横幅
func (s *BannerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// List 获取横幅列表
func (s *BannerService) List(ctx context.Context, position string, page, pageSize int) ([]*models.Banner, int64, error) {
	offset := (page - 1) * pageSize
	banners, total, err := s.bannerRepo.List(ctx, position, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return banners, total, nil
}

// isValidBannerPosition 横幅位置合法性
func isValidBannerPosition(position string) bool {
	switch position {
	case models.BannerPositionHome, models.BannerPositionTop, models.BannerPositionBottom:
		return true
	}
	return false
}
