package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// SliderService 轮播图管理服务
type SliderService struct {
	sliderRepo *repository.SliderRepository
	maxSliders int
}

// NewSliderService 创建轮播图管理服务
func NewSliderService(sliderRepo *repository.SliderRepository, maxSliders int) *SliderService {
	return &SliderService{
		sliderRepo: sliderRepo,
		maxSliders: maxSliders,
	}
}

// CreateSliderRequest 创建轮播图请求
type CreateSliderRequest struct {
	Title        string `json:"title"`
	ImageURL     string `json:"image_url" binding:"required"`
	LinkURL      string `json:"link_url"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateSliderRequest 更新轮播图请求
type UpdateSliderRequest struct {
	Title        *string `json:"title"`
	ImageURL     *string `json:"image_url"`
	LinkURL      *string `json:"link_url"`
	DisplayOrder *int    `json:"display_order"`
	Status       *int8   `json:"status"`
}

// Create 创建轮播图
func (s *SliderService) Create(ctx context.Context, req *CreateSliderRequest) (*models.SliderImage, error) {
	if s.maxSliders > 0 {
		_, total, err := s.sliderRepo.List(ctx, 0, 1)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		if total >= int64(s.maxSliders) {
			return nil, errors.ErrOperationFailed.WithMessage("轮播图数量已达上限")
		}
	}

	slider := &models.SliderImage{
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		Status:       models.ContentStatusVisible,
	}
	if req.Title != "" {
		slider.Title = &req.Title
	}
	if req.LinkURL != "" {
		slider.LinkURL = &req.LinkURL
	}

	if err := s.sliderRepo.Create(ctx, slider); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return slider, nil
}

// GetByID 根据 ID 获取轮播图
func (s *SliderService) GetByID(ctx context.Context, id int64) (*models.SliderImage, error) {
	slider, err := s.sliderRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSliderNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return slider, nil
}

// Update 更新轮播图
func (s *SliderService) Update(ctx context.Context, id int64, req *UpdateSliderRequest) (*models.SliderImage, error) {
	slider, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		slider.Title = req.Title
	}
	if req.ImageURL != nil {
		slider.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		slider.LinkURL = req.LinkURL
	}
	if req.DisplayOrder != nil {
		slider.DisplayOrder = *req.DisplayOrder
	}
	if req.Status != nil {
		slider.Status = *req.Status
	}

	if err := s.sliderRepo.Update(ctx, slider); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return slider, nil
}

// Delete 删除轮播图
func (s *SliderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.sliderRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// List 获取轮播图列表
func (s *SliderService) List(ctx context.Context, page, pageSize int) ([]*models.SliderImage, int64, error) {
	offset := (page - 1) * pageSize
	sliders, total, err := s.sliderRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return sliders, total, nil
}
