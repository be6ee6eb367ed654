package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/database"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// BannerRepository 横幅仓储
type BannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository 创建横幅仓储
func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

// Create 创建横幅
func (r *BannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

// GetByID 根据 ID 获取横幅
func (r *BannerRepository) GetByID(ctx context.Context, id int64) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.WithContext(ctx).First(&banner, id).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

// Update 更新横幅
func (r *BannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

// Delete 删除横幅
func (r *BannerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Banner{}, id).Error
}

// List 获取横幅列表，按展示顺序排序
func (r *BannerRepository) List(ctx context.Context, position string, offset, limit int) ([]*models.Banner, int64, error) {
	var banners []*models.Banner
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Banner{})
	if position != "" {
		query = query.Where("position = ?", position)
	}

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = query.Order("display_order ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&banners).Error
	if err != nil {
		return nil, 0, err
	}

	return banners, total, nil
}

// PageRepository 页面仓储
type PageRepository struct {
	db *gorm.DB
}

// NewPageRepository 创建页面仓储
func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

// Create 创建页面
func (r *PageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

// GetByID 根据 ID 获取页面
func (r *PageRepository) GetByID(ctx context.Context, id int64) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBySlug 根据 slug 获取页面
func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Update 更新页面
func (r *PageRepository) Update(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Save(page).Error
}

// Delete 删除页面
func (r *PageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Page{}, id).Error
}

// List 获取页面列表
func (r *PageRepository) List(ctx context.Context, offset, limit int) ([]*models.Page, int64, error) {
	var pages []*models.Page
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Page{})

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = query.Scopes(database.OrderByCreatedDesc).
		Offset(offset).
		Limit(limit).
		Find(&pages).Error
	if err != nil {
		return nil, 0, err
	}

	return pages, total, nil
}

// SliderRepository 轮播图仓储
type SliderRepository struct {
	db *gorm.DB
}

// NewSliderRepository 创建轮播图仓储
func NewSliderRepository(db *gorm.DB) *SliderRepository {
	return &SliderRepository{db: db}
}

// Create 创建轮播图
func (r *SliderRepository) Create(ctx context.Context, slider *models.SliderImage) error {
	return r.db.WithContext(ctx).Create(slider).Error
}

// GetByID 根据 ID 获取轮播图
func (r *SliderRepository) GetByID(ctx context.Context, id int64) (*models.SliderImage, error) {
	var slider models.SliderImage
	err := r.db.WithContext(ctx).First(&slider, id).Error
	if err != nil {
		return nil, err
	}
	return &slider, nil
}

// Update 更新轮播图
func (r *SliderRepository) Update(ctx context.Context, slider *models.SliderImage) error {
	return r.db.WithContext(ctx).Save(slider).Error
}

// Delete 删除轮播图
func (r *SliderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.SliderImage{}, id).Error
}

// List 获取轮播图列表，按展示顺序排序
func (r *SliderRepository) List(ctx context.Context, offset, limit int) ([]*models.SliderImage, int64, error) {
	var sliders []*models.SliderImage
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SliderImage{})

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = query.Order("display_order ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&sliders).Error
	if err != nil {
		return nil, 0, err
	}

	return sliders, total, nil
}
