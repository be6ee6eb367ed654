// Package repository 提供数据访问层
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/database"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// ShopRepository 商铺仓储（管理端）
type ShopRepository struct {
	db *gorm.DB
}

// NewShopRepository 创建商铺仓储
func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Create 创建商铺
func (r *ShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

// GetByID 根据 ID 获取商铺
func (r *ShopRepository) GetByID(ctx context.Context, id int64) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.WithContext(ctx).First(&shop, id).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// Update 更新商铺
func (r *ShopRepository) Update(ctx context.Context, shop *models.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

// Delete 删除商铺
func (r *ShopRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Shop{}, id).Error
}

// ShopFilter 商铺查询过滤条件
type ShopFilter struct {
	District string
	PlanType string
	Paid     *bool
	Keyword  string
}

// List 获取商铺列表
func (r *ShopRepository) List(ctx context.Context, filter *ShopFilter, offset, limit int) ([]*models.Shop, int64, error) {
	var shops []*models.Shop
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Shop{})

	if filter != nil {
		if filter.District != "" {
			query = query.Where("district = ?", filter.District)
		}
		if filter.PlanType != "" {
			query = query.Where("plan_type = ?", filter.PlanType)
		}
		if filter.Paid != nil {
			if *filter.Paid {
				query = query.Where("last_payment_date IS NOT NULL")
			} else {
				query = query.Where("last_payment_date IS NULL")
			}
		}
		if filter.Keyword != "" {
			query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
		}
	}

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = query.Scopes(database.OrderByCreatedDesc).
		Offset(offset).
		Limit(limit).
		Find(&shops).Error
	if err != nil {
		return nil, 0, err
	}

	return shops, total, nil
}

// ListAll 获取全量商铺（聚合用，每次请求重新读取）
func (r *ShopRepository) ListAll(ctx context.Context) ([]*models.Shop, error) {
	var shops []*models.Shop
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&shops).Error
	return shops, err
}

// UpdatePaymentStatus 更新付费状态
// paid 为 true 时写入支付时间与到期时间，为 false 时清空支付时间
func (r *ShopRepository) UpdatePaymentStatus(ctx context.Context, id int64, paid bool, paymentDate, expiryDate *time.Time) error {
	updates := map[string]interface{}{}
	if paid {
		if paymentDate == nil {
			now := time.Now()
			paymentDate = &now
		}
		updates["last_payment_date"] = paymentDate
		if expiryDate != nil {
			updates["payment_expiry_date"] = expiryDate
		}
	} else {
		updates["last_payment_date"] = nil
		updates["payment_expiry_date"] = nil
	}
	return r.db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", id).Updates(updates).Error
}

// Count 统计商铺总数
func (r *ShopRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Shop{}).Count(&count).Error
	return count, err
}
