package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/database"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// AgentShopRepository 商铺仓储（代理端）
type AgentShopRepository struct {
	db *gorm.DB
}

// NewAgentShopRepository 创建代理商铺仓储
func NewAgentShopRepository(db *gorm.DB) *AgentShopRepository {
	return &AgentShopRepository{db: db}
}

// Create 创建代理商铺
func (r *AgentShopRepository) Create(ctx context.Context, shop *models.AgentShop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

// GetByID 根据 ID 获取代理商铺
func (r *AgentShopRepository) GetByID(ctx context.Context, id int64) (*models.AgentShop, error) {
	var shop models.AgentShop
	err := r.db.WithContext(ctx).First(&shop, id).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// Update 更新代理商铺
func (r *AgentShopRepository) Update(ctx context.Context, shop *models.AgentShop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

// Delete 删除代理商铺
func (r *AgentShopRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.AgentShop{}, id).Error
}

// AgentShopFilter 代理商铺查询过滤条件
type AgentShopFilter struct {
	AgentID       *int64
	District      string
	PlanType      string
	PaymentStatus string
}

// List 获取代理商铺列表
func (r *AgentShopRepository) List(ctx context.Context, filter *AgentShopFilter, offset, limit int) ([]*models.AgentShop, int64, error) {
	var shops []*models.AgentShop
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AgentShop{})

	if filter != nil {
		if filter.AgentID != nil {
			query = query.Where("agent_id = ?", *filter.AgentID)
		}
		if filter.District != "" {
			query = query.Where("district = ?", filter.District)
		}
		if filter.PlanType != "" {
			query = query.Where("plan_type = ?", filter.PlanType)
		}
		if filter.PaymentStatus != "" {
			query = query.Where("payment_status = ?", filter.PaymentStatus)
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

// ListAll 获取全量代理商铺（聚合用）
func (r *AgentShopRepository) ListAll(ctx context.Context) ([]*models.AgentShop, error) {
	var shops []*models.AgentShop
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&shops).Error
	return shops, err
}

// UpdatePaymentStatus 更新支付状态
func (r *AgentShopRepository) UpdatePaymentStatus(ctx context.Context, id int64, status string, paymentDate, paymentExpiry *string) error {
	updates := map[string]interface{}{
		"payment_status": status,
	}
	if paymentDate != nil {
		updates["payment_date"] = *paymentDate
	}
	if paymentExpiry != nil {
		updates["payment_expiry"] = *paymentExpiry
	}
	return r.db.WithContext(ctx).Model(&models.AgentShop{}).Where("id = ?", id).Updates(updates).Error
}

// Count 统计代理商铺总数
func (r *AgentShopRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AgentShop{}).Count(&count).Error
	return count, err
}
