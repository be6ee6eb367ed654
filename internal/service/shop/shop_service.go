// Package shop 提供商铺管理服务
package shop

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// ShopService 商铺管理服务（管理端）
type ShopService struct {
	shopRepo *repository.ShopRepository
}

// NewShopService 创建商铺管理服务
func NewShopService(shopRepo *repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// CreateShopRequest 创建商铺请求
type CreateShopRequest struct {
	Name        string   `json:"name" binding:"required,max=150"`
	OwnerName   string   `json:"owner_name"`
	Phone       string   `json:"phone"`
	PlanType    string   `json:"plan_type"`
	PlanAmount  *float64 `json:"plan_amount"`
	District    string   `json:"district"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// UpdateShopRequest 更新商铺请求
type UpdateShopRequest struct {
	Name        *string  `json:"name"`
	OwnerName   *string  `json:"owner_name"`
	Phone       *string  `json:"phone"`
	PlanType    *string  `json:"plan_type"`
	PlanAmount  *float64 `json:"plan_amount"`
	District    *string  `json:"district"`
	City        *string  `json:"city"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Status      *int8    `json:"status"`
}

// UpdatePaymentRequest 更新付费状态请求
type UpdatePaymentRequest struct {
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"payment_date"`
	ExpiryDate  *time.Time `json:"expiry_date"`
}

// Create 创建商铺
func (s *ShopService) Create(ctx context.Context, req *CreateShopRequest) (*models.Shop, error) {
	planType := req.PlanType
	if planType == "" {
		planType = models.PlanBasic
	}
	if !models.IsValidPlanType(planType) {
		return nil, errors.ErrPlanTypeInvalid
	}
	if req.PlanAmount != nil && *req.PlanAmount < 0 {
		return nil, errors.ErrPlanAmountInvalid
	}

	shop := &models.Shop{
		Name:       req.Name,
		PlanType:   planType,
		PlanAmount: req.PlanAmount,
		Status:     models.ShopStatusActive,
	}
	setOptional(&shop.OwnerName, req.OwnerName)
	setOptional(&shop.Phone, req.Phone)
	setOptional(&shop.District, req.District)
	setOptional(&shop.City, req.City)
	setOptional(&shop.Address, req.Address)
	setOptional(&shop.Description, req.Description)
	setOptional(&shop.ImageURL, req.ImageURL)

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return shop, nil
}

// GetByID 根据 ID 获取商铺
func (s *ShopService) GetByID(ctx context.Context, id int64) (*models.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShopNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return shop, nil
}

// Update 更新商铺
func (s *ShopService) Update(ctx context.Context, id int64, req *UpdateShopRequest) (*models.Shop, error) {
	shop, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlanType != nil {
		if !models.IsValidPlanType(*req.PlanType) {
			return nil, errors.ErrPlanTypeInvalid
		}
		shop.PlanType = *req.PlanType
	}
	if req.PlanAmount != nil {
		if *req.PlanAmount < 0 {
			return nil, errors.ErrPlanAmountInvalid
		}
		shop.PlanAmount = req.PlanAmount
	}
	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.OwnerName != nil {
		shop.OwnerName = req.OwnerName
	}
	if req.Phone != nil {
		shop.Phone = req.Phone
	}
	if req.District != nil {
		shop.District = req.District
	}
	if req.City != nil {
		shop.City = req.City
	}
	if req.Address != nil {
		shop.Address = req.Address
	}
	if req.Description != nil {
		shop.Description = req.Description
	}
	if req.ImageURL != nil {
		shop.ImageURL = req.ImageURL
	}
	if req.Status != nil {
		shop.Status = *req.Status
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return shop, nil
}

// Delete 删除商铺
func (s *ShopService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.shopRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// List 获取商铺列表
func (s *ShopService) List(ctx context.Context, filter *repository.ShopFilter, page, pageSize int) ([]*models.Shop, int64, error) {
	offset := (page - 1) * pageSize
	shops, total, err := s.shopRepo.List(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return shops, total, nil
}

// UpdatePayment 更新付费状态
// paid 为 true 时记录支付时间与到期时间，为 false 时清空两者
func (s *ShopService) UpdatePayment(ctx context.Context, id int64, req *UpdatePaymentRequest) (*models.Shop, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.shopRepo.UpdatePaymentStatus(ctx, id, req.Paid, req.PaymentDate, req.ExpiryDate); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return s.GetByID(ctx, id)
}

// setOptional 非空字符串写入可选字段
func setOptional(dst **string, value string) {
	if value != "" {
		*dst = &value
	}
}
