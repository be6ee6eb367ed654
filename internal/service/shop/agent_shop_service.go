package shop

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
	"github.com/dumeirei/biz-directory-backend/internal/service/revenue"
)

// AgentShopService 代理商铺服务
// 代理端同步过来的商铺日期字段保留原始 ISO 字符串，
// 佣金在创建时按配置比例计算并落库
type AgentShopService struct {
	agentShopRepo  *repository.AgentShopRepository
	pricing        revenue.PricingTable
	commissionRate float64
}

// NewAgentShopService 创建代理商铺服务
func NewAgentShopService(agentShopRepo *repository.AgentShopRepository, commissionRate float64) *AgentShopService {
	return &AgentShopService{
		agentShopRepo:  agentShopRepo,
		pricing:        revenue.DefaultPricingTable(),
		commissionRate: commissionRate,
	}
}

// CreateAgentShopRequest 创建代理商铺请求
type CreateAgentShopRequest struct {
	AgentID       int64    `json:"agent_id" binding:"required"`
	AgentName     string   `json:"agent_name"`
	Name          string   `json:"name" binding:"required,max=150"`
	Phone         string   `json:"phone"`
	PlanType      string   `json:"plan_type"`
	PlanAmount    *float64 `json:"plan_amount"`
	PaymentStatus string   `json:"payment_status"`
	PaymentDate   *string  `json:"payment_date"`
	PaymentExpiry *string  `json:"payment_expiry"`
	District      string   `json:"district"`
	City          string   `json:"city"`
	Address       string   `json:"address"`
}

// UpdateAgentShopRequest 更新代理商铺请求
type UpdateAgentShopRequest struct {
	AgentName  *string  `json:"agent_name"`
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	PlanType   *string  `json:"plan_type"`
	PlanAmount *float64 `json:"plan_amount"`
	District   *string  `json:"district"`
	City       *string  `json:"city"`
	Address    *string  `json:"address"`
	Status     *int8    `json:"status"`
}

// UpdateAgentPaymentRequest 更新代理商铺支付状态请求
type UpdateAgentPaymentRequest struct {
	PaymentStatus string  `json:"payment_status" binding:"required"`
	PaymentDate   *string `json:"payment_date"`
	PaymentExpiry *string `json:"payment_expiry"`
}

// Create 创建代理商铺
func (s *AgentShopService) Create(ctx context.Context, req *CreateAgentShopRequest) (*models.AgentShop, error) {
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

	status := req.PaymentStatus
	if status == "" {
		status = models.AgentPaymentPending
	}
	if !isValidPaymentStatus(status) {
		return nil, errors.ErrPaymentStatusBad
	}
	if err := validatePaymentDates(req.PaymentDate, req.PaymentExpiry); err != nil {
		return nil, err
	}

	// 佣金按有效套餐金额乘以配置比例，创建时一次性算定
	amount := s.pricing.EffectiveAmount(planType, req.PlanAmount)
	commission := amount * s.commissionRate

	agentShop := &models.AgentShop{
		AgentID:         req.AgentID,
		Name:            req.Name,
		PlanType:        planType,
		PlanAmount:      req.PlanAmount,
		PaymentStatus:   status,
		PaymentDate:     req.PaymentDate,
		PaymentExpiry:   req.PaymentExpiry,
		AgentCommission: &commission,
		Status:          models.ShopStatusActive,
	}
	setOptional(&agentShop.AgentName, req.AgentName)
	setOptional(&agentShop.Phone, req.Phone)
	setOptional(&agentShop.District, req.District)
	setOptional(&agentShop.City, req.City)
	setOptional(&agentShop.Address, req.Address)

	if err := s.agentShopRepo.Create(ctx, agentShop); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return agentShop, nil
}

// GetByID 根据 ID 获取代理商铺
func (s *AgentShopService) GetByID(ctx context.Context, id int64) (*models.AgentShop, error) {
	agentShop, err := s.agentShopRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAgentShopNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return agentShop, nil
}

// Update 更新代理商铺
func (s *AgentShopService) Update(ctx context.Context, id int64, req *UpdateAgentShopRequest) (*models.AgentShop, error) {
	agentShop, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlanType != nil {
		if !models.IsValidPlanType(*req.PlanType) {
			return nil, errors.ErrPlanTypeInvalid
		}
		agentShop.PlanType = *req.PlanType
	}
	if req.PlanAmount != nil {
		if *req.PlanAmount < 0 {
			return nil, errors.ErrPlanAmountInvalid
		}
		agentShop.PlanAmount = req.PlanAmount
	}
	if req.Name != nil {
		agentShop.Name = *req.Name
	}
	if req.AgentName != nil {
		agentShop.AgentName = req.AgentName
	}
	if req.Phone != nil {
		agentShop.Phone = req.Phone
	}
	if req.District != nil {
		agentShop.District = req.District
	}
	if req.City != nil {
		agentShop.City = req.City
	}
	if req.Address != nil {
		agentShop.Address = req.Address
	}
	if req.Status != nil {
		agentShop.Status = *req.Status
	}

	if err := s.agentShopRepo.Update(ctx, agentShop); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return agentShop, nil
}

// Delete 删除代理商铺
func (s *AgentShopService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.agentShopRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// List 获取代理商铺列表
func (s *AgentShopService) List(ctx context.Context, filter *repository.AgentShopFilter, page, pageSize int) ([]*models.AgentShop, int64, error) {
	offset := (page - 1) * pageSize
	shops, total, err := s.agentShopRepo.List(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return shops, total, nil
}

// UpdatePayment 更新支付状态
func (s *AgentShopService) UpdatePayment(ctx context.Context, id int64, req *UpdateAgentPaymentRequest) (*models.AgentShop, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if !isValidPaymentStatus(req.PaymentStatus) {
		return nil, errors.ErrPaymentStatusBad
	}
	if err := validatePaymentDates(req.PaymentDate, req.PaymentExpiry); err != nil {
		return nil, err
	}

	if err := s.agentShopRepo.UpdatePaymentStatus(ctx, id, req.PaymentStatus, req.PaymentDate, req.PaymentExpiry); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return s.GetByID(ctx, id)
}

// isValidPaymentStatus 支付状态合法性
func isValidPaymentStatus(status string) bool {
	switch status {
	case models.AgentPaymentPaid, models.AgentPaymentPending, models.AgentPaymentFailed:
		return true
	}
	return false
}

// validatePaymentDates 校验日期字符串可被解析
// 接受 RFC3339 或 2006-01-02，落库仍保留原始字符串
func validatePaymentDates(dates ...*string) error {
	for _, d := range dates {
		if d == nil || *d == "" {
			continue
		}
		if _, err := parseISODate(*d); err != nil {
			return errors.ErrDateFormatInvalid.WithError(err)
		}
	}
	return nil
}

func parseISODate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
