package models

import (
	"time"
)

// PlanType 套餐类型
const (
	PlanBasic      = "BASIC"       // 基础套餐
	PlanPremium    = "PREMIUM"     // 高级套餐
	PlanFeatured   = "FEATURED"    // 精选推荐位
	PlanLeftBar    = "LEFT_BAR"    // 左侧栏位
	PlanRightSide  = "RIGHT_SIDE"  // 右侧栏位
	PlanBottomRail = "BOTTOM_RAIL" // 底部栏位
	PlanBanner     = "BANNER"      // 横幅广告位
	PlanHero       = "HERO"        // 首屏大图位
)

// AllPlanTypes 所有套餐类型（固定顺序）
var AllPlanTypes = []string{
	PlanBasic,
	PlanPremium,
	PlanFeatured,
	PlanLeftBar,
	PlanRightSide,
	PlanBottomRail,
	PlanBanner,
	PlanHero,
}

// IsValidPlanType 判断是否为合法套餐类型
func IsValidPlanType(planType string) bool {
	for _, p := range AllPlanTypes {
		if p == planType {
			return true
		}
	}
	return false
}

// Shop 商铺模型（管理端创建）
// 付费判定依据 last_payment_date 是否存在
type Shop struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string     `gorm:"type:varchar(150);not null" json:"name"`
	OwnerName         *string    `gorm:"type:varchar(100)" json:"owner_name,omitempty"`
	Phone             *string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PlanType          string     `gorm:"type:varchar(20);not null;default:'BASIC'" json:"plan_type"`
	PlanAmount        *float64   `gorm:"type:decimal(12,2)" json:"plan_amount,omitempty"`
	LastPaymentDate   *time.Time `json:"last_payment_date,omitempty"`
	PaymentExpiryDate *time.Time `json:"payment_expiry_date,omitempty"`
	District          *string    `gorm:"type:varchar(100)" json:"district,omitempty"`
	City              *string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Address           *string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Description       *string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL          *string    `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	Status            int8       `gorm:"type:smallint;not null;default:1" json:"status"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (Shop) TableName() string {
	return "shops"
}

// IsPaid 是否已付费
func (s *Shop) IsPaid() bool {
	return s.LastPaymentDate != nil
}

// ShopStatus 商铺状态
const (
	ShopStatusDisabled = 0 // 下架
	ShopStatusActive   = 1 // 正常
)

// AgentPaymentStatus 代理商铺支付状态
const (
	AgentPaymentPaid    = "PAID"    // 已支付
	AgentPaymentPending = "PENDING" // 待支付
	AgentPaymentFailed  = "FAILED"  // 支付失败
)

// AgentShop 商铺模型（代理端创建）
// 来源于代理 App 同步，日期字段保留原始 ISO 字符串，
// 佣金在创建时按比例计算并落库
type AgentShop struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AgentID         int64     `gorm:"index;not null" json:"agent_id"`
	AgentName       *string   `gorm:"type:varchar(100)" json:"agent_name,omitempty"`
	Name            string    `gorm:"type:varchar(150);not null" json:"name"`
	Phone           *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PlanType        string    `gorm:"type:varchar(20);not null;default:'BASIC'" json:"plan_type"`
	PlanAmount      *float64  `gorm:"type:decimal(12,2)" json:"plan_amount,omitempty"`
	PaymentStatus   string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"payment_status"`
	PaymentDate     *string   `gorm:"type:varchar(40)" json:"payment_date,omitempty"`
	PaymentExpiry   *string   `gorm:"type:varchar(40)" json:"payment_expiry,omitempty"`
	AgentCommission *float64  `gorm:"type:decimal(12,2)" json:"agent_commission,omitempty"`
	District        *string   `gorm:"type:varchar(100)" json:"district,omitempty"`
	City            *string   `gorm:"type:varchar(100)" json:"city,omitempty"`
	Address         *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	Status          int8      `gorm:"type:smallint;not null;default:1" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (AgentShop) TableName() string {
	return "agent_shops"
}

// IsPaid 是否已支付
func (s *AgentShop) IsPaid() bool {
	return s.PaymentStatus == AgentPaymentPaid
}
