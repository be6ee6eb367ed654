package revenue

import (
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// PricingTable 套餐默认价格表
// 仅在记录未存有效金额时兜底；佣金不从价格表推算，
// 必须由商铺创建时落库
type PricingTable map[string]float64

// DefaultPricingTable 返回默认价格表
func DefaultPricingTable() PricingTable {
	return PricingTable{
		models.PlanBasic:      100,
		models.PlanPremium:    2999,
		models.PlanFeatured:   2388,
		models.PlanLeftBar:    100,
		models.PlanRightSide:  300,
		models.PlanBottomRail: 200,
		models.PlanBanner:     4788,
		models.PlanHero:       500,
	}
}

// EffectiveAmount 计算记录的有效金额
// 存储金额大于零时优先；套餐类型缺失按 BASIC 处理
func (t PricingTable) EffectiveAmount(planType string, storedAmount *float64) float64 {
	if storedAmount != nil && *storedAmount > 0 {
		return *storedAmount
	}
	if planType == "" {
		planType = models.PlanBasic
	}
	if amount, ok := t[planType]; ok {
		return amount
	}
	return t[models.PlanBasic]
}
