package revenue

import (
	"sort"
	"time"

	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// AggregateInput 聚合输入
// Now 由调用方注入，保证同一次请求内有效性判定与周期判定使用同一时刻
type AggregateInput struct {
	Records        []Record
	Window         PeriodWindow
	Pricing        PricingTable
	DistrictFilter string
	DistrictTarget int
	Now            time.Time
}

// AggregateResult 聚合结果
type AggregateResult struct {
	Totals            models.RevenueTotals
	Districts         []models.DistrictRevenue
	FilteredDistricts []models.DistrictRevenue
}

// isValid 判断记录当前是否有效
// 已付费且未过期；无过期时间视为长期有效
func isValid(r Record, now time.Time) bool {
	if !r.Paid {
		return false
	}
	if r.PaymentExpiry != nil && r.PaymentExpiry.Before(now) {
		return false
	}
	return true
}

// Aggregate 对商铺记录做一次全量内存聚合
// 计数不受有效性与周期约束，收入同时要求记录有效且落在周期窗口内；
// 地区榜单为全生命周期视角，不随周期参数变化
func Aggregate(input AggregateInput) AggregateResult {
	pricing := input.Pricing
	if pricing == nil {
		pricing = DefaultPricingTable()
	}
	target := input.DistrictTarget
	if target <= 0 {
		target = DefaultDistrictTarget
	}

	var totals models.RevenueTotals
	districtIndex := make(map[string]*models.DistrictRevenue)
	districtOrder := make([]string, 0)

	for _, r := range input.Records {
		amount := pricing.EffectiveAmount(r.PlanType, r.PlanAmount)
		valid := isValid(r, input.Now)

		totals.AddCount(r.PlanType)
		if valid && input.Window.Contains(r.EffectiveDate) {
			totals.AddRevenue(r.PlanType, amount)
			if r.AgentCommission != nil {
				totals.TotalAgentCommission += *r.AgentCommission
			}
		}

		district, ok := NormalizeDistrict(r)
		if !ok {
			continue
		}
		entry, exists := districtIndex[district]
		if !exists {
			entry = &models.DistrictRevenue{District: district, Target: target}
			districtIndex[district] = entry
			districtOrder = append(districtOrder, district)
		}
		entry.TotalShops++
		entry.AddCount(r.PlanType)
		if valid {
			entry.AddRevenue(r.PlanType, amount)
		}
	}

	totals.TotalRevenue = totals.SumRevenue()
	totals.NetRevenue = totals.TotalRevenue - totals.TotalAgentCommission

	// 收入持平时保持首次出现的顺序
	districts := make([]models.DistrictRevenue, 0, len(districtIndex))
	for _, name := range districtOrder {
		entry := districtIndex[name]
		entry.TotalRevenue = entry.SumRevenue()
		entry.ProgressPercentage = progressPercentage(entry.TotalShops, target)
		districts = append(districts, *entry)
	}
	sort.SliceStable(districts, func(i, j int) bool {
		return districts[i].TotalRevenue > districts[j].TotalRevenue
	})

	return AggregateResult{
		Totals:            totals,
		Districts:         districts,
		FilteredDistricts: filterDistricts(districts, input.DistrictFilter),
	}
}

// DefaultDistrictTarget 地区覆盖目标商铺数
const DefaultDistrictTarget = 100

// progressPercentage 计算地区覆盖进度，封顶 100
func progressPercentage(totalShops, target int) int {
	if target <= 0 {
		return 0
	}
	percent := int(float64(totalShops)/float64(target)*100 + 0.5)
	if percent > 100 {
		return 100
	}
	return percent
}

// filterDistricts 按地区名精确筛选，空或 all 返回全量
func filterDistricts(districts []models.DistrictRevenue, filter string) []models.DistrictRevenue {
	if filter == "" {
		return districts
	}
	normalized := normalizeDistrictName(filter)
	if normalized == "ALL" {
		return districts
	}
	filtered := make([]models.DistrictRevenue, 0, 1)
	for _, d := range districts {
		if d.District == normalized {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
