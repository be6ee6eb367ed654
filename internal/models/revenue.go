package models

import (
	"time"
)

// PlanFigures 按套餐维度的收入与数量
// 收入端和快照端共用；对外 JSON 键沿用旧版报表接口的驼峰命名
type PlanFigures struct {
	BasicRevenue      float64 `gorm:"type:decimal(14,2);not null;default:0" json:"basicPlanRevenue"`
	BasicCount        int     `gorm:"not null;default:0" json:"basicPlanCount"`
	PremiumRevenue    float64 `gorm:"type:decimal(14,2);not null;default:0" json:"premiumPlanRevenue"`
	PremiumCount      int     `gorm:"not null;default:0" json:"premiumPlanCount"`
	FeaturedRevenue   float64 `gorm:"type:decimal(14,2);not null;default:0" json:"featuredPlanRevenue"`
	FeaturedCount     int     `gorm:"not null;default:0" json:"featuredPlanCount"`
	LeftBarRevenue    float64 `gorm:"type:decimal(14,2);not null;default:0" json:"leftBarPlanRevenue"`
	LeftBarCount      int     `gorm:"not null;default:0" json:"leftBarPlanCount"`
	RightSideRevenue  float64 `gorm:"type:decimal(14,2);not null;default:0" json:"rightSidePlanRevenue"`
	RightSideCount    int     `gorm:"not null;default:0" json:"rightSidePlanCount"`
	BottomRailRevenue float64 `gorm:"type:decimal(14,2);not null;default:0" json:"bottomRailPlanRevenue"`
	BottomRailCount   int     `gorm:"not null;default:0" json:"bottomRailPlanCount"`
	BannerRevenue     float64 `gorm:"type:decimal(14,2);not null;default:0" json:"bannerPlanRevenue"`
	BannerCount       int     `gorm:"not null;default:0" json:"bannerPlanCount"`
	HeroRevenue       float64 `gorm:"type:decimal(14,2);not null;default:0" json:"heroPlanRevenue"`
	HeroCount         int     `gorm:"not null;default:0" json:"heroPlanCount"`
}

// AddRevenue 累加指定套餐的收入
func (p *PlanFigures) AddRevenue(planType string, amount float64) {
	switch planType {
	case PlanPremium:
		p.PremiumRevenue += amount
	case PlanFeatured:
		p.FeaturedRevenue += amount
	case PlanLeftBar:
		p.LeftBarRevenue += amount
	case PlanRightSide:
		p.RightSideRevenue += amount
	case PlanBottomRail:
		p.BottomRailRevenue += amount
	case PlanBanner:
		p.BannerRevenue += amount
	case PlanHero:
		p.HeroRevenue += amount
	default:
		p.BasicRevenue += amount
	}
}

// AddCount 累加指定套餐的商铺数量
func (p *PlanFigures) AddCount(planType string) {
	switch planType {
	case PlanPremium:
		p.PremiumCount++
	case PlanFeatured:
		p.FeaturedCount++
	case PlanLeftBar:
		p.LeftBarCount++
	case PlanRightSide:
		p.RightSideCount++
	case PlanBottomRail:
		p.BottomRailCount++
	case PlanBanner:
		p.BannerCount++
	case PlanHero:
		p.HeroCount++
	default:
		p.BasicCount++
	}
}

// RevenueFor 返回指定套餐的收入
func (p *PlanFigures) RevenueFor(planType string) float64 {
	switch planType {
	case PlanPremium:
		return p.PremiumRevenue
	case PlanFeatured:
		return p.FeaturedRevenue
	case PlanLeftBar:
		return p.LeftBarRevenue
	case PlanRightSide:
		return p.RightSideRevenue
	case PlanBottomRail:
		return p.BottomRailRevenue
	case PlanBanner:
		return p.BannerRevenue
	case PlanHero:
		return p.HeroRevenue
	default:
		return p.BasicRevenue
	}
}

// CountFor 返回指定套餐的商铺数量
func (p *PlanFigures) CountFor(planType string) int {
	switch planType {
	case PlanPremium:
		return p.PremiumCount
	case PlanFeatured:
		return p.FeaturedCount
	case PlanLeftBar:
		return p.LeftBarCount
	case PlanRightSide:
		return p.RightSideCount
	case PlanBottomRail:
		return p.BottomRailCount
	case PlanBanner:
		return p.BannerCount
	case PlanHero:
		return p.HeroCount
	default:
		return p.BasicCount
	}
}

// SumRevenue 各套餐收入之和
func (p *PlanFigures) SumRevenue() float64 {
	return p.BasicRevenue + p.PremiumRevenue + p.FeaturedRevenue +
		p.LeftBarRevenue + p.RightSideRevenue + p.BottomRailRevenue +
		p.BannerRevenue + p.HeroRevenue
}

// SumCount 各套餐数量之和
func (p *PlanFigures) SumCount() int {
	return p.BasicCount + p.PremiumCount + p.FeaturedCount +
		p.LeftBarCount + p.RightSideCount + p.BottomRailCount +
		p.BannerCount + p.HeroCount
}

// RevenueTotals 总体收入汇总
// 各套餐收入受周期过滤影响，数量不受；恒有
// TotalRevenue == SumRevenue() 且 NetRevenue == TotalRevenue - TotalAgentCommission
type RevenueTotals struct {
	PlanFigures
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalAgentCommission float64 `json:"totalAgentCommission"`
	NetRevenue           float64 `json:"netRevenue"`
}

// DistrictRevenue 地区收入聚合
// 地区收入始终按全量数据计算，不受请求周期影响
type DistrictRevenue struct {
	District string `json:"district"`
	PlanFigures
	TotalShops         int     `json:"totalShops"`
	TotalRevenue       float64 `json:"totalRevenue"`
	Target             int     `json:"target"`
	ProgressPercentage int     `json:"progressPercentage"`
}

// SnapshotDistrictAll 总体快照的地区键
const SnapshotDistrictAll = "ALL"

// RevenueSnapshot 收入快照
// 以 (district, date_bucket) 为唯一键整行覆盖写入，
// 是最近一次计算结果的缓存，不是流水账
type RevenueSnapshot struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	District    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_snapshots_district_bucket" json:"district"`
	DateBucket  string `gorm:"type:varchar(20);not null;uniqueIndex:idx_snapshots_district_bucket" json:"dateBucket"`
	PlanFigures `gorm:"embedded"`
	TotalShops           int       `gorm:"not null;default:0" json:"totalShops"`
	TotalRevenue         float64   `gorm:"type:decimal(14,2);not null;default:0" json:"totalRevenue"`
	TotalAgentCommission float64   `gorm:"type:decimal(14,2);not null;default:0" json:"totalAgentCommission"`
	NetRevenue           float64   `gorm:"type:decimal(14,2);not null;default:0" json:"netRevenue"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 表名
func (RevenueSnapshot) TableName() string {
	return "revenue_snapshots"
}
