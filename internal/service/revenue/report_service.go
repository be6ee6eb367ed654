package revenue

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dumeirei/biz-directory-backend/internal/common/logger"
	"github.com/dumeirei/biz-directory-backend/internal/common/metrics"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// DefaultSnapshotLimit 报表返回的历史快照上限
const DefaultSnapshotLimit = 1000

// ReportQuery 报表查询参数
type ReportQuery struct {
	Period    string
	StartDate string
	EndDate   string
	District  string
}

// ReportResponse 报表响应
// 对接存量前端，无论成功失败结构完整返回；
// 失败时 Success 为 false、各聚合字段为零值
type ReportResponse struct {
	Success           bool                     `json:"success"`
	Revenues          []models.RevenueSnapshot `json:"revenues"`
	Totals            models.RevenueTotals     `json:"totals"`
	Districts         []models.DistrictRevenue `json:"districts"`
	FilteredDistricts []models.DistrictRevenue `json:"filteredDistricts"`
	Count             int                      `json:"count"`
	Error             string                   `json:"error,omitempty"`
}

// ReportService 收入报表服务
// 每次请求全量拉取两端商铺，在内存完成聚合后顺带刷新快照
type ReportService struct {
	shopRepo       *repository.ShopRepository
	agentShopRepo  *repository.AgentShopRepository
	snapshotRepo   *repository.RevenueSnapshotRepository
	persister      *SnapshotPersister
	pricing        PricingTable
	districtTarget int
	snapshotLimit  int
	now            func() time.Time
}

// ReportOption 报表服务可选配置
type ReportOption func(*ReportService)

// WithPricing 覆盖默认价格表
func WithPricing(pricing PricingTable) ReportOption {
	return func(s *ReportService) { s.pricing = pricing }
}

// WithDistrictTarget 覆盖地区覆盖目标
func WithDistrictTarget(target int) ReportOption {
	return func(s *ReportService) {
		if target > 0 {
			s.districtTarget = target
		}
	}
}

// WithSnapshotLimit 覆盖快照返回上限
func WithSnapshotLimit(limit int) ReportOption {
	return func(s *ReportService) {
		if limit > 0 {
			s.snapshotLimit = limit
		}
	}
}

// WithClock 覆盖时钟，测试用
func WithClock(now func() time.Time) ReportOption {
	return func(s *ReportService) { s.now = now }
}

// NewReportService 创建报表服务
func NewReportService(
	shopRepo *repository.ShopRepository,
	agentShopRepo *repository.AgentShopRepository,
	snapshotRepo *repository.RevenueSnapshotRepository,
	opts ...ReportOption,
) *ReportService {
	s := &ReportService{
		shopRepo:       shopRepo,
		agentShopRepo:  agentShopRepo,
		snapshotRepo:   snapshotRepo,
		persister:      NewSnapshotPersister(snapshotRepo),
		pricing:        DefaultPricingTable(),
		districtTarget: DefaultDistrictTarget,
		snapshotLimit:  DefaultSnapshotLimit,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateReport 生成收入报表
// 任何内部错误都吞掉并返回零值结构，由 Success 与 Error 字段表达失败
func (s *ReportService) GenerateReport(ctx context.Context, query ReportQuery) *ReportResponse {
	now := s.now()
	window := ResolveWindow(query.Period, query.StartDate, query.EndDate, now)
	dateBucket := DateBucket(query.Period)
	m := metrics.GetMetrics()

	var shops []*models.Shop
	var agentShops []*models.AgentShop

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shops, err = s.shopRepo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		agentShops, err = s.agentShopRepo.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		m.RecordReport(query.Period, "failure")
		logger.Error("load shops for revenue report failed",
			logger.String("period", query.Period),
			logger.Err(err),
		)
		return failureResponse(err)
	}

	records := AdaptShops(shops)
	records = append(records, AdaptAgentShops(agentShops)...)
	m.SetAggregatedRecords("admin", float64(len(shops)))
	m.SetAggregatedRecords("agent", float64(len(agentShops)))

	aggStart := time.Now()
	result := Aggregate(AggregateInput{
		Records:        records,
		Window:         window,
		Pricing:        s.pricing,
		DistrictFilter: query.District,
		DistrictTarget: s.districtTarget,
		Now:            now,
	})
	m.RecordAggregation(dateBucket, time.Since(aggStart))

	s.persister.Persist(ctx, result, dateBucket)

	snapshots, err := s.snapshotRepo.ListRecent(ctx, s.snapshotLimit)
	if err != nil {
		m.RecordReport(query.Period, "failure")
		logger.Error("load revenue snapshots failed",
			logger.String("period", query.Period),
			logger.Err(err),
		)
		return failureResponse(err)
	}

	m.RecordReport(query.Period, "success")
	return &ReportResponse{
		Success:           true,
		Revenues:          snapshots,
		Totals:            result.Totals,
		Districts:         result.Districts,
		FilteredDistricts: result.FilteredDistricts,
		Count:             len(snapshots),
	}
}

// ListSnapshots 按地区分页查询历史快照
func (s *ReportService) ListSnapshots(ctx context.Context, district string, offset, limit int) ([]models.RevenueSnapshot, int64, error) {
	if limit <= 0 || limit > s.snapshotLimit {
		limit = s.snapshotLimit
	}
	return s.snapshotRepo.List(ctx, district, offset, limit)
}

// failureResponse 零值失败响应，保持字段完整
func failureResponse(err error) *ReportResponse {
	return &ReportResponse{
		Success:           false,
		Revenues:          []models.RevenueSnapshot{},
		Districts:         []models.DistrictRevenue{},
		FilteredDistricts: []models.DistrictRevenue{},
		Error:             err.Error(),
	}
}
