package revenue

import (
	"context"

	"github.com/dumeirei/biz-directory-backend/internal/common/logger"
	"github.com/dumeirei/biz-directory-backend/internal/common/metrics"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// SnapshotPersister 将聚合结果物化为快照行
// 快照是尽力而为的副产物，落库失败只记日志，不影响报表返回
type SnapshotPersister struct {
	repo *repository.RevenueSnapshotRepository
}

// NewSnapshotPersister 创建快照持久化器
func NewSnapshotPersister(repo *repository.RevenueSnapshotRepository) *SnapshotPersister {
	return &SnapshotPersister{repo: repo}
}

// Persist 写入一批快照：一行全量汇总加每地区一行
// 同一 (district, date_bucket) 键整行覆盖，重复执行幂等
func (p *SnapshotPersister) Persist(ctx context.Context, result AggregateResult, dateBucket string) {
	snapshots := make([]*models.RevenueSnapshot, 0, len(result.Districts)+1)

	snapshots = append(snapshots, &models.RevenueSnapshot{
		District:             models.SnapshotDistrictAll,
		DateBucket:           dateBucket,
		PlanFigures:          result.Totals.PlanFigures,
		TotalShops:           result.Totals.SumCount(),
		TotalRevenue:         result.Totals.TotalRevenue,
		TotalAgentCommission: result.Totals.TotalAgentCommission,
		NetRevenue:           result.Totals.NetRevenue,
	})

	for _, d := range result.Districts {
		snapshots = append(snapshots, &models.RevenueSnapshot{
			District:     d.District,
			DateBucket:   dateBucket,
			PlanFigures:  d.PlanFigures,
			TotalShops:   d.TotalShops,
			TotalRevenue: d.TotalRevenue,
		})
	}

	if err := p.repo.UpsertBatch(ctx, snapshots); err != nil {
		metrics.GetMetrics().RecordSnapshotPersist("failure")
		logger.Warn("persist revenue snapshots failed",
			logger.String("date_bucket", dateBucket),
			logger.Int("snapshots", len(snapshots)),
			logger.Err(err),
		)
		return
	}
	metrics.GetMetrics().RecordSnapshotPersist("success")
}
