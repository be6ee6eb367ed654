// Package scheduler 提供定时任务
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dumeirei/biz-directory-backend/internal/common/metrics"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
	"github.com/dumeirei/biz-directory-backend/internal/service/revenue"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	reportService *revenue.ReportService
	shopRepo      *repository.ShopRepository
	agentShopRepo *repository.AgentShopRepository
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(
	reportSvc *revenue.ReportService,
	shopRepo *repository.ShopRepository,
	agentShopRepo *repository.AgentShopRepository,
) *TaskHandler {
	return &TaskHandler{
		reportService: reportSvc,
		shopRepo:      shopRepo,
		agentShopRepo: agentShopRepo,
	}
}

// RefreshRevenueSnapshots 后台刷新收入快照
// 生成一次月度报表即可触发快照落库，保证即使无人访问报表页，
// 快照数据也不会过期太久
func (h *TaskHandler) RefreshRevenueSnapshots(ctx context.Context) error {
	result := h.reportService.GenerateReport(ctx, revenue.ReportQuery{Period: revenue.PeriodMonth})
	if !result.Success {
		return fmt.Errorf("refresh revenue snapshots: %s", result.Error)
	}
	return nil
}

// UpdateShopGauges 更新商铺总数指标
func (h *TaskHandler) UpdateShopGauges(ctx context.Context) error {
	shopCount, err := h.shopRepo.Count(ctx)
	if err != nil {
		return err
	}

	agentCount, err := h.agentShopRepo.Count(ctx)
	if err != nil {
		return err
	}

	metrics.GetMetrics().SetShopsTotal(float64(shopCount + agentCount))
	return nil
}

// SetupTasks 设置所有任务
func SetupTasks(scheduler *Scheduler, handler *TaskHandler, refreshInterval time.Duration) {
	if refreshInterval <= 0 {
		refreshInterval = 10 * time.Minute
	}

	// 周期性刷新收入快照
	scheduler.AddTask("RefreshRevenueSnapshots", refreshInterval, handler.RefreshRevenueSnapshots)

	// 每分钟更新商铺总数指标
	scheduler.AddTask("UpdateShopGauges", 1*time.Minute, handler.UpdateShopGauges)
}
