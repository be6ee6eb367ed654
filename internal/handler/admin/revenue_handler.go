package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/biz-directory-backend/internal/common/handler"
	"github.com/dumeirei/biz-directory-backend/internal/service/revenue"
)

// RevenueHandler 收入报表处理器
type RevenueHandler struct {
	reportService *revenue.ReportService
}

// NewRevenueHandler 创建收入报表处理器
func NewRevenueHandler(reportService *revenue.ReportService) *RevenueHandler {
	return &RevenueHandler{reportService: reportService}
}

// GetReport 生成收入报表
// 对接存量前端，响应不包统一信封，失败也返回 200，
// 由响应体内 success 字段区分
// @Summary 生成收入报表
// @Tags 收入报表
// @Produce json
// @Security Bearer
// @Param period query string false "统计周期 today/week/month/year"
// @Param startDate query string false "开始日期 YYYY-MM-DD"
// @Param endDate query string false "结束日期 YYYY-MM-DD"
// @Param district query string false "地区过滤"
// @Success 200 {object} revenue.ReportResponse
// @Router /admin/reports/revenue [get]
func (h *RevenueHandler) GetReport(c *gin.Context) {
	query := revenue.ReportQuery{
		Period:    c.Query("period"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		District:  c.Query("district"),
	}

	result := h.reportService.GenerateReport(c.Request.Context(), query)
	c.JSON(http.StatusOK, result)
}

// ListSnapshots 获取收入快照列表
// @Summary 获取收入快照列表
// @Tags 收入报表
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param district query string false "地区"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/reports/snapshots [get]
func (h *RevenueHandler) ListSnapshots(c *gin.Context) {
	p := handler.BindPagination(c)

	snapshots, total, err := h.reportService.ListSnapshots(c.Request.Context(), c.Query("district"), p.GetOffset(), p.GetLimit())
	handler.MustSucceedPage(c, err, snapshots, total, p.Page, p.PageSize)
}

// RegisterRoutes 注册路由
func (h *RevenueHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/revenue", h.GetReport)
		reports.GET("/snapshots", h.ListSnapshots)
	}
}
